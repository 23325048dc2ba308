package api

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given a bare JSON array", t, func() {
		raw := []byte(`[{"id":1,"title":"A"},"text",3,null]`)

		Convey("Normalize returns its elements unchanged", func() {
			var want []json.RawMessage
			So(json.Unmarshal(raw, &want), ShouldBeNil)

			got := Normalize(raw)
			So(len(got), ShouldEqual, len(want))
			for i := range want {
				So(string(got[i]), ShouldEqual, string(want[i]))
			}
		})

		Convey("Classify reports an array", func() {
			So(Classify(raw).Kind, ShouldEqual, Array)
		})
	})

	Convey("Given a paginated envelope", t, func() {
		raw := []byte(`{"count":1,"next":null,"previous":null,"results":[{"id":1,"title":"A"}]}`)

		Convey("Normalize returns the results", func() {
			got := Normalize(raw)
			So(got, ShouldHaveLength, 1)
			So(string(got[0]), ShouldEqual, `{"id":1,"title":"A"}`)
		})

		Convey("Classify reports pagination", func() {
			So(Classify(raw).Kind, ShouldEqual, Paginated)
		})
	})

	Convey("Given an empty paginated envelope", t, func() {
		got := Normalize([]byte(`{"results":[]}`))

		Convey("Normalize returns an empty, non-nil list", func() {
			So(got, ShouldNotBeNil)
			So(got, ShouldBeEmpty)
		})
	})

	Convey("Given bodies of any other shape", t, func() {
		bodies := []string{
			``,
			`   `,
			`null`,
			`42`,
			`"results"`,
			`true`,
			`{}`,
			`{"data":[1,2,3]}`,
			`{"results":null}`,
			`{"results":{"id":1}}`,
			`{"results":"[1,2]"}`,
			`{"results":[1,2`,
			`[1,2`,
			`not json at all`,
		}

		Convey("Normalize always returns an empty, non-nil list", func() {
			for _, body := range bodies {
				got := Normalize([]byte(body))
				So(got, ShouldNotBeNil)
				So(got, ShouldBeEmpty)
				So(Classify([]byte(body)).Kind, ShouldEqual, Unrecognized)
			}
		})
	})
}

func TestDecode(t *testing.T) {
	type post struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}

	Convey("Given a paginated blog response", t, func() {
		raw := []byte(`{"results":[{"id":1,"title":"A"}]}`)

		Convey("Decode yields one typed record", func() {
			posts := Decode[post](raw)
			So(posts, ShouldResemble, []post{{ID: 1, Title: "A"}})
		})

		Convey("First yields that record", func() {
			first, ok := First[post](raw).Get()
			So(ok, ShouldBeTrue)
			So(first.Title, ShouldEqual, "A")
		})
	})

	Convey("Given records that do not fit the target type", t, func() {
		raw := []byte(`[{"id":"one"},{"id":2,"title":"B"},7]`)

		Convey("Decode skips them", func() {
			So(Decode[post](raw), ShouldResemble, []post{{ID: 2, Title: "B"}})
		})
	})

	Convey("Given an unrecognized body", t, func() {
		Convey("Decode returns an empty, non-nil list", func() {
			posts := Decode[post]([]byte(`{"detail":"Not found."}`))
			So(posts, ShouldNotBeNil)
			So(posts, ShouldBeEmpty)
		})

		Convey("First returns nothing", func() {
			So(First[post]([]byte(`{}`)).IsAbsent(), ShouldBeTrue)
		})
	})
}
