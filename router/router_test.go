package router

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Convey("matches every static route", func() {
			So(Resolve("/").Page, ShouldEqual, Home)
			So(Resolve("/about").Page, ShouldEqual, About)
			So(Resolve("/services").Page, ShouldEqual, Services)
			So(Resolve("/contact").Page, ShouldEqual, Contact)
			So(Resolve("/blog").Page, ShouldEqual, Blog)
			So(Resolve("/updates").Page, ShouldEqual, Updates)
			So(Resolve("/gallery").Page, ShouldEqual, Gallery)
		})

		Convey("tolerates trailing slashes, queries and case", func() {
			So(Resolve("/about/").Page, ShouldEqual, About)
			So(Resolve("gallery?event_type=award").Page, ShouldEqual, Gallery)
			So(Resolve("/Blog").Page, ShouldEqual, Blog)
			So(Resolve("").Page, ShouldEqual, Home)
		})

		Convey("captures the blog post id", func() {
			m := Resolve("/blog/42/")
			So(m.Page, ShouldEqual, BlogPost)
			So(m.Param("id"), ShouldEqual, "42")
		})

		Convey("sends everything else to not found", func() {
			So(Resolve("/careers").Page, ShouldEqual, NotFound)
			So(Resolve("/blog/1/comments").Page, ShouldEqual, NotFound)
		})
	})
}

func TestPath(t *testing.T) {
	Convey("Path fills parameters", t, func() {
		So(Path(BlogPost, map[string]string{"id": "7"}), ShouldEqual, "/blog/7")
		So(Path(Home, nil), ShouldEqual, "/")
		So(Path(NotFound, nil), ShouldEqual, "/")
	})
}

func TestSuggest(t *testing.T) {
	Convey("Suggest", t, func() {
		Convey("finds routes by partial path", func() {
			found := Suggest("gal")
			So(found, ShouldNotBeEmpty)
			So(found[0].Page, ShouldEqual, Gallery)
		})

		Convey("finds routes by title", func() {
			found := Suggest("About Us")
			So(found, ShouldNotBeEmpty)
			So(found[0].Page, ShouldEqual, About)
		})

		Convey("lists the menu for empty input", func() {
			So(Suggest(""), ShouldResemble, Menu())
		})
	})
}

func TestClosest(t *testing.T) {
	Convey("Closest", t, func() {
		Convey("corrects a typo", func() {
			r, ok := Closest("/servces").Get()
			So(ok, ShouldBeTrue)
			So(r.Page, ShouldEqual, Services)
		})

		Convey("has nothing to say about the home page", func() {
			So(Closest("/").IsAbsent(), ShouldBeTrue)
		})
	})
}
