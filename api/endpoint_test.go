package api

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry(t *testing.T) {
	Convey("Given a registry for the default base", t, func() {
		r := NewRegistry("http://localhost:8000")

		Convey("Every resource resolves under /api/", func() {
			So(r.Get(BlogPosts).URL(), ShouldEqual, "http://localhost:8000/api/blog-posts/")
			So(r.Get(AboutTimelineItems).URL(), ShouldEqual, "http://localhost:8000/api/about-timeline-items/")
			So(r.Get(ContactInformation).Name(), ShouldEqual, ContactInformation)
		})

		Convey("A single blog post has its own endpoint", func() {
			So(r.BlogPost("42").URL(), ShouldEqual, "http://localhost:8000/api/blog-posts/42/")
		})

		Convey("All lists every resource once", func() {
			So(r.All(), ShouldHaveLength, len(paths))
		})

		Convey("Unknown names resolve to an empty URL", func() {
			So(r.Get(Name("nope")).URL(), ShouldBeEmpty)
		})
	})

	Convey("Given a base with a trailing slash", t, func() {
		r := NewRegistry("https://api.example.com/")

		Convey("Paths are not doubled", func() {
			So(r.Get(Services).URL(), ShouldEqual, "https://api.example.com/api/services/")
		})
	})
}
