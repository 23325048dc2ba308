package page

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoader(t *testing.T) {
	Convey("Given a fresh loader", t, func() {
		var l Loader[string]

		Convey("It starts idle", func() {
			So(l.Status(), ShouldEqual, Idle)
			So(l.IsLoading(), ShouldBeFalse)
			So(l.Settled(), ShouldBeFalse)
		})

		Convey("Begin marks it loading until the ticket settles", func() {
			ticket := l.Begin()
			So(l.IsLoading(), ShouldBeTrue)

			So(l.Settled(), ShouldBeFalse)

			So(l.Settle(ticket, "live", true), ShouldBeTrue)
			So(l.IsLoading(), ShouldBeFalse)
			So(l.Settled(), ShouldBeTrue)
			So(l.Status(), ShouldEqual, Ready)

			view, withData := l.View()
			So(view, ShouldEqual, "live")
			So(withData, ShouldBeTrue)
		})

		Convey("A superseded ticket is discarded", func() {
			stale := l.Begin()
			fresh := l.Begin()

			So(l.Settle(fresh, "category=Investment", true), ShouldBeTrue)
			So(l.Settle(stale, "category=all", true), ShouldBeFalse)

			view, _ := l.View()
			So(view, ShouldEqual, "category=Investment")
		})

		Convey("A stale result does not end the newer load", func() {
			stale := l.Begin()
			l.Begin()

			So(l.Settle(stale, "old", true), ShouldBeFalse)
			So(l.IsLoading(), ShouldBeTrue)
		})

		Convey("An abandoned load stops loading", func() {
			t := l.Begin()

			So(l.Abandon(t), ShouldBeTrue)
			So(l.IsLoading(), ShouldBeFalse)
			So(l.Status(), ShouldEqual, Idle)
			So(l.Settled(), ShouldBeFalse)
		})

		Convey("Abandoning keeps the previous view", func() {
			So(l.Settle(l.Begin(), "previous", true), ShouldBeTrue)
			So(l.Abandon(l.Begin()), ShouldBeTrue)

			So(l.Status(), ShouldEqual, Ready)
			view, withData := l.View()
			So(view, ShouldEqual, "previous")
			So(withData, ShouldBeTrue)
		})

		Convey("A superseded ticket cannot abandon the newer load", func() {
			stale := l.Begin()
			l.Begin()

			So(l.Abandon(stale), ShouldBeFalse)
			So(l.IsLoading(), ShouldBeTrue)
		})

		Convey("Load runs and settles in one step", func() {
			ok := l.Load(context.Background(), func(context.Context) (string, bool) {
				return "defaults", false
			})
			So(ok, ShouldBeTrue)

			view, withData := l.View()
			So(view, ShouldEqual, "defaults")
			So(withData, ShouldBeFalse)
		})
	})
}
