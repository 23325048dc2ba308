package modal

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type surface struct {
	enabled bool
	writes  int
}

func (s *surface) ScrollEnabled() bool { return s.enabled }

func (s *surface) SetScrollEnabled(enabled bool) {
	s.enabled = enabled
	s.writes++
}

func TestLock(t *testing.T) {
	Convey("Given a scrollable surface", t, func() {
		s := &surface{enabled: true}
		lock := New(s)

		Convey("Acquire disables scrolling", func() {
			release := lock.Acquire()
			So(s.enabled, ShouldBeFalse)
			So(lock.Held(), ShouldBeTrue)

			Convey("and Release restores it", func() {
				release()
				So(s.enabled, ShouldBeTrue)
				So(lock.Held(), ShouldBeFalse)
			})

			Convey("and Release only restores once", func() {
				release()
				s.enabled = false
				release()
				So(s.enabled, ShouldBeFalse)
				So(s.writes, ShouldEqual, 2)
			})
		})

		Convey("a nested Acquire leaves the outer scope in charge", func() {
			outer := lock.Acquire()
			inner := lock.Acquire()
			inner()
			So(s.enabled, ShouldBeFalse)
			outer()
			So(s.enabled, ShouldBeTrue)
		})
	})

	Convey("Given a surface that was not scrolling", t, func() {
		s := &surface{enabled: false}
		release := New(s).Acquire()
		release()
		So(s.enabled, ShouldBeFalse)
	})
}
