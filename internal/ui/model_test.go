package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := New(lipgloss.NewStyle())

		Convey("an empty notifier leaves the view untouched", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("a notification is appended to the last line", func() {
			cmd := m.Update(Notify("sent")())
			So(cmd, ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "sent")
			So(m.View("a\nb"), ShouldEqual, "a\nb  sent")
		})

		Convey("only the matching clear message removes it", func() {
			m.Update(NotificationMsg("first"))
			m.Update(ClearNotificationMsg{})
			So(m.Current(), ShouldEqual, "first")

			m.Update(ClearNotificationMsg{at: m.notifiedAt})
			So(m.Current(), ShouldBeEmpty)
		})
	})
}
