package log

import (
	"testing"

	"github.com/bencyn-cli/bencyn/filesystem"
	"github.com/bencyn-cli/bencyn/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("When logs.write is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Convey("Then logging should be off", func() {
				So(Enabled(), ShouldBeFalse)
			})
		})

		Convey("When logs.write is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)

			Convey("Then logging should be on", func() {
				So(Enabled(), ShouldBeTrue)
			})

			Convey("Then request entries carry their identity", func() {
				entry := Request("abc", "GET", "http://localhost:8000/api/blog-posts/")
				So(entry.Data["request_id"], ShouldEqual, "abc")
				So(entry.Data["method"], ShouldEqual, "GET")
			})
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			filesystem.SetOsFs()
		})
	})
}
