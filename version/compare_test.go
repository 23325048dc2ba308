package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("orders by major, minor, then patch", func() {
			So(compareMust("1.0.0", "0.9.9"), ShouldEqual, 1)
			So(compareMust("0.3.1", "0.4.0"), ShouldEqual, -1)
			So(compareMust("v0.3.1", "0.3.1"), ShouldEqual, 0)
			So(compareMust("0.10.0", "0.9.0"), ShouldEqual, 1)
		})

		Convey("puts a pre-release before its release", func() {
			So(compareMust("0.4.0-rc.1", "0.4.0"), ShouldEqual, -1)
			So(compareMust("0.4.0", "0.4.0-rc.1"), ShouldEqual, 1)
			So(compareMust("0.4.0-rc.2", "0.4.0-rc.1"), ShouldEqual, 1)
		})

		Convey("ignores build metadata", func() {
			So(compareMust("0.3.1+linux", "0.3.1"), ShouldEqual, 0)
		})

		Convey("rejects malformed input", func() {
			_, err := Compare("latest", "0.3.1")
			So(err, ShouldNotBeNil)

			_, err = Compare("0.3", "0.3.1")
			So(err, ShouldNotBeNil)
		})
	})
}

func compareMust(a, b string) int {
	c, err := Compare(a, b)
	if err != nil {
		panic(err)
	}
	return c
}
