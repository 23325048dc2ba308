package version

import (
	"bytes"
	"testing"

	"github.com/bencyn-cli/bencyn/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewer(t *testing.T) {
	Convey("Given a cached latest release", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)
		lo.Must0(versionCacher.Set("0.5.0"))

		Convey("An older build is told about it", func() {
			latest, ok := Newer("0.3.1").Get()
			So(ok, ShouldBeTrue)
			So(latest, ShouldEqual, "0.5.0")
		})

		Convey("The same or a newer build is not", func() {
			So(Newer("0.5.0").IsAbsent(), ShouldBeTrue)
			So(Newer("1.0.0").IsAbsent(), ShouldBeTrue)
		})

		Convey("The notice links the release", func() {
			var out bytes.Buffer
			printNotice(&out, "0.5.0")
			So(out.String(), ShouldContainSubstring, "releases/tag/v0.5.0")
		})
	})
}
