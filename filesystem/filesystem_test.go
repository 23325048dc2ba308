package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Given the filesystem backend", t, func() {
		Reset(SetOsFs)

		Convey("It defaults to the OS", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("It can be swapped for memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the gache adapter over memory", t, func() {
		SetMemMapFs()
		Reset(SetOsFs)

		var fs GacheFs
		dir := filepath.Join("/cache", "bencyn")
		path := filepath.Join(dir, "version.json")

		So(fs.MkdirAll(dir, os.ModePerm), ShouldBeNil)

		file, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		So(err, ShouldBeNil)
		_, err = io.WriteString(file, `"0.5.0"`)
		So(err, ShouldBeNil)
		So(file.Close(), ShouldBeNil)

		Convey("Writes land in the active backend", func() {
			So(string(lo.Must(API().ReadFile(path))), ShouldEqual, `"0.5.0"`)
		})
	})
}
