package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bencyn-cli/bencyn/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrune(t *testing.T) {
	Convey("Given a directory with old and recent files", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		dir := "/logs"
		old := filepath.Join(dir, "2026-02-01.log")
		recent := filepath.Join(dir, "2026-02-28.log")
		nested := filepath.Join(dir, "old", "frame.jpg")

		for _, path := range []string{old, recent, nested} {
			lo.Must0(fs.MkdirAll(filepath.Dir(path), 0o755))
			lo.Must0(fs.WriteFile(path, []byte("x"), 0o644))
		}
		lo.Must0(fs.Chtimes(old, now.Add(-30*24*time.Hour), now.Add(-30*24*time.Hour)))
		lo.Must0(fs.Chtimes(nested, now.Add(-8*24*time.Hour), now.Add(-8*24*time.Hour)))
		lo.Must0(fs.Chtimes(recent, now.Add(-24*time.Hour), now.Add(-24*time.Hour)))

		removed := Prune(dir, TTL, now)

		Convey("Only expired files are removed", func() {
			So(removed, ShouldEqual, 2)
			So(lo.Must(fs.Exists(old)), ShouldBeFalse)
			So(lo.Must(fs.Exists(nested)), ShouldBeFalse)
			So(lo.Must(fs.Exists(recent)), ShouldBeTrue)
		})

		Convey("Directories survive", func() {
			So(lo.Must(fs.DirExists(filepath.Join(dir, "old"))), ShouldBeTrue)
		})
	})
}
