package version

import (
	"fmt"
	"io"
	"os"

	"github.com/bencyn-cli/bencyn/color"
	"github.com/bencyn-cli/bencyn/constant"
	"github.com/bencyn-cli/bencyn/icon"
	"github.com/bencyn-cli/bencyn/key"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/bencyn-cli/bencyn/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Newer returns the latest release when it is newer than current.
// Any failure to find out counts as "nothing newer".
func Newer(current string) mo.Option[string] {
	latest, err := Latest()
	if err != nil {
		return mo.None[string]()
	}

	if c, err := Compare(latest, current); err != nil || c <= 0 {
		return mo.None[string]()
	}
	return mo.Some(latest)
}

// Notify prints a note to stderr when a newer release exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	newer := Newer(constant.Version)
	erase()

	if latest, ok := newer.Get(); ok {
		printNotice(os.Stderr, latest)
	}
}

func printNotice(w io.Writer, latest string) {
	_, _ = fmt.Fprintf(w, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/bencyn-cli/bencyn/releases/tag/v"+latest),
	)
}
