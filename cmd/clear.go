package cmd

import (
	"fmt"
	"os"

	"github.com/bencyn-cli/bencyn/filesystem"
	"github.com/bencyn-cli/bencyn/icon"
	"github.com/bencyn-cli/bencyn/util"
	"github.com/bencyn-cli/bencyn/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is a directory whose contents can be thrown away safely.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"log files", "logs", mo.Some("l"), where.Logs},
	{"temporary files", "temp", mo.Some("t"), where.Temp},
}

// countFiles reports how many regular files live under root.
func countFiles(root string) int {
	var count int
	_ = filesystem.API().Walk(root, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			count++
		}
		return nil
	})
	return count
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolP("all", "a", false, "clear everything below")
	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes cached and temporary artifacts. Configuration is never touched.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and temporary application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return all || lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range selected {
			path := target.location()
			files := countFiles(path)

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(path)
			erase()
			handleErr(err)

			fmt.Printf(
				"%s %s cleared (%s)\n",
				icon.Get(icon.Success),
				util.Capitalize(target.name),
				util.Quantify(files, "file", "files"),
			)
		}
	},
}
