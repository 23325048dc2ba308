package cmd

import (
	"os"

	"github.com/bencyn-cli/bencyn/color"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/bencyn-cli/bencyn/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a directory the application owns.
type location struct {
	name  string
	path  func() string
	extra bool
}

var locations = []location{
	{"config", where.Config, false},
	{"logs", where.Logs, false},
	{"cache", where.Cache, true},
	{"temp", where.Temp, true},
}

func findLocation(name string) (location, bool) {
	return lo.Find(locations, func(l location) bool { return l.name == name })
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.Flags().BoolP("all", "a", false, "Also list the cache and temporary directories")
	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints the directories the application reads and writes.
// With an argument only that path is printed, which suits shell substitution.
var whereCmd = &cobra.Command{
	Use:     "where [config|logs|cache|temp]",
	Short:   "Display the filesystem paths used by the application",
	Example: "  cd \"$(bencyn where config)\"",
	Args:    cobra.MaximumNArgs(1),
	ValidArgs: lo.Map(locations, func(l location, _ int) string {
		return l.name
	}),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			l, ok := findLocation(args[0])
			if !ok {
				handleErr(cmd.Help())
				return
			}
			cmd.Println(l.path())
			return
		}

		all := lo.Must(cmd.Flags().GetBool("all"))
		shown := lo.Filter(locations, func(l location, _ int) bool {
			return all || !l.extra
		})

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, l := range shown {
			cmd.Printf("%s %s\n", header(l.name), style.Fg(color.Yellow)("bencyn where "+l.name))
			cmd.Println(l.path())

			if i < len(shown)-1 {
				cmd.Println()
			}
		}
	},
}
