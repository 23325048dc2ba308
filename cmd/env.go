package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/bencyn-cli/bencyn/color"
	"github.com/bencyn-cli/bencyn/config"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/bencyn-cli/bencyn/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

type envVar struct {
	Name  string `json:"name"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
	Set   bool   `json:"set"`
}

// envVars lists every supported variable with its current process value.
func envVars() []envVar {
	vars := lo.MapToSlice(config.Default, func(k string, f config.Field) envVar {
		return envVar{Name: f.Env(), Key: k}
	})
	vars = append(vars, envVar{Name: where.EnvConfigPath})

	for i := range vars {
		vars[i].Value, vars[i].Set = os.LookupEnv(vars[i].Name)
	}

	slices.SortFunc(vars, func(a, b envVar) int {
		return strings.Compare(a.Name, b.Name)
	})
	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")
	envCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		vars := lo.Filter(envVars(), func(v envVar, _ int) bool {
			return !(setOnly && !v.Set) && !(unsetOnly && v.Set)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(vars))
			return
		}

		for _, v := range vars {
			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(v.Name))
			cmd.Print("=")

			if v.Set {
				cmd.Println(style.Fg(color.Green)(v.Value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
