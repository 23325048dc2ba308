// Package cmd implements the command-line interface for bencyn.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bencyn-cli/bencyn/color"
	"github.com/bencyn-cli/bencyn/constant"
	"github.com/bencyn-cli/bencyn/icon"
	"github.com/bencyn-cli/bencyn/key"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/bencyn-cli/bencyn/tui"
	"github.com/bencyn-cli/bencyn/util"
	"github.com/bencyn-cli/bencyn/version"
	"github.com/bencyn-cli/bencyn/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("api", "", "Base URL of the content API")
	lo.Must0(viper.BindPFlag(key.APIBaseURL, rootCmd.PersistentFlags().Lookup("api")))

	rootCmd.PersistentFlags().Int("timeout", 0, "Request timeout in seconds")
	lo.Must0(viper.BindPFlag(key.APITimeout, rootCmd.PersistentFlags().Lookup("timeout")))

	rootCmd.PersistentFlags().Bool("no-thumbnails", false, "Do not extract thumbnails for gallery videos")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd opens the interactive client on the given route.
var rootCmd = &cobra.Command{
	Use:   constant.Bencyn + " [path]",
	Short: "Browse the " + constant.Brand + " site from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse the "+constant.Brand+" site from the terminal"),
	Example:           "  bencyn\n  bencyn /blog\n  bencyn /blog/12",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionRoutes,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("no-thumbnails")) {
			viper.Set(key.ThumbnailEnable, false)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies(cmd.ErrOrStderr())

		options := tui.Options{
			Path: lo.FirstOr(args, "/"),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
// Cancelling ctx aborts in-flight requests of the non-interactive commands.
func Execute(ctx context.Context) {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
