package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bencyn-cli/bencyn/filesystem"
	"github.com/bencyn-cli/bencyn/inline"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/router"
	"github.com/bencyn-cli/bencyn/thumbnail"
	"github.com/bencyn-cli/bencyn/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func completionRoutes(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return lo.Map(router.Suggest(toComplete), func(r router.Route, _ int) string {
		return r.Pattern + "\t" + r.Title
	}), cobra.ShellCompDirectiveNoFileComp
}

func completionChoices(choices []page.Choice) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(choices, func(c page.Choice, _ int) string {
			return c.Value + "\t" + c.Label
		}), cobra.ShellCompDirectiveNoFileComp
	}
}

// outputFile names the file inside output when output is a directory,
// e.g. blog_12.json for /blog/12.
func outputFile(output, path string, asJson bool) string {
	if isDir, _ := filesystem.API().IsDir(output); !isDir {
		return output
	}

	name := util.SanitizeFilename(strings.ToLower(router.Resolve(path).Path))
	if name == "" {
		name = "home"
	}
	return filepath.Join(output, name+lo.Ternary(asJson, ".json", ".txt"))
}

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("footer", "f", false, "Include the site footer in the output")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to this file, or into this directory named after the page")

	inlineCmd.Flags().StringP("category", "c", "", "Blog category filter")
	inlineCmd.Flags().StringP("search", "s", "", "Blog search text")
	inlineCmd.Flags().StringP("event-type", "e", "", "Gallery event type filter")
	inlineCmd.Flags().StringP("media-type", "m", "", "Gallery media type filter")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return page.BlogCategories, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("event-type", completionChoices(page.EventTypes)))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("media-type", completionChoices(page.MediaTypes)))
}

// inlineCmd assembles one page and prints it without the interactive UI.
var inlineCmd = &cobra.Command{
	Use:   "inline [path]",
	Short: "Print a single page as text or JSON",
	Long: `Assemble a single page of the site and print it without the interactive UI.

Paths:
  /            home
  /about       about us
  /services    services
  /blog        blog list (--category, --search)
  /blog/[id]   a single article
  /gallery     gallery (--event-type, --media-type)
  /updates     updates
  /contact     contact details

An unknown path prints the not-found page and exits with status 1.`,
	Example:           "  bencyn inline /blog --category Investment --json\n  bencyn inline /gallery -e social -o gallery.json -j",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionRoutes,
	Run: func(cmd *cobra.Command, args []string) {
		var err error

		options := &inline.Options{
			Path:   lo.FirstOr(args, "/"),
			Json:   lo.Must(cmd.Flags().GetBool("json")),
			Footer: lo.Must(cmd.Flags().GetBool("footer")),
			Blog: page.BlogQuery{
				Search: lo.Must(cmd.Flags().GetString("search")),
			},
		}

		options.Blog.Category, err = inline.ParseCategory(lo.Must(cmd.Flags().GetString("category")))
		handleErr(err)
		options.Gallery.EventType, err = inline.ParseEventType(lo.Must(cmd.Flags().GetString("event-type")))
		handleErr(err)
		options.Gallery.MediaType, err = inline.ParseMediaType(lo.Must(cmd.Flags().GetString("media-type")))
		handleErr(err)

		CheckDependencies(cmd.ErrOrStderr())
		options.Thumbnails = thumbnail.CacheFromConfig()

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			output = outputFile(output, options.Path, options.Json)
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}
		options.Out = writer

		handleErr(inline.Run(cmd.Context(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON Schema of the inline JSON output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the inline JSON output",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(inline.Schema()))
	},
}
