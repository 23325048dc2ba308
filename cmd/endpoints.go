package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/color"
	"github.com/bencyn-cli/bencyn/icon"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/bencyn-cli/bencyn/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// probe is the outcome of one GET against an endpoint.
type probe struct {
	Name    api.Name `json:"name"`
	URL     string   `json:"url"`
	Shape   string   `json:"shape,omitempty"`
	Records int      `json:"records"`
	Error   string   `json:"error,omitempty"`
}

// probeAll fetches every readable endpoint, at most four at a time.
// The contact endpoint only accepts POST and is skipped.
func probeAll(ctx context.Context, fetcher page.Fetcher, registry *api.Registry) []probe {
	endpoints := lo.Reject(registry.All(), func(e api.Endpoint, _ int) bool {
		return e.Name() == api.Contact
	})
	probes := make([]probe, len(endpoints))

	var g errgroup.Group
	g.SetLimit(4)
	for i, e := range endpoints {
		g.Go(func() error {
			p := probe{Name: e.Name(), URL: e.URL()}
			raw, err := fetcher.Get(ctx, e, nil)
			if err != nil {
				p.Error = err.Error()
			} else {
				shape := api.Classify(raw)
				p.Shape, p.Records = shape.Kind.String(), len(shape.Records)
			}
			probes[i] = p
			return nil
		})
	}
	_ = g.Wait()

	return probes
}

func init() {
	rootCmd.AddCommand(endpointsCmd)
	endpointsCmd.Flags().BoolP("check", "c", false, "Request every endpoint and report what it returns")
	endpointsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	endpointsCmd.SetOut(os.Stdout)
}

// endpointsCmd lists the content API resources the client reads.
var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List the content API endpoints, optionally checking each one",
	Run: func(cmd *cobra.Command, args []string) {
		registry := api.RegistryFromConfig()
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		if !lo.Must(cmd.Flags().GetBool("check")) {
			if asJson {
				handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.Map(registry.All(), func(e api.Endpoint, _ int) probe {
					return probe{Name: e.Name(), URL: e.URL()}
				})))
				return
			}

			for _, e := range registry.All() {
				cmd.Printf("%s %s\n", style.Fg(color.Purple)(string(e.Name())), e.URL())
			}
			return
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Checking %s...", icon.Get(icon.Progress), registry.Base()))
		probes := probeAll(cmd.Context(), api.ClientFromConfig(), registry)
		erase()

		if asJson {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(probes))
			return
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
		for _, p := range probes {
			if p.Error != "" {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", icon.Get(icon.Fail), p.Name, style.Fg(color.Red)(util.Ellipsize(p.Error, 80)))
				continue
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", icon.Get(icon.Success), p.Name, util.Quantify(p.Records, "record", "records")+" ("+p.Shape+")")
		}
		handleErr(w.Flush())
	},
}
