// Package main is the entry point for bencyn.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/bencyn-cli/bencyn/cmd"
	"github.com/bencyn-cli/bencyn/config"
	"github.com/bencyn-cli/bencyn/internal/cache"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	for _, k := range config.Rejected {
		log.Warnf("config: invalid value for %s, using the default", k)
	}

	go cache.CollectGarbage()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd.Execute(ctx)
}
