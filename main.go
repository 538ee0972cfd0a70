// Package main is the entry point for the episan application.
package main

import (
	"github.com/episan-cli/episan/cmd"
	"github.com/episan-cli/episan/config"
	"github.com/episan-cli/episan/download"
	"github.com/episan-cli/episan/internal/cache"
	"github.com/episan-cli/episan/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Cache cleanup and queued-grab retries run in the background.
	go cache.CollectGarbage()
	download.Reconcile()

	cmd.Execute()
}
