// hashcollide - brute-force collisions in a truncated SHA-1
//
// Enumerates candidate strings over 0-9, a-z and A-Z in a fixed order and
// reports the first pair whose SHA-1 digests share a short hex prefix.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/asteroid-belt/hashcollide/internal/cli"
	"github.com/asteroid-belt/hashcollide/internal/config"
	"github.com/asteroid-belt/hashcollide/internal/log"
	"github.com/asteroid-belt/hashcollide/pkg/version"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	// Logging is best effort; the search works without a log file.
	if err := log.Init(cfg.LogFile()); err != nil {
		log.Warnf("logging disabled: %v", err)
	}
	defer func() {
		_ = log.Close()
	}()
	log.Debugf("%s", version.Info())

	if err := cli.Execute(ctx, cfg); err != nil {
		_ = log.Close()
		os.Exit(1)
	}
}
