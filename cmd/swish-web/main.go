package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/swish/config"
	"github.com/lixenwraith/swish/logging"
	"github.com/lixenwraith/swish/store"
	"github.com/lixenwraith/swish/web"
)

var (
	configFlag = flag.String("config", "", "config file path (default: swish.json in the working directory)")
	addrFlag   = flag.String("addr", "", "listen address, overrides config")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.Web.Addr = *addrFlag
	}

	log, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	scores, err := store.New(cfg.Store)
	if err != nil {
		log.Error().Err(err).Msg("store open failed")
		os.Exit(1)
	}
	defer scores.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := web.NewServer(cfg, log, scores).Run(ctx); err != nil {
		log.Error().Err(err).Msg("web server failed")
		os.Exit(1)
	}
	log.Info().Msg("web server stopped")
}
