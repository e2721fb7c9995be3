package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/decklens/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	tag := flag.String("tag", "", "open the dashboard for this player tag")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: decklens [flags] [player-tag]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := app.Options{ConfigPath: *configPath, PrefsPath: *prefsPath, Tag: *tag}
	if opts.Tag == "" && flag.NArg() > 0 {
		opts.Tag = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "decklens: expected at most one player tag")
		flag.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "decklens: %v\n", err)
		return 1
	}
	return 0
}
