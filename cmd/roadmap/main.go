// Command roadmap is the line-oriented external driver for the road
// map / trunk route engine (§6): it wires internal/cli's Driver to a
// fresh internal/roadmap.Map and drives it over stdin, following the
// teacher's cmd/qumo-relay pattern of a flag-parsed config file plus
// slog setup ahead of the actual work loop.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/okdaichi/roadmap/internal/arena"
	"github.com/okdaichi/roadmap/internal/cli"
	"github.com/okdaichi/roadmap/internal/roadmap"
	"github.com/okdaichi/roadmap/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in *os.File, out, errOut *os.File) int {
	fs := flag.NewFlagSet("roadmap", flag.ContinueOnError)
	configFile := fs.String("config", "", "path to optional YAML config file")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *showVersion {
		fmt.Fprintln(out, version.Full())
		return 0
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(errOut, "roadmap: %v\n", err)
		return 1
	}

	handler := slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})
	if cfg.Quiet {
		handler = slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelError})
	}
	slog.SetDefault(slog.New(handler))

	m := roadmap.New(arena.Unlimited())
	driver := cli.NewDriver(m, out, errOut)

	slog.Info("roadmap driver starting")
	sawOutOfMemory := driver.Run(in)
	slog.Info("roadmap driver finished", "out_of_memory", sawOutOfMemory)

	if sawOutOfMemory {
		return 1
	}
	return 0
}
