package main

import (
	"context"
	"os"
	"runtime/pprof"

	"github.com/inconshreveable/log15"
	"github.com/urfave/cli/v3"
)

const (
	widthKey     = "width"
	heightKey    = "height"
	itersKey     = "iters"
	configKey    = "config"
	writesKey    = "writes"
	profileKey   = "profile"
	logLevelKey  = "log-level"
	defaultIters = 100
)

var log = log15.New("cmd", "benchmark")

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure observable cell propagation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
			&cli.StringFlag{
				Name:  logLevelKey,
				Usage: "Log level (debug, info, warn, error)",
				Value: "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "propagate",
				Usage: "Time source writes through chains of computed cells",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  widthKey,
						Usage: "Chains hanging off the source (0 runs the default matrix)",
					},
					&cli.IntFlag{
						Name:  heightKey,
						Usage: "Computed cells per chain",
					},
					&cli.IntFlag{
						Name:  itersKey,
						Usage: "Source writes per scenario",
						Value: defaultIters,
					},
					&cli.StringFlag{
						Name:  configKey,
						Usage: "YAML file listing scenarios",
					},
				},
				Action: withSetup(propagate),
			},
			{
				Name:  "growth",
				Usage: "Show dependency subscriptions piling up as a computed cell recomputes",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  writesKey,
						Usage: "Source writes to perform (subscriptions double per write without reuse)",
						Value: 12,
					},
				},
				Action: withSetup(growth),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Crit("benchmark failed", "err", err)
		os.Exit(1)
	}
}

// withSetup configures logging and profiling from the root flags before
// running action.
func withSetup(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		lvl, err := log15.LvlFromString(cmd.String(logLevelKey))
		if err != nil {
			return err
		}
		log.SetHandler(log15.LvlFilterHandler(lvl, log15.StreamHandler(os.Stderr, log15.TerminalFormat())))

		if path := cmd.String(profileKey); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return err
			}
			defer pprof.StopCPUProfile()
			log.Info("cpu profile enabled", "path", path)
		}
		return action(ctx, cmd)
	}
}
