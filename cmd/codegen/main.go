package main

import (
	"context"
	"fmt"
	"go/format"
	"os"
	"time"

	"github.com/delaneyj/cellparty/cmd/codegen/templates"
	"github.com/inconshreveable/log15"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outKey               = "out"
)

var log = log15.New("cmd", "codegen")

func main() {
	log.SetHandler(log15.StreamHandler(os.Stderr, log15.TerminalFormat()))

	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed Bind adapters for observable cells",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: "observable/bind.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Crit("codegen failed", "err", err)
		os.Exit(1)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	count := int(cmd.Uint(genericParamCountKey))
	out := cmd.String(outKey)
	log.Info("codegen started", "count", count, "out", out)
	defer func() {
		log.Info("codegen finished", "took", time.Since(start))
	}()

	src, err := format.Source([]byte(templates.BindGen(count)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
