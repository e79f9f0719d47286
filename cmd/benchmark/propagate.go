package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/cellparty/observable"
	"github.com/inconshreveable/log15"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

func propagate(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Int(itersKey))

	var scenarios []scenario
	switch {
	case cmd.String(configKey) != "":
		loaded, err := loadScenarios(cmd.String(configKey), iters)
		if err != nil {
			return err
		}
		scenarios = loaded
	case cmd.Int(widthKey) > 0:
		height := int(cmd.Int(heightKey))
		if height < 1 {
			height = 1
		}
		scenarios = []scenario{{Width: int(cmd.Int(widthKey)), Height: height, Iters: iters}}
	default:
		scenarios = defaultScenarios(iters)
	}

	tbl := table.NewWriter()
	tbl.SetTitle("Observable cells")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "digest"})

	for _, s := range scenarios {
		log.Debug("running scenario", "name", s.label(), "width", s.Width, "height", s.Height, "iters", s.Iters)
		calc, digest, err := runPropagate(s)
		if err != nil {
			return fmt.Errorf("%s: %w", s.label(), err)
		}
		tbl.AppendRow(table.Row{
			s.label(),
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
			fmt.Sprintf("%016x", digest),
		})
	}

	tbl.Render()
	return nil
}

// runPropagate builds s.Width chains of s.Height computed cells over one
// source and times each source write. The digest hashes every leaf value
// after the last write so runs can be compared.
func runPropagate(s scenario) (*tachymeter.Metrics, uint64, error) {
	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())
	sys := observable.NewSystem(
		observable.WithSubscriptionReuse(),
		observable.WithLogger(logger),
		observable.WithErrorHandler(func(from any, err error) {
			log.Error("cell failed", "err", err)
		}),
	)

	src := observable.New(sys, 1)
	leaves := make([]*observable.Cell[int], 0, s.Width)
	for i := 0; i < s.Width; i++ {
		last := src
		for j := 0; j < s.Height; j++ {
			prev := last
			next, err := observable.NewComputed(sys, addOne, prev)
			if err != nil {
				return nil, 0, err
			}
			last = next
		}
		last.Subscribe(func(current, previous int) {}, false)
		leaves = append(leaves, last)
	}

	tach := tachymeter.New(&tachymeter.Config{Size: s.Iters})
	for i := 0; i < s.Iters; i++ {
		start := time.Now()
		src.Set(src.Peek() + 1)
		tach.AddTime(time.Since(start))
	}

	d := xxhash.New()
	for _, leaf := range leaves {
		d.WriteString(strconv.Itoa(leaf.Peek()))
		d.WriteString(",")
	}
	return tach.Calc(), d.Sum64(), nil
}

// addOne reads the cell passed as its captured arg.
var addOne = observable.Bind1(func(prev *observable.Cell[int]) (int, error) {
	return prev.Get() + 1, nil
})
