package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/delaneyj/cellparty/observable"
	"github.com/dustin/go-humanize"
	"github.com/inconshreveable/log15"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// Past this the default mode needs millions of handlers.
const maxGrowthWrites = 20

type growthRow struct {
	write         int
	subscriptions int
	computations  int64
}

func growth(ctx context.Context, cmd *cli.Command) error {
	writes := int(cmd.Int(writesKey))
	if writes < 1 || writes > maxGrowthWrites {
		return fmt.Errorf("%s must be between 1 and %d, got %d", writesKey, maxGrowthWrites, writes)
	}

	perPass, err := runGrowth(writes)
	if err != nil {
		return err
	}
	reused, err := runGrowth(writes, observable.WithSubscriptionReuse())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"write",
		"subs (per pass)", "computations (per pass)",
		"subs (reuse)", "computations (reuse)",
	})
	for i := range perPass {
		table.Append([]string{
			strconv.Itoa(perPass[i].write),
			humanize.Comma(int64(perPass[i].subscriptions)),
			humanize.Comma(perPass[i].computations),
			humanize.Comma(int64(reused[i].subscriptions)),
			humanize.Comma(reused[i].computations),
		})
	}
	table.Render()
	return nil
}

// runGrowth writes to a source cell read by one computed cell and records,
// after each write, how many subscriptions the source carries and how many
// times the computation has run.
func runGrowth(writes int, opts ...observable.Option) ([]growthRow, error) {
	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())
	sys := observable.NewSystem(append(opts, observable.WithLogger(logger))...)

	var computations int64
	src := observable.New(sys, 0)
	if _, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		computations++
		return src.Get() * 2, nil
	}); err != nil {
		return nil, err
	}

	rows := make([]growthRow, 0, writes)
	for i := 1; i <= writes; i++ {
		src.Set(i)
		rows = append(rows, growthRow{
			write:         i,
			subscriptions: src.SubscriberCount(),
			computations:  computations,
		})
	}
	log.Debug("growth run finished", "writes", writes, "subscriptions", rows[len(rows)-1].subscriptions)
	return rows, nil
}
