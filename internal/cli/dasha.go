package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/dasha"
)

// dashaCommand creates the dasha command.
func (c *CLI) dashaCommand() *cobra.Command {
	var (
		opts        chartOpts
		depth       int
		at          string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "dasha [chart.toml]",
		Short: "List Vimshottari dasha periods",
		Long: `List the Vimshottari dasha periods of a chart.

By default only Maha-Dasha periods are listed; --depth 2 adds Antar-Dashas
and so on up to the calculated --levels. The chain running at --at (default
now) is marked.

With --interactive, periods are shown in a browser: enter descends into a
period, backspace returns to its parent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when := time.Now().UTC()
			if at != "" {
				t, err := parseTime(at)
				if err != nil {
					return err
				}
				when = t
			}
			return c.runDasha(cmd.Context(), args[0], opts, depth, when, interactive)
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVarP(&depth, "depth", "d", 1, "levels to list (1 = Maha only)")
	cmd.Flags().StringVar(&at, "at", "", "mark the periods running at this time (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse periods interactively")

	return cmd
}

func (c *CLI) runDasha(ctx context.Context, path string, opts chartOpts, depth int, at time.Time, interactive bool) error {
	rep, cached, err := c.calculate(ctx, path, opts)
	if err != nil {
		return err
	}
	if rep.Dasha == nil {
		for _, w := range rep.Warnings {
			printWarning("%s", w)
		}
		return fmt.Errorf("no dasha periods: the chart has no usable Moon longitude")
	}

	if interactive {
		m := NewDashaBrowserModel(rep.Dasha.Rows, at)
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		return err
	}

	printDashaHeader(rep, cached)
	fmt.Println(dashaTable(rep.Dasha.Rows, dasha.Level(depth), at))
	printCurrentDasha(rep, at)
	return nil
}

func printDashaHeader(rep *chart.Report, cached bool) {
	title := "Vimshottari Dasha"
	if rep.Name != "" {
		title += " · " + rep.Name
	}
	fmt.Println(StyleTitle.Render(title))
	d := rep.Dasha
	printKeyValue("Birth", rep.Birth.Format(time.RFC3339))
	printKeyValue("Starts in", fmt.Sprintf("%s Maha-Dasha, %.2f years remaining", d.StartLord, d.BalanceYears))
	fmt.Println(statsLine(0, len(rep.Warnings), cached))
	fmt.Println()
}

// dashaTable lists rows up to depth, marking those running at t.
func dashaTable(rows []dasha.Row, depth dasha.Level, t time.Time) string {
	tbl := newTable("", "Level", "Period", "Start", "End")
	for _, r := range rows {
		if r.Level > depth {
			continue
		}
		mark := ""
		if !t.Before(r.Start) && t.Before(r.End) {
			mark = StyleHighlight.Render(iconCurrent)
		}
		tbl.Row(mark, r.Level.String(), periodName(r), r.Start.Format(dateLayout), r.End.Format(dateLayout))
	}
	return tbl.Render()
}

// periodName renders a row as its lord chain, e.g. "Venus / Sun / Moon".
func periodName(r dasha.Row) string {
	name := r.Lord.String()
	if p, ok := r.AntarLord.Planet(); ok {
		name = p.String() + " / " + name
	}
	if p, ok := r.MahaLord.Planet(); ok {
		name = p.String() + " / " + name
	}
	return name
}
