package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/io"
	"github.com/matzehuels/kundali/pkg/transit"
)

// transitOpts holds the command-line flags for the transit command.
type transitOpts struct {
	body       string        // planet to follow
	by         string        // classification: nakshatra, rashi, sublord
	from, to   string        // scan window; defaults to the table's range
	step       time.Duration // coarse scan step; 0 uses the config
	iterations int           // bisection iterations; 0 uses the config
}

// transitCommand creates the transit command.
func (c *CLI) transitCommand() *cobra.Command {
	opts := transitOpts{body: "Moon", by: "nakshatra"}

	cmd := &cobra.Command{
		Use:   "transit [ephemeris.toml]",
		Short: "Find when a planet changes sign, nakshatra or sub-lord",
		Long: `Scan an ephemeris file for the moments a planet enters a new sign,
nakshatra or KP sub-lord span.

The window is stepped coarsely (--step) and every step whose endpoints
differ is narrowed by bisection (--iterations). Each halving of the step
doubles the precision of the reported times.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTransit(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.body, "body", "b", opts.body, "planet to follow")
	cmd.Flags().StringVar(&opts.by, "by", opts.by, "change to look for: nakshatra, rashi, sublord")
	cmd.Flags().StringVar(&opts.from, "from", "", "scan start (default: first sample)")
	cmd.Flags().StringVar(&opts.to, "to", "", "scan end (default: last sample)")
	cmd.Flags().DurationVar(&opts.step, "step", 0, "scan step (default from config)")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 0, "bisection iterations (default from config)")

	return cmd
}

func (c *CLI) runTransit(ctx context.Context, path string, opts transitOpts) error {
	body, err := graha.ParsePlanet(opts.body)
	if err != nil {
		return err
	}
	class, ok := transit.ParseClassification(opts.by)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unknown classification %q: use nakshatra, rashi or sublord", opts.by)
	}

	table, err := io.ImportTable(path)
	if err != nil {
		return err
	}
	from, to := table.Range()
	if opts.from != "" {
		if from, err = parseTime(opts.from); err != nil {
			return err
		}
	}
	if opts.to != "" {
		if to, err = parseTime(opts.to); err != nil {
			return err
		}
	}

	logger := loggerFromContext(ctx)
	scanner := transit.NewScanner(table, logger)
	scanner.Step = c.Config.Transit.Step
	scanner.Iterations = c.Config.Transit.Iterations
	if opts.step > 0 {
		scanner.Step = opts.step
	}
	if opts.iterations > 0 {
		scanner.Iterations = opts.iterations
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Scanning %s...", body))
	spinner.Start()
	events, err := scanner.Changes(ctx, body, class, from, to)
	if err != nil {
		spinner.StopWithError("Scan failed")
		return err
	}
	spinner.Stop()
	prog.done("scanned ephemeris", "body", body, "by", class, "window", to.Sub(from).Round(time.Minute), "events", len(events))

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s %s changes", body, class)))
	printKeyValue("Ephemeris", table.Name())
	printKeyValue("Window", from.Format(time.RFC3339)+" "+iconArrow+" "+to.Format(time.RFC3339))
	if len(events) == 0 {
		printInfo("No changes in window")
		return nil
	}
	t := newTable("Time (UTC)", "From", "To")
	for _, ev := range events {
		t.Row(ev.At.Format("2006-01-02 15:04:05"), ev.FromLabel, ev.ToLabel)
	}
	fmt.Println(t.Render())
	return nil
}
