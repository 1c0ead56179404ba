package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/render/aspectgraph"
)

// aspectsCommand creates the aspects command.
func (c *CLI) aspectsCommand() *cobra.Command {
	var (
		opts     chartOpts
		format   string
		output   string
		graphOpt aspectgraph.Options
	)

	cmd := &cobra.Command{
		Use:   "aspects [chart.toml]",
		Short: "Draw the aspect and conjunction graph",
		Long: `Draw the graha drishti aspects and conjunctions of a chart.

The graph is written as Graphviz DOT, or rendered to SVG with an embedded
Graphviz. Without --output a table of aspects is printed and the graph
goes to stdout only when --format is given explicitly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != chart.FormatDOT && format != chart.FormatSVG {
				return fmt.Errorf("unsupported format %q: use dot or svg", format)
			}
			explicit := cmd.Flags().Changed("format")
			return c.runAspects(cmd.Context(), args[0], opts, format, output, explicit, graphOpt)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", chart.FormatSVG, "graph format: svg (default), dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the graph to this file")
	cmd.Flags().BoolVar(&graphOpt.Clusters, "clusters", false, "group planets by sign")
	cmd.Flags().BoolVar(&graphOpt.Detailed, "detailed", false, "label planets with sign, house and nature")

	return cmd
}

func (c *CLI) runAspects(ctx context.Context, path string, opts chartOpts, format, output string, explicit bool, graphOpt aspectgraph.Options) error {
	rep, _, err := c.calculate(ctx, path, opts)
	if err != nil {
		return err
	}

	if output == "" && !explicit {
		fmt.Println(aspectTable(rep))
		return nil
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	data, cached, err := runner.RenderAspects(ctx, rep, format, graphOpt)
	if err != nil {
		return err
	}
	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	status := iconFresh
	if cached {
		status = iconCached
	}
	printSuccess("Aspect graph written (%s)", status)
	printFile(output)
	return nil
}

func aspectTable(rep *chart.Report) string {
	t := newTable("Planet", "Aspects", "Aspected by", "Conjunct with")
	for _, p := range rep.Planets {
		a := rep.Aspects
		t.Row(p.Planet.String(),
			planetList(a.Direct[p.Planet]),
			planetList(a.Reverse[p.Planet]),
			planetList(a.Conjunctions[p.Planet]))
	}
	return t.Render()
}
