package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/ephemeris"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/io"
)

// chartOpts holds the command-line flags shared by commands that calculate
// a chart.
type chartOpts struct {
	noCache   bool // bypass the cache entirely
	refresh   bool // recalculate but still store the result
	fromBirth bool // drop dasha periods that ended before birth
	levels    int  // dasha depth; 0 uses the config
}

func (o *chartOpts) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "recalculate even if cached")
	cmd.Flags().BoolVar(&o.fromBirth, "from-birth", false, "drop dasha periods that ended before birth")
	cmd.Flags().IntVar(&o.levels, "levels", 0, "dasha levels 1-5 (default from config)")
}

// chartCommand creates the chart command.
func (c *CLI) chartCommand() *cobra.Command {
	var (
		opts     chartOpts
		output   string
		template bool
	)

	cmd := &cobra.Command{
		Use:   "chart [chart.toml]",
		Short: "Calculate a chart report",
		Long: `Calculate a chart report from a TOML chart file.

The report lists each planet's placement, KP star and sub lords, dignity,
house and UPBS strength, the house cusps, significators and the running
dasha. Use --output to export the full report as JSON.

Use --template to print an example chart file to start from.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if template {
				return io.WriteChart(templateInput(), os.Stdout)
			}
			if len(args) != 1 {
				return fmt.Errorf("chart file required (or use --template)")
			}
			return c.runChart(cmd.Context(), args[0], opts, output)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report as JSON to this file")
	cmd.Flags().BoolVar(&template, "template", false, "print an example chart file")

	return cmd
}

// calculate loads path and runs it through a cached runner.
func (c *CLI) calculate(ctx context.Context, path string, opts chartOpts) (*chart.Report, bool, error) {
	in, err := io.ImportChart(path)
	if err != nil {
		return nil, false, err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return nil, false, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	copts := c.chartOptions()
	copts.FromBirth = opts.fromBirth
	copts.Refresh = opts.refresh
	if opts.levels > 0 {
		copts.DashaLevels = opts.levels
	}

	spinner := newSpinner(ctx, "Calculating chart...")
	spinner.Start()
	rep, cached, err := runner.CalculateWithCacheInfo(ctx, in, copts)
	if err != nil {
		spinner.StopWithError("Calculation failed")
		return nil, false, err
	}
	spinner.Stop()
	return rep, cached, nil
}

func (c *CLI) runChart(ctx context.Context, path string, opts chartOpts, output string) error {
	rep, cached, err := c.calculate(ctx, path, opts)
	if err != nil {
		return err
	}

	printChartHeader(rep)
	fmt.Println(statsLine(len(rep.Planets), len(rep.Warnings), cached))
	fmt.Println()
	fmt.Println(planetTable(rep))
	if len(rep.Houses) > 0 {
		fmt.Println(houseTable(rep))
	}
	fmt.Println(significatorTable(rep))
	printCurrentDasha(rep, time.Now())
	for _, w := range rep.Warnings {
		printWarning("%s", w)
	}

	if output != "" {
		if err := io.ExportJSON(rep, output); err != nil {
			return err
		}
		printSuccess("Report written")
		printFile(output)
	}
	fmt.Println()
	printNextStep("Browse dasha periods", fmt.Sprintf("%s dasha %s -i", appName, path))
	return nil
}

func printChartHeader(rep *chart.Report) {
	title := "Chart"
	if rep.Name != "" {
		title = rep.Name
	}
	fmt.Println(StyleTitle.Render(title))
	printKeyValue("Moment", rep.Birth.Format(time.RFC3339))
	printKeyValue("Julian Day", fmt.Sprintf("%.5f", rep.JulianDay))
	if rep.Ayanamsa != 0 {
		printKeyValue("Ayanamsa", fmt.Sprintf("%.4f°", rep.Ayanamsa))
	}
	if a := rep.Ascendant; a != nil {
		printKeyValue("Ascendant", fmt.Sprintf("%s %s · %s · sub %s", a.Rashi, a.DMS, a.Nakshatra, a.SubLord))
	}
	if b := rep.Badhak; b != nil {
		printKeyValue("Badhak", fmt.Sprintf("house %d · %s", b.House, b.Lord))
	}
}

func planetTable(rep *chart.Report) string {
	t := newTable("Planet", "Longitude", "Rashi", "Nakshatra", "Star", "Sub", "House", "Dignity", "", "UPBS")
	for _, p := range rep.Planets {
		nak := p.Nakshatra
		if p.Pada > 0 {
			nak = fmt.Sprintf("%s %d", p.Nakshatra, p.Pada)
		}
		house := noValue
		if p.House > 0 {
			house = fmt.Sprint(p.House)
		}
		upbs := bandStyle(p.Strength.Band).Render(formatValue(p.Strength.Total, 2))
		t.Row(p.Planet.String(), p.DMS, p.Rashi, nak, p.NakshatraLord.String(), p.SubLord.String(),
			house, p.Dignity, planetFlags(p), upbs)
	}
	return t.Render()
}

func houseTable(rep *chart.Report) string {
	t := newTable("House", "Cusp", "Rashi", "Lord", "Occupants")
	for _, h := range rep.Houses {
		t.Row(fmt.Sprint(h.Number), formatValue(h.Cusp, 2), h.Rashi, h.Lord.String(), planetList(h.Occupants))
	}
	return t.Render()
}

func significatorTable(rep *chart.Report) string {
	t := newTable("Planet", "Signifies", "Star lord", "Star lord signifies", "Sub lord", "Sub lord signifies")
	for _, p := range rep.Planets {
		s := p.Significators
		t.Row(p.Planet.String(), formatHouses(s.All),
			s.NakshatraLord.String(), formatHouses(s.NakshatraLordAll),
			s.SubLord.String(), formatHouses(s.SubLordAll))
	}
	return t.Render()
}

// printCurrentDasha prints the period chain running at t.
func printCurrentDasha(rep *chart.Report, t time.Time) {
	chain := rep.Dasha.Current(t)
	if len(chain) == 0 {
		return
	}
	line := ""
	for i, r := range chain {
		if i > 0 {
			line += StyleDim.Render(" › ")
		}
		line += StyleHighlight.Render(r.Lord.String())
	}
	last := chain[len(chain)-1]
	printKeyValue("Current dasha", line+StyleDim.Render(fmt.Sprintf("  until %s", last.End.Format(dateLayout))))
}

// templateInput is the example printed by chart --template.
func templateInput() chart.Input {
	asc := 39.0
	return chart.Input{
		Name:      "Example",
		JulianDay: ephemeris.J2000,
		Frame:     ephemeris.Tropical,
		Ayanamsa:  ephemeris.Lahiri(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)),
		Ascendant: &asc,
		Bodies: map[graha.Planet]ephemeris.Position{
			graha.Sun:     {Longitude: 280.37, Speed: 1.019},
			graha.Moon:    {Longitude: 223.32, Speed: 12.02},
			graha.Mars:    {Longitude: 327.96, Speed: 0.776},
			graha.Mercury: {Longitude: 271.89, Speed: 1.556},
			graha.Jupiter: {Longitude: 25.25, Speed: 0.041},
			graha.Venus:   {Longitude: 241.57, Speed: 1.209},
			graha.Saturn:  {Longitude: 40.40, Speed: -0.024},
			graha.Rahu:    {Longitude: 123.95, Speed: -0.053},
		},
		Shadbala: map[graha.Planet]float64{
			graha.Sun: 112, graha.Moon: 98, graha.Mars: 121, graha.Mercury: 104,
			graha.Jupiter: 131, graha.Venus: 95, graha.Saturn: 88,
		},
	}
}
