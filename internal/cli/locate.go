package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/kp"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// locateCommand creates the locate command.
func (c *CLI) locateCommand() *cobra.Command {
	var ayanamsa float64

	cmd := &cobra.Command{
		Use:   "locate [longitude]",
		Short: "Show the placement of a single longitude",
		Long: `Show the rashi, nakshatra, pada, navamsa and KP lords of a longitude.

The longitude is sidereal unless --ayanamsa is given, in which case it is
treated as tropical and shifted first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lon, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidLongitude, err, "parse longitude %q", args[0])
			}
			if err := errors.ValidateLongitude(lon); err != nil {
				return err
			}
			if cmd.Flags().Changed("ayanamsa") {
				lon = zodiac.Sidereal(lon, ayanamsa)
			}
			printLocation(lon)
			return nil
		},
	}

	cmd.Flags().Float64Var(&ayanamsa, "ayanamsa", 0, "treat the longitude as tropical and subtract this ayanamsa")

	return cmd
}

func printLocation(lon float64) {
	fmt.Println(StyleTitle.Render(zodiac.FormatDMS(zodiac.Normalize(lon))))
	for _, row := range locationRows(lon) {
		printKeyValue(row[0], row[1])
	}
	if zodiac.IsVargottama(lon) {
		printDetail("vargottama")
	}
}

// locationRows lists the labelled placement fields of lon.
func locationRows(lon float64) [][2]string {
	pos := zodiac.Locate(lon)
	sub := kp.ResolveSubLord(lon)
	subsub := kp.ResolveSubSubLord(lon)

	return [][2]string{
		{"Rashi", fmt.Sprintf("%s (%s)", pos.RashiName, pos.RashiLord)},
		{"In sign", zodiac.FormatDMS(zodiac.DegreeInSign(pos.Longitude))},
		{"Nakshatra", fmt.Sprintf("%s (%s)", pos.NakshatraName, pos.NakshatraLord)},
		{"Pada", fmt.Sprintf("%d · %s", pos.Pada, pos.PadaAlphabet)},
		{"Navamsa", zodiac.RashiName(zodiac.Navamsa(pos.Longitude))},
		{"Sub lord", fmt.Sprintf("%s  %s %s %s", sub.Lord,
			zodiac.FormatDMS(sub.AbsStart()), iconArrow, zodiac.FormatDMS(sub.AbsEnd()))},
		{"Sub-sub lord", fmt.Sprintf("%s  %s %s %s", subsub.Lord,
			zodiac.FormatDMS(subsub.AbsStart()), iconArrow, zodiac.FormatDMS(subsub.AbsEnd()))},
	}
}
