package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bgraf/gpxview/config"
	"github.com/bgraf/gpxview/display"
	"github.com/bgraf/gpxview/filesystem"
	"github.com/bgraf/gpxview/geotrack"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [TRACK-FILE]",
	Short: "Print the statistics of a track file",
	Long: `Stats prints the same statistics the map UI shows. Without an argument the
track files of the current directory are offered for selection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	var trackFilePath string

	if len(args) == 1 {
		trackFilePath = args[0]
	} else {
		var err error
		trackFilePath, err = selectTrackFile(".")
		if err != nil {
			return err
		}
	}

	track, err := geotrack.LoadTrack(trackFilePath)
	if err != nil {
		return fmt.Errorf("could not load track %s: %w", trackFilePath, err)
	}

	return printStats(cmd.OutOrStdout(), track)
}

func printStats(w io.Writer, track geotrack.TrackSource) error {
	values := display.Values(track, config.DisplayLocation())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range display.Order {
		fmt.Fprintf(tw, "%s:\t%s\n", name.Label(), values[name])
	}

	return tw.Flush()
}

func selectTrackFile(dir string) (string, error) {
	paths, err := filesystem.GatherFiles([]string{dir}, config.TrackExtensions())
	if err != nil {
		return "", err
	}

	if len(paths) == 0 {
		return "", fmt.Errorf("no track files in '%s'", dir)
	}

	options := make([]string, len(paths))
	for i, p := range paths {
		options[i] = filepath.Base(p)
	}

	var selected int
	err = survey.AskOne(
		&survey.Select{
			Message: "Track",
			Options: options,
		},
		&selected,
	)
	exitOnInterrupt(err)
	if err != nil {
		return "", err
	}

	return paths[selected], nil
}

func exitOnInterrupt(err error) {
	if errors.Is(err, terminal.InterruptErr) {
		os.Exit(1)
	}
}
