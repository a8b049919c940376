package cli

import (
	"github.com/mgpai22/srtfix/internal/fix"
	"github.com/mgpai22/srtfix/internal/subtitle"
	"github.com/spf13/cobra"
)

var fixCmd = &cobra.Command{
	Use:   "fix [file...]",
	Short: "Repair cue ordering, overlaps and indices",
	Long: `Repair the structure of one or more SRT files.

Cues are sorted by start time, display windows that overlap the following
cue are clamped, and indices are renumbered from 1. Markup stripping and a
uniform time shift can be applied in the same pass.

Examples:
  srtfix fix movie.srt
  srtfix fix --backup --line-ending lf season01/*.srt
  srtfix fix movie.srt --clean --shift -2s
  srtfix fix movie.srt -o fixed.srt -e windows-1250`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().
		Bool("clean", false, "Also strip inline markup (keeps bold/italic)")
	fixCmd.Flags().
		Bool("clean-all", false, "Also strip inline markup including bold/italic")
	fixCmd.Flags().
		Duration("shift", 0, "Also shift all timestamps (e.g. 1.5s, -500ms)")
}

func runFix(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd, len(args))
	if err != nil {
		return err
	}

	clean, _ := cmd.Flags().GetBool("clean")
	cleanAll, _ := cmd.Flags().GetBool("clean-all")
	shift, _ := cmd.Flags().GetDuration("shift")
	clean = clean || conf.Clean
	cleanAll = cleanAll || conf.CleanAll

	return processFiles(args, opts, func(doc *subtitle.Document) *subtitle.Document {
		if shift != 0 {
			doc = fix.AdjustTime(doc, shift)
		}
		if clean || cleanAll {
			doc = fix.Clean(doc, cleanAll)
		}
		return fix.All(doc)
	})
}
