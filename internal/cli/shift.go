package cli

import (
	"github.com/mgpai22/srtfix/internal/fix"
	"github.com/mgpai22/srtfix/internal/subtitle"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [file...]",
	Short: "Shift all timestamps by a fixed amount",
	Long: `Add a signed duration to every cue's start and end time.

Timestamps that would become negative are floored at zero, so a shift more
negative than a cue's times collapses that cue to 00:00:00,000. No other
repair is performed; use fix for that.

Examples:
  srtfix shift movie.srt --by 2s
  srtfix shift movie.srt --by -1.5s
  srtfix shift --by 500ms episode1.srt episode2.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		DurationP("by", "b", 0, "Signed shift amount (e.g. 2s, -1.5s, 500ms)")
	_ = shiftCmd.MarkFlagRequired("by")
}

func runShift(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd, len(args))
	if err != nil {
		return err
	}

	by, _ := cmd.Flags().GetDuration("by")

	return processFiles(args, opts, func(doc *subtitle.Document) *subtitle.Document {
		return fix.AdjustTime(doc, by)
	})
}
