package cli

import (
	"github.com/mgpai22/srtfix/internal/fix"
	"github.com/mgpai22/srtfix/internal/subtitle"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file...]",
	Short: "Strip inline markup from subtitle text",
	Long: `Remove inline styling markup from every text line.

Both the angle-bracket family (<i>, <font ...>) and the curly-brace ASS
override family ({\an8}, {\pos(...)}) are stripped, leaving the enclosed
text. Bold and italic markup is kept unless --all is set. Timing, order
and indices are untouched.

Examples:
  srtfix clean movie.srt
  srtfix clean --all movie.srt
  srtfix clean --backup season01/*.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().
		Bool("all", false, "Also strip bold and italic markup")
}

func runClean(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd, len(args))
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	all = all || conf.CleanAll

	return processFiles(args, opts, func(doc *subtitle.Document) *subtitle.Document {
		return fix.Clean(doc, all)
	})
}
