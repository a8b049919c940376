package cli

import (
	"github.com/mgpai22/srtfix/internal/config"
	"github.com/mgpai22/srtfix/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
	conf    config.Config
)

var rootCmd = &cobra.Command{
	Use:   "srtfix",
	Short: "Repair tool for SubRip subtitle files",
	Long: `Srtfix loads .srt files of unknown encoding, repairs structural
defects (bad cue ordering, overlapping display windows, non-sequential
indices), optionally strips inline markup or shifts all timestamps, and
writes the result back as normalized UTF-8.

Input encoding is auto-detected unless forced with --encoding. Output is
always UTF-8 without a byte order mark.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		path, _ := cmd.Flags().GetString("config")
		var err error
		conf, err = config.Load(path)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		String("config", "srtfix.toml", "Config file with flag defaults")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output file path (single input only; default overwrites input)")
	rootCmd.PersistentFlags().
		StringP("encoding", "e", "", "Force input encoding (e.g. windows-1250, ISO-8859-2)")
	rootCmd.PersistentFlags().
		String("line-ending", "", "Output line ending (cr, lf, crlf)")
	rootCmd.PersistentFlags().
		Bool("backup", false, "Write a .bak copy before overwriting input files")
	rootCmd.PersistentFlags().
		IntP("jobs", "j", 0, "Number of files to process in parallel")
}
