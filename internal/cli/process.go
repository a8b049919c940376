package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/mgpai22/srtfix/internal/subtitle"
	"github.com/spf13/cobra"
)

// options shared by every command, resolved from flags over config file
// defaults
type processOptions struct {
	encoding   string
	lineEnding subtitle.LineEnding
	output     string
	backup     bool
	jobs       int
}

func resolveOptions(cmd *cobra.Command, numInputs int) (processOptions, error) {
	opts := processOptions{
		encoding:   conf.Encoding,
		lineEnding: subtitle.LineEnding(conf.LineEnding),
		backup:     conf.Backup,
		jobs:       conf.Jobs,
	}

	if cmd.Flags().Changed("encoding") {
		opts.encoding, _ = cmd.Flags().GetString("encoding")
	}
	if cmd.Flags().Changed("line-ending") {
		s, _ := cmd.Flags().GetString("line-ending")
		opts.lineEnding = subtitle.LineEnding(s)
	}
	if cmd.Flags().Changed("backup") {
		opts.backup, _ = cmd.Flags().GetBool("backup")
	}
	if cmd.Flags().Changed("jobs") {
		opts.jobs, _ = cmd.Flags().GetInt("jobs")
	}
	opts.output, _ = cmd.Flags().GetString("output")

	if opts.output != "" && numInputs > 1 {
		return opts, fmt.Errorf("--output requires a single input file, got %d", numInputs)
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}
	return opts, nil
}

// processFiles runs transform over every input file, writing each result
// back in place (or to opts.output for a single input). Documents are
// independent of each other, so files are processed in parallel up to
// opts.jobs workers.
func processFiles(
	paths []string,
	opts processOptions,
	transform func(*subtitle.Document) *subtitle.Document,
) error {
	var (
		wg       sync.WaitGroup
		sem      = make(chan struct{}, opts.jobs)
		mu       sync.Mutex
		firstErr error
	)

	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := processFile(path, opts, transform); err != nil {
				logger.Errorw("Processing failed", "file", path, "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(path)
	}

	wg.Wait()
	return firstErr
}

func processFile(
	path string,
	opts processOptions,
	transform func(*subtitle.Document) *subtitle.Document,
) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	doc, dropped, err := subtitle.Load(data, opts.encoding)
	if err != nil {
		return err
	}
	if dropped > 0 {
		logger.Warnw("Dropped malformed blocks",
			"file", path,
			"count", dropped,
		)
	}
	logger.Infow("Loaded subtitle file",
		"file", path,
		"entries", len(doc.Entries),
	)

	out, err := subtitle.Marshal(transform(doc), opts.lineEnding)
	if err != nil {
		return err
	}

	target := path
	if opts.output != "" {
		target = opts.output
	}
	if opts.backup && target == path {
		if err := os.WriteFile(path+".bak", data, 0644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
	}
	if err := os.WriteFile(target, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	logger.Infow("Wrote subtitle file", "file", target)
	return nil
}
