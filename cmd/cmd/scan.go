// Copyright (c) 2026 The mime-detective Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cjbassi/mime-detective/internal/config"
	"github.com/cjbassi/mime-detective/internal/scan"
	"github.com/cjbassi/mime-detective/pkg/util/format"
)

func DefineScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Classify every file under a directory and write an XML report",
		Long: `The 'scan' command walks a directory tree, detects the media type of each
regular file and records the results in an XML report. Large files are
memory-mapped instead of being read through the page cache.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunScan,
	}

	cmd.Flags().StringP("output", "o", "", "report file path (default report_<session>.xml)")
	cmd.Flags().StringSliceP("db", "d", nil, "additional magic database files")
	cmd.Flags().String("mmap-threshold", "", "file size above which files are memory-mapped (e.g. 64MB)")
	cmd.Flags().String("max-file-read", "", "cap on the bytes of a file handed to a single detection (e.g. 1MB)")
	cmd.Flags().Bool("no-log", false, "disable the scan log file")
	cmd.Flags().String("log-level", "info", "scan log level (debug, info, warn, error)")
	cmd.Flags().Bool("hidden", false, "include hidden files and directories")
	cmd.Flags().BoolP("quiet", "q", false, "suppress the summary output")

	return cmd
}

func RunScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	dbs, _ := cmd.Flags().GetStringSlice("db")
	thresholdStr, _ := cmd.Flags().GetString("mmap-threshold")
	maxReadStr, _ := cmd.Flags().GetString("max-file-read")
	noLog, _ := cmd.Flags().GetBool("no-log")
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	hidden, _ := cmd.Flags().GetBool("hidden")
	quiet, _ := cmd.Flags().GetBool("quiet")

	var threshold uint64 = scan.DefaultMmapThreshold
	if thresholdStr != "" {
		n, err := format.ParseBytes(thresholdStr)
		if err != nil {
			return fmt.Errorf("invalid mmap threshold %q: %w", thresholdStr, err)
		}
		threshold = n
	}

	var maxRead uint64
	if maxReadStr != "" {
		n, err := format.ParseBytes(maxReadStr)
		if err != nil {
			return fmt.Errorf("invalid max file read %q: %w", maxReadStr, err)
		}
		maxRead = n
	}

	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		logLevelStr = cfg.LogLevel
	}
	logLevel, err := parseSlogLevel(logLevelStr)
	if err != nil {
		return err
	}

	summary, err := scan.Scan(args[0], scan.Options{
		ReportFile:    output,
		ReportDir:     cfg.ReportDir,
		Databases:     cfg.MergeDatabases(dbs),
		MaxFileRead:   maxRead,
		MmapThreshold: threshold,
		IncludeHidden: hidden,
		DisableLog:    noLog,
		LogLevel:      logLevel,
		Quiet:         quiet,
	})
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("\nReport written to \"%s\".\n", summary.ReportFile)
	}
	return nil
}

func parseSlogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}
