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

// Package scan walks a directory tree and classifies every regular file
// through a shared detective session, streaming the results into an XML
// detection report.
package scan

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cjbassi/mime-detective/internal/env"
	"github.com/cjbassi/mime-detective/internal/mmap"
	"github.com/cjbassi/mime-detective/pkg/detective"
	"github.com/cjbassi/mime-detective/pkg/mediatype"
	"github.com/cjbassi/mime-detective/pkg/pbar"
	"github.com/cjbassi/mime-detective/pkg/report"
	fmtutil "github.com/cjbassi/mime-detective/pkg/util/format"
)

// DefaultMmapThreshold is the file size at which classification switches
// from the path query to a memory-mapped buffer query.
const DefaultMmapThreshold = 64 * 1024 * 1024

type Options struct {
	ReportFile    string // path of the XML report; derived from the session ID when empty
	ReportDir     string // directory for derived report names; ignored when ReportFile is set
	Databases     []string
	MaxFileRead   uint64 // bytes of a file handed to a single detection; 0 means no cap
	MmapThreshold uint64
	IncludeHidden bool
	DisableLog    bool
	LogLevel      slog.Level
	Quiet         bool // suppress progress output on stdout
}

// Summary aggregates the outcome of one scan session.
type Summary struct {
	Session      string
	ReportFile   string
	FilesScanned int
	Failures     int
	BytesScanned uint64
	Duration     time.Duration
	ByType       map[string]int
}

// Scan classifies every regular file under root and writes a detection
// report. It returns the summary of the session.
func Scan(root string, opts Options) (*Summary, error) {
	if opts.MmapThreshold == 0 {
		opts.MmapThreshold = DefaultMmapThreshold
	}

	det, err := detective.NewWithDatabases(opts.Databases...)
	if err != nil {
		return nil, err
	}

	rootAbs := absPath(root)
	session := uuid.NewString()

	reportFileName := opts.ReportFile
	if reportFileName == "" {
		reportFileName = filepath.Join(opts.ReportDir, fmt.Sprintf("report_%s.xml", session))
		if opts.ReportDir != "" {
			if err := os.MkdirAll(opts.ReportDir, 0755); err != nil {
				return nil, err
			}
		}
	}

	files, totalBytes, err := listFiles(root, opts.IncludeHidden)
	if err != nil {
		return nil, err
	}

	outFile, err := os.Create(reportFileName)
	if err != nil {
		return nil, err
	}
	defer outFile.Close()

	reportWriter := report.NewWriter(outFile)
	err = reportWriter.WriteHeader(report.Header{
		Version: report.FormatVersion,
		Creator: report.Creator{
			Package:              env.AppName,
			Version:              env.Version,
			ExecutionEnvironment: report.GetExecEnv(),
		},
		Source: report.Source{
			RootPath: rootAbs,
			Session:  session,
		},
	})
	if err != nil {
		return nil, err
	}

	var logFilePath string
	if !opts.DisableLog {
		logFilePath = absPath(session + ".log")
	}

	logger, logFile, err := setupLogger(logFilePath, opts.LogLevel)
	if err != nil {
		return nil, err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if !opts.Quiet {
		fmt.Println("[INFO] Starting scan...")
		fmt.Printf("[INFO] Source: \t%s\n", rootAbs)
		fmt.Printf("[INFO] Files: \t%d (%s)\n", len(files), fmtutil.FormatBytes(totalBytes))
		if len(opts.Databases) > 0 {
			fmt.Printf("[INFO] Databases: \t%s\n", strings.Join(opts.Databases, ","))
		}
		outLog := "disabled"
		if !opts.DisableLog {
			outLog = logFilePath
		}
		fmt.Printf("[INFO] Output Log: \t%s\n", outLog)
	}

	start := time.Now()
	bar := pbar.NewProgressBarState(totalBytes)

	summary := &Summary{
		Session:    session,
		ReportFile: absPath(reportFileName),
		ByType:     make(map[string]int),
	}

	for _, f := range files {
		mt, err := classify(det, f.path, f.size, opts.MmapThreshold, opts.MaxFileRead)
		if err != nil {
			summary.Failures++
			logger.Error("unable to classify file", "path", f.path, "err", err)
		} else {
			summary.FilesScanned++
			summary.BytesScanned += uint64(f.size)
			summary.ByType[mt.MIME()]++
			logger.Info("classified file", "path", f.path, "mime", mt.String(), "size", f.size)

			err := reportWriter.WriteFileObject(report.FileObject{
				Path: f.path,
				Size: uint64(f.size),
				MIME: mt.String(),
				Ext:  strings.TrimPrefix(filepath.Ext(f.path), "."),
			})
			if err != nil {
				logger.Error("unable to write report entry", "err", err)
			}
		}

		bar.ProcessedBytes += f.size
		bar.FilesClassified++
		if !opts.Quiet {
			bar.Render(false)
		}
	}
	if !opts.Quiet {
		bar.Render(true)
		bar.Finish()
	}

	if err := reportWriter.Close(); err != nil {
		return nil, err
	}
	summary.Duration = time.Since(start)

	if !opts.Quiet {
		fmt.Printf("[INFO] Scan completed!\n")
		fmt.Printf("[INFO] Files classified: \t%d\n", summary.FilesScanned)
		if summary.Failures > 0 {
			fmt.Printf("[INFO] Failures: \t%d\n", summary.Failures)
		}
		fmt.Printf("[INFO] Total data: \t%s\n", fmtutil.FormatBytes(int64(summary.BytesScanned)))
		fmt.Printf("[INFO] Duration: \t%s\n", FormatDurationHMS(summary.Duration))
		fmt.Printf("[INFO] Report saved to: \t%s\n", summary.ReportFile)
		if !opts.DisableLog {
			fmt.Printf("[INFO] Detailed scan log: \t%s\n", logFilePath)
		}
	}
	return summary, nil
}

type fileEntry struct {
	path string
	size int64
}

// listFiles walks root and collects the regular files to classify, along
// with their total size. Hidden files and directories are skipped unless
// includeHidden is set.
func listFiles(root string, includeHidden bool) ([]fileEntry, int64, error) {
	var (
		files []fileEntry
		total int64
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		hidden := strings.HasPrefix(d.Name(), ".") && path != root
		if d.IsDir() {
			if hidden && !includeHidden {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden && !includeHidden {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		files = append(files, fileEntry{path: path, size: info.Size()})
		total += info.Size()
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

// classify routes large files through a memory-mapped buffer query and
// everything else through the path query. maxRead caps the bytes handed
// to a single buffer query; 0 disables the cap.
func classify(det *detective.Detector, path string, size int64, mmapThreshold, maxRead uint64) (mediatype.MediaType, error) {
	if size > 0 && uint64(size) >= mmapThreshold {
		m, err := mmap.Open(path)
		if err == nil {
			defer m.Close()

			data := m.Data
			if maxRead > 0 && uint64(len(data)) > maxRead {
				data = data[:maxRead]
			}
			return det.DetectBuffer(data)
		}
		// mmap can fail on unusual filesystems; the path query still works
	}
	return det.DetectFilepath(path)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// FormatDurationHMS formats a time.Duration into an HH:MM:SS string,
// falling back to fractional seconds for sub-second durations.
func FormatDurationHMS(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	totalSeconds := int64(d.Seconds())

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// setupLogger initializes a slog.Logger writing to logFilePath, or one
// that discards output when the path is empty. The returned *os.File, if
// not nil, must be closed by the caller.
func setupLogger(logFilePath string, minLevel slog.Level) (*slog.Logger, *os.File, error) {
	var writer io.Writer
	var file *os.File

	if logFilePath == "" {
		writer = io.Discard
	} else {
		f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
		}
		writer = f
		file = f
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level:     minLevel,
		AddSource: true,
	})

	return slog.New(handler), file, nil
}
