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
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cjbassi/mime-detective/internal/logger"
	"github.com/cjbassi/mime-detective/pkg/report"
	osutils "github.com/cjbassi/mime-detective/pkg/util/os"
)

func DefineOrganizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize <report_file>",
		Short: "Copy scanned files into per-type directories using a scan report",
		Long: `The 'organize' command reads a scan report and copies each file it lists
into a directory named after its media type. The original files are left in
place. Copied files are grouped as <output-dir>/<type>_<subtype>/<name>.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunOrganize,
	}
	cmd.Flags().StringP("output-dir", "i", "", "Absolute path to the directory where organized copies will be placed.")
	cmd.Flags().String("log-level", "INFO", "log level for progress output (DEBUG, INFO, WARN, ERROR)")
	return cmd
}

func RunOrganize(cmd *cobra.Command, args []string) error {
	reportFile, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer reportFile.Close()

	objects, err := report.ReadFileObjects(bufio.NewReader(reportFile))
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir == "" {
		wdir, err := os.Getwd()
		if err != nil {
			return err
		}

		base := filepath.Base(reportFile.Name())
		name := strings.TrimSuffix(base, filepath.Ext(base))
		outDir = filepath.Join(wdir, name+"-organized")
	}

	if _, err := osutils.EnsureDir(outDir, true); err != nil {
		return err
	}

	logLevel, _ := cmd.Flags().GetString("log-level")
	log := logger.New(os.Stdout, logger.ParseLevel(logLevel))

	for _, obj := range objects {
		dst := filepath.Join(outDir, typeDirName(obj.MIME), filepath.Base(obj.Path))

		log.Infof("copying file %s", dst)

		if err := copyObject(dst, obj.Path); err != nil {
			log.Errorf("unable to copy file %s: %s", obj.Path, err)
		}
	}
	return nil
}

// typeDirName maps a media type to a directory name, dropping any
// parameters and replacing the slash.
func typeDirName(mime string) string {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.TrimSpace(mime)
	if mime == "" {
		return "unknown"
	}
	return strings.ReplaceAll(mime, "/", "_")
}

func copyObject(dst, src string) error {
	if _, err := osutils.EnsureDir(filepath.Dir(dst), false); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := osutils.CopyFile(out, src); err != nil {
		return err
	}
	return out.Sync()
}
