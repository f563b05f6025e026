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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cjbassi/mime-detective/internal/config"
	"github.com/cjbassi/mime-detective/pkg/detective"
	"github.com/cjbassi/mime-detective/pkg/mediatype"
	osutils "github.com/cjbassi/mime-detective/pkg/util/os"
)

func DefineDetectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <path>...",
		Short: "Detect the MIME type of one or more files",
		Long: `The 'detect' command identifies the media type of each given file from its
magic numbers and prints one result per line. Directory arguments are walked
recursively. Use '-' to classify data read from standard input.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunDetect,
	}

	cmd.Flags().StringSliceP("db", "d", nil, "additional magic database files")
	cmd.Flags().Bool("json", false, "print results as JSON")
	cmd.Flags().Bool("show-params", false, "include media type parameters in the output")

	return cmd
}

type detectResult struct {
	Path   string            `json:"path"`
	MIME   string            `json:"mime,omitempty"`
	Params map[string]string `json:"params,omitempty"`
	Error  string            `json:"error,omitempty"`
}

func RunDetect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return err
	}

	dbs, _ := cmd.Flags().GetStringSlice("db")
	asJSON, _ := cmd.Flags().GetBool("json")
	showParams, _ := cmd.Flags().GetBool("show-params")

	det, err := detective.NewWithDatabases(cfg.MergeDatabases(dbs)...)
	if err != nil {
		return err
	}

	var results []detectResult
	failed := 0

	record := func(path string, mt mediatype.MediaType, err error) {
		res := detectResult{Path: path}
		if err != nil {
			res.Error = err.Error()
			failed++
		} else {
			res.MIME = mt.MIME()
			if showParams {
				res.Params = mt.Params
			}
		}
		results = append(results, res)

		if !asJSON {
			printResult(res, showParams)
		}
	}

	for _, arg := range args {
		if arg == "-" {
			mt, err := detectStdin(det)
			record(arg, mt, err)
			continue
		}

		paths, err := osutils.ListFiles(arg)
		if err != nil {
			record(arg, mediatype.MediaType{}, err)
			continue
		}
		for _, path := range paths {
			mt, err := det.DetectFilepath(path)
			record(path, mt, err)
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to classify %d of %d inputs", failed, len(results))
	}
	return nil
}

func detectStdin(det *detective.Detector) (mediatype.MediaType, error) {
	buf, err := io.ReadAll(os.Stdin)
	if err != nil {
		return mediatype.MediaType{}, err
	}
	return det.DetectBuffer(buf)
}

func printResult(res detectResult, showParams bool) {
	if res.Error != "" {
		fmt.Fprintf(os.Stderr, "%s: %s\n", res.Path, res.Error)
		return
	}

	line := res.MIME
	if showParams {
		line += formatParams(res.Params)
	}
	fmt.Printf("%s: %s\n", res.Path, line)
}

// formatParams renders media type parameters in key order, so repeated
// runs print identical lines.
func formatParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "; %s=%s", k, params[k])
	}
	return sb.String()
}

// configPath returns the value of the persistent --config flag.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
