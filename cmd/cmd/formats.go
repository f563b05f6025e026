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
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cjbassi/mime-detective/internal/config"
	"github.com/cjbassi/mime-detective/internal/magic"
)

func DefineFormatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the custom magic rules loaded from database files",
		Long: `The 'formats' command displays a table of the rules loaded from the given
magic database files. Each rule includes its media type, preferred file
extension and the byte signatures used for detection. Files not matched by
any custom rule fall back to the built-in signature set.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunFormats,
	}

	cmd.Flags().StringSliceP("db", "d", nil, "magic database files to list")
	return cmd
}

func RunFormats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return err
	}

	dbs, _ := cmd.Flags().GetStringSlice("db")

	eng, err := magic.Open(cfg.MergeDatabases(dbs)...)
	if err != nil {
		return err
	}

	rules := eng.Rules()
	if len(rules) == 0 {
		fmt.Println("No custom rules loaded. Detection uses the built-in signature set.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MIME\tEXT\tSIGNATURES")

	for _, r := range rules {
		signatures := make([]string, len(r.Signatures))
		for i, sig := range r.Signatures {
			signatures[i] = hex.EncodeToString(sig)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n",
			r.MIME,
			r.Ext,
			strings.Join(signatures, ","),
		)
	}
	return w.Flush()
}
