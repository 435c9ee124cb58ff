/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprofiles/internal/iodb"
	"github.com/gnames/gnprofiles/internal/iostore"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/spf13/cobra"
)

// getOpusCmd returns the opus command.
func getOpusCmd() *cobra.Command {
	var title, dataResource, code string

	opusCmd := &cobra.Command{
		Use:   "opus",
		Short: "Create or list opuses, the collections of profiles",
		Long: `Opus creates a new collection of profiles, or lists existing
collections when no title is given.

A new opus gets its own vocabulary of attribute titles. The nomenclatural
code (botanical or zoological) determines how scientific names of the
opus are parsed.

Examples:
  gnprofiles opus
  gnprofiles opus --title "Flora of Victoria" --data-resource dr123
  gnprofiles opus -t "Moths of Borneo" -c zoological`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpus(title, dataResource, code)
		},
	}

	opusCmd.Flags().StringVarP(&title, "title", "t", "",
		"title of a new opus")
	opusCmd.Flags().StringVarP(&dataResource, "data-resource", "d", "",
		"data resource ID of a new opus")
	opusCmd.Flags().StringVarP(&code, "code", "c", "botanical",
		"nomenclatural code of a new opus (botanical, zoological)")

	return opusCmd
}

func runOpus(title, dataResource, code string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()
	st := iostore.New(op)

	if title == "" {
		opuses, err := st.Opuses(ctx)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if len(opuses) == 0 {
			gn.Info("No opuses yet, create one with <em>--title</em>")
			return nil
		}
		printOpuses(os.Stdout, opuses)
		return nil
	}

	opus := profile.Opus{
		Title:          title,
		DataResourceID: dataResource,
		Code:           profile.NewNomCode(code),
	}
	if err := st.CreateOpus(ctx, &opus); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Created opus <em>%s</em>", opus.Title)
	fmt.Println(opus.ID)
	return nil
}

func printOpuses(w io.Writer, opuses []profile.Opus) {
	fmt.Fprintln(w, gnfmt.ToCSV(
		[]string{"ID", "Title", "DataResourceID", "Code"}, '\t',
	))
	for _, v := range opuses {
		row := []string{v.ID, v.Title, v.DataResourceID, string(v.Code)}
		fmt.Fprintln(w, gnfmt.ToCSV(row, '\t'))
	}
}
