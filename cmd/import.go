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
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprofiles/internal/iocache"
	"github.com/gnames/gnprofiles/internal/iodb"
	"github.com/gnames/gnprofiles/internal/iofs"
	"github.com/gnames/gnprofiles/internal/iorecords"
	"github.com/gnames/gnprofiles/internal/iostore"
	"github.com/gnames/gnprofiles/internal/ioverifier"
	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/gnames/gnprofiles/pkg/importer"
	"github.com/gnames/gnprofiles/pkg/parserpool"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	var opusID, format string
	var refreshCache bool

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a batch of profiles into an opus",
		Long: `Import reads profile records from a JSON or YAML file and adds
them to an opus.

Scientific names are matched by GNverifier to find their GUID and
classification. Matches are cached in ~/.cache/gnprofiles, so repeated
imports of the same names do not call the service again.

Records with names that already exist in the opus are skipped. The
outcome of every record is printed as JSON, CSV or TSV.

Examples:
  gnprofiles import profiles.json --opus <opus-id>
  gnprofiles import profiles.yaml -o <opus-id> --format tsv --progress`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyFlags(cmd,
				jobsFlag, progressFlag,
				immediateContributorsFlag, verifierURLFlag,
			)
			return runImport(args[0], opusID, format, refreshCache)
		},
	}

	importCmd.Flags().StringVarP(&opusID, "opus", "o", "",
		"ID of the opus profiles are imported to")
	importCmd.Flags().StringVarP(&format, "format", "f", "json",
		"output format of import outcomes (json, csv, tsv)")
	importCmd.Flags().BoolP("progress", "p", false,
		"show progress bar")
	importCmd.Flags().IntP("jobs", "j", 0,
		"number of concurrent import workers")
	importCmd.Flags().Bool("immediate-contributors", false,
		"save new contributors before profiles are built")
	importCmd.Flags().String("verifier-url", "",
		"URL of GNverifier API")
	importCmd.Flags().BoolVar(&refreshCache, "refresh-cache", false,
		"remove cached name matches before import")

	return importCmd
}

func runImport(path, opusID, format string, refreshCache bool) error {
	if opusID == "" {
		err := OpusMissingError("opus")
		gn.PrintErrorMessage(err)
		return err
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if !slices.Contains([]string{"json", "csv", "tsv"}, format) {
		err := OutputFormatError(format)
		gn.PrintErrorMessage(err)
		return err
	}

	recs, err := iorecords.Read(path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Read <em>%s</em> records from %s",
		humanize.Comma(int64(len(recs))), path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	if refreshCache {
		if err = iofs.ClearMatchCache(cfg.HomeDir); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}
	cache, err := iocache.Open(config.MatchCachePath(cfg.HomeDir))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer cache.Close()

	ver := ioverifier.New(cfg.Verifier, cache)
	if err = ver.Prefetch(ctx, iorecords.Names(recs)); err != nil {
		// names that were not prefetched are matched one by one
		slog.Warn("Cannot prefetch name matches", "error", err)
		gn.Warn("Batch name matching failed, matching names one by one")
	}

	parser := parserpool.NewPool(cfg.JobsNumber)
	defer parser.Close()

	st := iostore.New(op)
	imp := importer.New(
		cfg, st, ver, ver,
		importer.OptParser(parser),
	)
	res, err := imp.ImportProfiles(ctx, opusID, recs)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	out, err := formatOutcomes(res, format)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	fmt.Print(out)

	s := summarize(res)
	if s.imported > 0 {
		if err = st.Analyze(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}
	gn.Info(
		"Imported <em>%s</em>, existed %s, failed %s of %s records",
		humanize.Comma(int64(s.imported)),
		humanize.Comma(int64(s.existed)),
		humanize.Comma(int64(s.failed)),
		humanize.Comma(int64(len(res))),
	)
	return nil
}

type outcomeSummary struct {
	imported, existed, failed int
}

func summarize(res map[string]string) outcomeSummary {
	var s outcomeSummary
	for _, v := range res {
		switch {
		case v == profile.AlreadyExists:
			s.existed++
		case profile.IsFailure(v):
			s.failed++
		default:
			s.imported++
		}
	}
	return s
}

// formatOutcomes renders import outcomes sorted by their keys.
func formatOutcomes(res map[string]string, format string) (string, error) {
	keys := make([]string, 0, len(res))
	for k := range res {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sep rune
	switch format {
	case "json":
		enc := gnfmt.GNjson{Pretty: true}
		bs, err := enc.Encode(res)
		if err != nil {
			return "", err
		}
		return string(bs) + "\n", nil
	case "csv":
		sep = ','
	case "tsv":
		sep = '\t'
	default:
		return "", OutputFormatError(format)
	}

	var sb strings.Builder
	sb.WriteString(gnfmt.ToCSV([]string{"ScientificName", "Outcome"}, sep))
	sb.WriteString("\n")
	for _, k := range keys {
		sb.WriteString(gnfmt.ToCSV([]string{k, res[k]}, sep))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
