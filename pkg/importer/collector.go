package importer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/gnames/gnprofiles/pkg/textclean"
)

// uniqueValues are reference values observed in a batch: titles of
// attributes and cleaned names of contributors.
type uniqueValues struct {
	labels syncSet
	names  syncSet
}

// collect scans the batch on the worker pool and gathers unique term labels
// and contributor names. It does not touch the storage.
func (imp *Importer) collect(
	ctx context.Context,
	recs []profile.ImportRecord,
) (*uniqueValues, error) {
	res := &uniqueValues{}
	err := forEach(ctx, imp.jobsNum, len(recs),
		func(_ context.Context, idx int) error {
			res.add(&recs[idx])
			return nil
		},
	)
	if err != nil {
		return nil, CancelledError("collection of reference values", err)
	}
	return res, nil
}

func (u *uniqueValues) add(rec *profile.ImportRecord) {
	for _, v := range rec.Attributes {
		if label := strings.TrimSpace(v.Title); label != "" {
			u.labels.add(label)
		}
		u.addNames(v.Creators)
		u.addNames(v.Editors)
	}
	for _, v := range rec.Links {
		u.addNames(v.Creators)
	}
	for _, v := range rec.BHLLinks {
		u.addNames(v.Creators)
	}
}

func (u *uniqueValues) addNames(names []string) {
	for _, v := range names {
		if name := textclean.CleanName(v); name != "" {
			u.names.add(name)
		}
	}
}

// firstRows maps every scientific name of the batch to the index of the
// first record that has it. Later records with the same name are
// duplicates.
func firstRows(recs []profile.ImportRecord) map[string]int {
	res := make(map[string]int, len(recs))
	var dups int
	for i := range recs {
		name := recs[i].ScientificName
		if name == "" {
			continue
		}
		if _, ok := res[name]; ok {
			dups++
			continue
		}
		res[name] = i
	}
	if dups > 0 {
		slog.Warn("Batch repeats scientific names", "duplicates", dups)
	}
	return res
}
