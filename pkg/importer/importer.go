// Package importer implements bulk import of species profiles into an
// opus.
//
// The import runs in two passes over a batch. The first pass collects
// unique vocabulary labels and contributor names on a worker pool, then a
// single goroutine finds or creates a term or a contributor for every
// unique value. The second pass builds and saves profiles on the same pool,
// reading reference data only from lookups made by the first pass. Workers
// never create shared reference rows, so concurrent records cannot race to
// create the same term or contributor.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/gnames/gnprofiles/pkg/parserpool"
)

// Importer imports batches of profile records. It keeps no state between
// runs and can be used by several goroutines at once.
type Importer struct {
	store      Store
	names      NameResolver
	classifier Classifier
	parser     parserpool.Pool

	jobsNum               int
	immediateContributors bool
	progressBar           bool
}

// Option configures an Importer.
type Option func(*Importer)

// OptParser sets a name parser pool. Without it profiles get no
// canonical form and no authorship derived from the name.
func OptParser(p parserpool.Pool) Option {
	return func(imp *Importer) {
		imp.parser = p
	}
}

// New creates an Importer. Settings of the worker pool, contributor
// persistence and progress bar come from cfg.
func New(
	cfg *config.Config,
	store Store,
	names NameResolver,
	classifier Classifier,
	opts ...Option,
) *Importer {
	res := &Importer{
		store:                 store,
		names:                 names,
		classifier:            classifier,
		jobsNum:               cfg.JobsNumber,
		immediateContributors: cfg.Import.ImmediateContributors,
		progressBar:           cfg.Import.ProgressBar,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// ImportProfiles imports a batch of records into the opus with opusID.
//
// The result maps scientific names to outcomes of their import. Records
// without a name get a "Row N" key, records repeating a name of an earlier
// record get a "<name> (Row N)" key, so the result has one entry per
// record. Failures of single records are reported in the result. An error
// is returned only if the opus cannot be resolved or the context is
// cancelled.
func (imp *Importer) ImportProfiles(
	ctx context.Context,
	opusID string,
	batch []profile.ImportRecord,
) (map[string]string, error) {
	start := time.Now()

	opus, err := imp.store.FindOpus(ctx, opusID)
	if err != nil {
		return nil, OpusLookupError(opusID, err)
	}
	if opus == nil {
		return nil, OpusNotFoundError(opusID)
	}

	recs := make([]profile.ImportRecord, len(batch))
	for i := range batch {
		recs[i] = batch[i]
		recs[i].Normalize()
	}

	slog.Info("Starting profile import",
		"opus_id", opus.ID,
		"opus", opus.Title,
		"records", len(recs),
		"jobs", imp.jobsNum,
	)

	uv, err := imp.collect(ctx, recs)
	if err != nil {
		return nil, err
	}

	lk, err := imp.materialize(ctx, opus, uv)
	if err != nil {
		return nil, err
	}

	job := &buildJob{opus: opus, lk: lk, first: firstRows(recs)}
	res, success, err := imp.build(ctx, job, recs)
	if err != nil {
		return nil, err
	}

	dur := float64(time.Since(start)) / float64(time.Second)
	slog.Info("Profile import finished",
		"opus_id", opus.ID,
		"records", len(recs),
		"success", success,
		"duration", gnfmt.TimeString(dur),
	)
	slog.Debug(fmt.Sprintf("Imported %s of %s profiles",
		humanize.Comma(success), humanize.Comma(int64(len(recs)))))
	return res, nil
}

// build runs the second pass. Every record gets an outcome even when its
// worker panics.
func (imp *Importer) build(
	ctx context.Context,
	job *buildJob,
	recs []profile.ImportRecord,
) (map[string]string, int64, error) {
	var results sync.Map
	var success atomic.Int64
	prog := newProgress(len(recs), imp.progressBar)
	defer prog.finish()

	err := forEach(ctx, imp.jobsNum, len(recs),
		func(ctx context.Context, idx int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			key, outcome := imp.safeImportRecord(ctx, job, idx, &recs[idx])
			storeOutcome(&results, key, idx, outcome)
			if outcome == profile.Success || outcome == profile.SuccessUnmatched {
				success.Add(1)
			}
			prog.increment()
			return nil
		},
	)
	if err != nil {
		return nil, 0, CancelledError("import of profiles", err)
	}

	res := make(map[string]string, len(recs))
	results.Range(func(k, v any) bool {
		res[k.(string)] = v.(string)
		return true
	})
	return res, success.Load(), nil
}

// storeOutcome saves the outcome of a record. Row keys can coincide with
// real names of the batch, a taken key gets the row suffix once more.
func storeOutcome(results *sync.Map, key string, idx int, outcome string) {
	for {
		if _, loaded := results.LoadOrStore(key, outcome); !loaded {
			return
		}
		key = profile.DuplicateKey(key, idx)
	}
}

// safeImportRecord turns a panic of a record's import into its failure.
func (imp *Importer) safeImportRecord(
	ctx context.Context,
	job *buildJob,
	idx int,
	rec *profile.ImportRecord,
) (key, outcome string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		key = rec.ScientificName
		if key == "" {
			key = profile.RowKey(idx)
		} else if job.first[key] != idx {
			key = profile.DuplicateKey(key, idx)
		}
		err := WorkerPanicError(key, r)
		slog.Error("Record import panicked",
			"key", key,
			"row", idx+1,
			"error", err,
		)
		outcome = profile.Failed(fmt.Sprintf("unexpected error: %v", r))
	}()
	return imp.importRecord(ctx, job, idx, rec)
}
