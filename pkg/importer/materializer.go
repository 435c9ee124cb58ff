package importer

import (
	"context"
	"log/slog"

	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/gnames/gnprofiles/pkg/textclean"
)

// lookups map reference values of a batch to their stored entities.
// They are filled before the build pass and only read during it.
type lookups struct {
	terms        map[string]profile.Term
	contributors map[string]profile.Contributor

	termsCreated        int
	contributorsCreated int
}

// materialize finds or creates every term and contributor collected from
// the batch. It runs in one goroutine, so each unique value is created at
// most once. A store error for a value is logged and the value is left
// out of lookups.
func (imp *Importer) materialize(
	ctx context.Context,
	opus *profile.Opus,
	uv *uniqueValues,
) (*lookups, error) {
	labels := uv.labels.sorted()
	names := uv.names.sorted()
	res := &lookups{
		terms:        make(map[string]profile.Term, len(labels)),
		contributors: make(map[string]profile.Contributor, len(names)),
	}

	for _, label := range labels {
		if err := ctx.Err(); err != nil {
			return nil, CancelledError("materialization of terms", err)
		}
		term, created, err := imp.getOrCreateTerm(ctx, opus.AttributeVocabID, label)
		if err != nil {
			slog.Error("Cannot get vocabulary term",
				"vocab_id", opus.AttributeVocabID,
				"term", label,
				"error", err,
			)
			continue
		}
		if created {
			res.termsCreated++
		}
		res.terms[label] = *term
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, CancelledError("materialization of contributors", err)
		}
		c, created, err := imp.getOrCreateContributor(ctx, name, opus.DataResourceID)
		if err != nil {
			slog.Error("Cannot get contributor",
				"contributor", name,
				"error", err,
			)
			continue
		}
		if created {
			res.contributorsCreated++
		}
		res.contributors[name] = *c
	}

	slog.Info("Reference data is ready",
		"terms", len(res.terms),
		"terms_created", res.termsCreated,
		"contributors", len(res.contributors),
		"contributors_created", res.contributorsCreated,
	)
	return res, nil
}

func (imp *Importer) getOrCreateTerm(
	ctx context.Context,
	vocabID, label string,
) (*profile.Term, bool, error) {
	term, err := imp.store.FindTerm(ctx, vocabID, label)
	if err != nil {
		return nil, false, err
	}
	if term != nil {
		return term, false, nil
	}
	term, err = imp.store.CreateTerm(ctx, vocabID, label)
	if err != nil {
		return nil, false, err
	}
	return term, true, nil
}

func (imp *Importer) getOrCreateContributor(
	ctx context.Context,
	name, dataResourceID string,
) (*profile.Contributor, bool, error) {
	c, err := imp.store.FindContributor(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if c != nil {
		return c, false, nil
	}
	c, err = imp.store.CreateContributor(ctx, name, dataResourceID)
	if err != nil {
		return nil, false, err
	}
	if imp.immediateContributors {
		if err = imp.store.SaveContributor(ctx, c); err != nil {
			return nil, false, err
		}
	}
	return c, true, nil
}

// resolveContributors converts names to contributors. Names absent from
// lookups are dropped with a warning, repeated names are kept once.
func (l *lookups) resolveContributors(
	scientificName, role string,
	names []string,
) []profile.Contributor {
	var res []profile.Contributor
	seen := make(map[string]struct{}, len(names))
	for _, v := range names {
		name := textclean.CleanName(v)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		c, ok := l.contributors[name]
		if !ok {
			slog.Warn("Contributor is not available, skipping",
				"scientific_name", scientificName,
				"role", role,
				"contributor", v,
			)
			continue
		}
		seen[name] = struct{}{}
		res = append(res, c)
	}
	return res
}
