// Package ioverifier matches scientific names with GNverifier and
// provides identifiers and classifications of matched taxa.
package ioverifier

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gnames/gnfmt"
	vlib "github.com/gnames/gnlib/ent/verifier"
	"github.com/gnames/gnprofiles/internal/iocache"
	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"golang.org/x/time/rate"
)

// prefetchBatch is the number of names sent in one request by Prefetch.
const prefetchBatch = 500

// Verifier implements importer.NameResolver and importer.Classifier.
// Matches are kept in memory and, when a cache is given, in the
// name-match cache, so every name is sent to GNverifier at most once.
type Verifier struct {
	url         string
	dataSources []int
	client      *http.Client
	limiter     *rate.Limiter
	cache       *iocache.Cache
	enc         gnfmt.GNjson

	// byName and byGUID keep matches found during this run.
	byName sync.Map
	byGUID sync.Map
}

// New creates a Verifier. The cache can be nil.
func New(cfg config.VerifierConfig, cache *iocache.Cache) *Verifier {
	rps := max(1, cfg.RequestsPerSecond)
	timeout := time.Duration(max(1, cfg.Timeout)) * time.Second
	return &Verifier{
		url:         cfg.URL,
		dataSources: cfg.DataSources,
		client:      &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		cache:       cache,
	}
}

// ResolveScientificName returns the GUID of the best match of a name.
// Names without a match return an empty string.
func (v *Verifier) ResolveScientificName(
	ctx context.Context,
	name string,
) (string, error) {
	m, err := v.match(ctx, name)
	if err != nil {
		return "", err
	}
	return m.GUID, nil
}

// ResolveNomenclatureIdentifier returns the name ID of a GUID that was
// resolved earlier. When several names resolved to the GUID, the ID of
// its accepted name wins over IDs of synonyms.
func (v *Verifier) ResolveNomenclatureIdentifier(
	ctx context.Context,
	guid string,
) (string, error) {
	if m := v.findGUID(ctx, guid); m != nil {
		return m.NomenclatureID, nil
	}
	return "", nil
}

// FetchClassification returns the classification of a GUID that was
// resolved earlier.
func (v *Verifier) FetchClassification(
	ctx context.Context,
	guid string,
) ([]profile.Taxon, error) {
	if m := v.findGUID(ctx, guid); m != nil {
		return m.Classification, nil
	}
	return nil, nil
}

// Prefetch verifies names absent from the cache in large requests.
// Later lookups of these names do not call the service.
func (v *Verifier) Prefetch(ctx context.Context, names []string) error {
	var missing []string
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		if m := v.cached(ctx, name); m != nil {
			v.remember(m)
			continue
		}
		missing = append(missing, name)
	}

	for start := 0; start < len(missing); start += prefetchBatch {
		end := min(start+prefetchBatch, len(missing))
		matches, err := v.verify(ctx, missing[start:end])
		if err != nil {
			return err
		}
		for _, m := range matches {
			v.save(ctx, m)
		}
	}
	slog.Info("Names are verified",
		"names", len(seen),
		"requested", len(missing),
	)
	return nil
}

func (v *Verifier) match(ctx context.Context, name string) (*iocache.Match, error) {
	if m := v.cached(ctx, name); m != nil {
		v.remember(m)
		return m, nil
	}

	matches, err := v.verify(ctx, []string{name})
	if err != nil {
		return nil, err
	}
	res := &iocache.Match{Name: name}
	if len(matches) > 0 {
		res = matches[0]
		res.Name = name
	}
	v.save(ctx, res)
	return res, nil
}

func (v *Verifier) cached(ctx context.Context, name string) *iocache.Match {
	if m, ok := v.byName.Load(name); ok {
		return m.(*iocache.Match)
	}
	if v.cache == nil {
		return nil
	}
	m, ok, err := v.cache.ByName(ctx, name)
	if err != nil {
		slog.Warn("Cannot read name-match cache", "name", name, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return m
}

func (v *Verifier) save(ctx context.Context, m *iocache.Match) {
	v.remember(m)
	if v.cache == nil {
		return
	}
	if err := v.cache.Store(ctx, m); err != nil {
		slog.Warn("Cannot update name-match cache", "name", m.Name, "error", err)
	}
}

func (v *Verifier) remember(m *iocache.Match) {
	v.byName.Store(m.Name, m)
	if m.GUID == "" {
		return
	}
	old, loaded := v.byGUID.LoadOrStore(m.GUID, m)
	if loaded && m.Accepted && !old.(*iocache.Match).Accepted {
		v.byGUID.CompareAndSwap(m.GUID, old, m)
	}
}

func (v *Verifier) findGUID(ctx context.Context, guid string) *iocache.Match {
	if guid == "" {
		return nil
	}
	if m, ok := v.byGUID.Load(guid); ok {
		return m.(*iocache.Match)
	}
	if v.cache == nil {
		return nil
	}
	m, ok, err := v.cache.ByGUID(ctx, guid)
	if err != nil {
		slog.Warn("Cannot read name-match cache", "guid", guid, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	v.remember(m)
	return m
}

// verify sends names to GNverifier and returns their matches in the
// order of names.
func (v *Verifier) verify(
	ctx context.Context,
	names []string,
) ([]*iocache.Match, error) {
	if err := v.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := v.enc.Encode(vlib.Input{
		NameStrings:      names,
		DataSources:      v.dataSources,
		WithSpeciesGroup: true,
	})
	if err != nil {
		return nil, RequestError(v.url, err)
	}

	url := v.url + "verifications"
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, url, bytes.NewReader(body),
	)
	if err != nil {
		return nil, RequestError(url, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, RequestError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ResponseError(url, resp.StatusCode, nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ResponseError(url, resp.StatusCode, err)
	}

	var out vlib.Output
	if err = v.enc.Decode(data, &out); err != nil {
		return nil, ResponseError(url, resp.StatusCode, err)
	}

	res := make([]*iocache.Match, len(names))
	for i, name := range names {
		res[i] = &iocache.Match{Name: name}
		if i < len(out.Names) {
			res[i] = toMatch(out.Names[i])
			res[i].Name = name
		}
	}
	slog.Debug("Names sent to verifier", "names", len(names))
	return res, nil
}
