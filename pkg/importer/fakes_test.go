package importer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/gnames/gnprofiles/pkg/parserpool"
	"github.com/google/uuid"
)

const (
	testOpusID  = "opus-1"
	testVocabID = "vocab-1"
	testDataRes = "dr-1"
)

// memStore keeps reference data and profiles in memory.
type memStore struct {
	mu sync.Mutex

	opuses       map[string]*profile.Opus
	terms        map[string]*profile.Term
	contributors map[string]*profile.Contributor
	profiles     map[string]*profile.Profile

	termCreates        map[string]int
	contributorCreates map[string]int
	contributorSaves   int

	opusErr        error
	termErrs       map[string]error
	contributorErr map[string]error
	saveErrs       map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		opuses: map[string]*profile.Opus{
			testOpusID: {
				ID:               testOpusID,
				Title:            "Flora",
				DataResourceID:   testDataRes,
				AttributeVocabID: testVocabID,
				Code:             profile.Botanical,
			},
		},
		terms:              make(map[string]*profile.Term),
		contributors:       make(map[string]*profile.Contributor),
		profiles:           make(map[string]*profile.Profile),
		termCreates:        make(map[string]int),
		contributorCreates: make(map[string]int),
		termErrs:           make(map[string]error),
		contributorErr:     make(map[string]error),
		saveErrs:           make(map[string]error),
	}
}

func (s *memStore) FindOpus(_ context.Context, id string) (*profile.Opus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opusErr != nil {
		return nil, s.opusErr
	}
	return s.opuses[id], nil
}

func (s *memStore) CreateOpus(_ context.Context, o *profile.Opus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	s.opuses[o.ID] = o
	return nil
}

func (s *memStore) FindTerm(
	_ context.Context,
	vocabID, label string,
) (*profile.Term, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.termErrs[label]; ok {
		return nil, err
	}
	return s.terms[vocabID+"|"+label], nil
}

func (s *memStore) CreateTerm(
	_ context.Context,
	vocabID, label string,
) (*profile.Term, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := vocabID + "|" + label
	s.termCreates[key]++
	t := &profile.Term{ID: uuid.NewString(), VocabID: vocabID, Name: label}
	s.terms[key] = t
	return t, nil
}

func (s *memStore) FindContributor(
	_ context.Context,
	name string,
) (*profile.Contributor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.contributorErr[name]; ok {
		return nil, err
	}
	return s.contributors[name], nil
}

func (s *memStore) CreateContributor(
	_ context.Context,
	name, dataResourceID string,
) (*profile.Contributor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contributorCreates[name]++
	return &profile.Contributor{
		ID:             uuid.NewString(),
		Name:           name,
		DataResourceID: dataResourceID,
	}, nil
}

func (s *memStore) SaveContributor(
	_ context.Context,
	c *profile.Contributor,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contributorSaves++
	s.saveContributor(*c)
	return nil
}

func (s *memStore) saveContributor(c profile.Contributor) {
	if _, ok := s.contributors[c.Name]; ok {
		return
	}
	s.contributors[c.Name] = &c
}

func (s *memStore) FindProfile(
	_ context.Context,
	opusID, name string,
) (*profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[opusID+"|"+name], nil
}

func (s *memStore) SaveProfile(_ context.Context, p *profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.saveErrs[p.ScientificName]; ok {
		return err
	}
	for _, c := range p.Contributors() {
		s.saveContributor(c)
	}
	s.profiles[p.OpusID+"|"+p.ScientificName] = p
	return nil
}

func (s *memStore) profile(name string) *profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[testOpusID+"|"+name]
}

// fakeResolver matches names from a fixed table.
type fakeResolver struct {
	guids  map[string]string
	errs   map[string]error
	panics map[string]bool
	calls  atomic.Int64
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		guids:  make(map[string]string),
		errs:   make(map[string]error),
		panics: make(map[string]bool),
	}
}

func (r *fakeResolver) ResolveScientificName(
	_ context.Context,
	name string,
) (string, error) {
	r.calls.Add(1)
	if r.panics[name] {
		panic("resolver exploded")
	}
	if err, ok := r.errs[name]; ok {
		return "", err
	}
	return r.guids[name], nil
}

func (r *fakeResolver) ResolveNomenclatureIdentifier(
	_ context.Context,
	guid string,
) (string, error) {
	return "nom-" + guid, nil
}

func (r *fakeResolver) FetchClassification(
	_ context.Context,
	guid string,
) ([]profile.Taxon, error) {
	return []profile.Taxon{
		{Rank: "kingdom", GUID: "k-1", ScientificName: "Plantae"},
		{Rank: "species", GUID: guid, ScientificName: "Species"},
	}, nil
}

// fakeParser returns the first two words as a canonical form and the rest
// as authorship.
type fakeParser struct{}

func (fakeParser) Parse(name string, _ profile.NomCode) parserpool.Name {
	words := strings.Fields(name)
	if len(words) < 2 {
		return parserpool.Name{}
	}
	return parserpool.Name{
		Parsed:     true,
		Canonical:  words[0] + " " + words[1],
		Authorship: strings.Join(words[2:], " "),
	}
}

func (fakeParser) Close() {}

var errBoom = errors.New("boom")

func newTestImporter(
	st *memStore,
	rslv *fakeResolver,
	opts ...config.Option,
) *Importer {
	cfg := config.New()
	cfg.Update(append([]config.Option{config.OptJobsNumber(4)}, opts...))
	return New(cfg, st, rslv, rslv)
}
