package ioverifier

import (
	"strings"

	vlib "github.com/gnames/gnlib/ent/verifier"
	"github.com/gnames/gnprofiles/internal/iocache"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
)

// isAccepted reports match types that identify the taxon of the whole
// name. Partial matches point to a higher taxon and are ignored.
func isAccepted(mt vlib.MatchTypeValue) bool {
	switch mt {
	case vlib.Exact, vlib.Fuzzy, vlib.ExactSpeciesGroup, vlib.FuzzySpeciesGroup:
		return true
	default:
		return false
	}
}

// toMatch converts a verification of a name to a cached match.
func toMatch(n vlib.Name) *iocache.Match {
	res := &iocache.Match{Name: n.Name}
	br := n.BestResult
	if br == nil || !isAccepted(n.MatchType) {
		return res
	}

	res.GUID = br.CurrentRecordID
	if res.GUID == "" {
		res.GUID = br.RecordID
	}
	if res.GUID == "" {
		return res
	}
	res.NomenclatureID = br.MatchedNameID
	res.Accepted = !br.IsSynonym
	res.Classification = classification(
		br.ClassificationPath, br.ClassificationRanks, br.ClassificationIDs,
	)
	return res
}

// classification builds taxa from pipe-delimited path, ranks and ids.
// Ranks and ids can be shorter than the path or missing.
func classification(path, ranks, ids string) []profile.Taxon {
	if path == "" {
		return nil
	}
	names := strings.Split(path, "|")
	rr := splitTo(ranks, len(names))
	ii := splitTo(ids, len(names))

	res := make([]profile.Taxon, 0, len(names))
	for i, v := range names {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		res = append(res, profile.Taxon{
			Rank:           strings.TrimSpace(rr[i]),
			GUID:           strings.TrimSpace(ii[i]),
			ScientificName: v,
		})
	}
	return res
}

func splitTo(s string, n int) []string {
	res := make([]string, n)
	if s == "" {
		return res
	}
	copy(res, strings.Split(s, "|"))
	return res
}
