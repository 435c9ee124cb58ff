package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/gnames/gnprofiles/pkg/parserpool"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		msg        string
		name       string
		code       profile.NomCode
		parsed     bool
		canonical  string
		authorship string
	}{
		{"binomial", "Plantago major", profile.Botanical, true, "Plantago major", ""},
		{"with author", "Plantago major L.", profile.Botanical, true, "Plantago major", "L."},
		{"zoological", "Aus bus Linnaeus, 1758", profile.Zoological, true, "Aus bus", "Linnaeus 1758"},
		{"not a name", "$%^", profile.Botanical, false, "", ""},
	}

	for _, v := range tests {
		res := pool.Parse(v.name, v.code)
		assert.Equal(t, v.parsed, res.Parsed, v.msg)
		assert.Equal(t, v.canonical, res.Canonical, v.msg)
		assert.Equal(t, v.authorship, res.Authorship, v.msg)
	}
}

func TestParseConcurrent(t *testing.T) {
	pool := parserpool.NewPool(3)
	defer pool.Close()

	names := []string{"Homo sapiens", "Pomatomus saltatrix", "Rosa acicularis"}
	var wg sync.WaitGroup
	for i := range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := names[i%len(names)]
			res := pool.Parse(name, profile.Botanical)
			assert.Equal(t, name, res.Canonical)
		}()
	}
	wg.Wait()
}
