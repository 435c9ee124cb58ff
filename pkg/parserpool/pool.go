// Package parserpool provides a pool of gnparser instances for concurrent
// name parsing. This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
)

// Name contains the parts of a scientific name a profile keeps.
type Name struct {
	// Parsed is false when gnparser could not recognize the name.
	Parsed bool

	// Canonical is the simple canonical form of the name.
	Canonical string

	// Authorship is the normalized authorship of the name.
	Authorship string
}

// Pool provides a pool of gnparser instances for concurrent parsing.
// It maintains separate pools for botanical and zoological nomenclatural
// codes.
type Pool interface {
	// Parse parses a scientific name string using the nomenclatural code
	// of an opus. It is safe for concurrent use.
	Parse(nameString string, code profile.NomCode) Name

	// Close shuts down the parser pools and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

// PoolImpl implements the Pool interface using gnparser.NewPool.
type PoolImpl struct {
	botanicalCh  chan gnparser.GNparser
	zoologicalCh chan gnparser.GNparser
}

// NewPool creates a new parser pool with the specified number of parsers
// per nomenclatural code. If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}

	botanicalCfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
	)
	zoologicalCfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Zoological),
	)

	return &PoolImpl{
		botanicalCh:  gnparser.NewPool(botanicalCfg, poolSize),
		zoologicalCh: gnparser.NewPool(zoologicalCfg, poolSize),
	}
}

// Parse takes a parser from the pool of the given code, parses the name
// and returns the parser to the pool. Blocks while all parsers are busy.
func (p *PoolImpl) Parse(nameString string, code profile.NomCode) Name {
	ch := p.botanicalCh
	if code == profile.Zoological {
		ch = p.zoologicalCh
	}

	parser := <-ch
	parsed := parser.ParseName(nameString)
	ch <- parser

	var res Name
	if !parsed.Parsed {
		return res
	}
	res.Parsed = true
	if parsed.Canonical != nil {
		res.Canonical = parsed.Canonical.Simple
	}
	if parsed.Authorship != nil {
		res.Authorship = parsed.Authorship.Normalized
	}
	return res
}

// Close shuts down both parser pools and releases resources.
func (p *PoolImpl) Close() {
	if p.botanicalCh != nil {
		close(p.botanicalCh)
		for range p.botanicalCh {
		}
	}

	if p.zoologicalCh != nil {
		close(p.zoologicalCh)
		for range p.zoologicalCh {
		}
	}
}
