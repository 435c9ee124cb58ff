package iostore

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprofiles/pkg/schema"
	"github.com/jackc/pgx/v5"
)

// Analyze updates query planner statistics of profile tables. Bulk
// imports change row counts a lot, and stale statistics make lookups of
// existing profiles slow on the next import.
func (s *Store) Analyze(ctx context.Context) error {
	slog.Info("Running ANALYZE on profile tables...")
	start := time.Now()

	for _, v := range schema.TableNames() {
		q := "ANALYZE " + pgx.Identifier{v}.Sanitize()
		if _, err := s.pool.Exec(ctx, q); err != nil {
			slog.Error("Failed to run ANALYZE", "table", v, "error", err)
			return AnalyzeError(v, err)
		}
	}

	dur := float64(time.Since(start)) / float64(time.Second)
	slog.Info("ANALYZE completed", "duration", gnfmt.TimeString(dur))
	return nil
}
