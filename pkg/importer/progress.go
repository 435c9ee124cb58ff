package importer

import (
	"log/slog"
	"sync/atomic"

	"github.com/cheggaaa/pb/v3"
)

// progress counts processed records of the build pass. It writes a log
// line every 5% of the batch and optionally drives a terminal progress bar.
type progress struct {
	total     int64
	interval  int64
	processed atomic.Int64
	bar       *pb.ProgressBar
}

func newProgress(total int, withBar bool) *progress {
	res := &progress{
		total:    int64(total),
		interval: progressInterval(total),
	}
	if withBar && total > 0 {
		res.bar = newProgressBar(total, "Importing profiles: ")
	}
	return res
}

// progressInterval is the number of records between two progress log
// lines, it is never less than 1.
func progressInterval(total int) int64 {
	return max(1, int64(total)*5/100)
}

// newProgressBar creates a new progress bar with consistent settings.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

// increment registers one more processed record. It returns true when the
// record crossed a logging interval.
func (p *progress) increment() bool {
	n := p.processed.Add(1)
	if p.bar != nil {
		p.bar.Increment()
	}
	if n%p.interval != 0 && n != p.total {
		return false
	}
	slog.Info("Import progress",
		"processed", n,
		"total", p.total,
		"percent", n*100/max(1, p.total),
	)
	return true
}

func (p *progress) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
