package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/edge-mse/internal/report"
)

// evicter is implemented by sources that cache decoded images.
type evicter interface {
	Evict(path string)
}

// Batch drives an ordered list of images through a Pipeline and collects the
// report.
type Batch struct {
	pipeline *Pipeline
	logger   zerolog.Logger
}

// NewBatch creates a batch runner around p.
func NewBatch(p *Pipeline, logger zerolog.Logger) *Batch {
	return &Batch{
		pipeline: p,
		logger:   logger.With().Str("component", "batch").Logger(),
	}
}

// Run processes paths in order and returns the report.
//
// Per-image failures are recorded in the report and logged; the run always
// continues with the next image. Rows for an image whose save step failed
// are still reported. The only error returned is ctx.Err() when ctx is
// cancelled between images, together with the partial report.
func (b *Batch) Run(ctx context.Context, paths []string) (*report.Report, error) {
	rep := report.New()
	start := time.Now()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		res, err := b.pipeline.Process(path)
		if ev, ok := b.pipeline.source.(evicter); ok {
			ev.Evict(path)
		}

		if res != nil {
			rep.Add(res.Image, res.Scores)
		}
		if err != nil {
			rep.Fail(failureFrom(path, err))
			b.logger.Error().Err(err).Str("path", path).Msg("image failed")
		}
	}

	b.logger.Info().
		Int("images", len(paths)).
		Int("rows", len(rep.Rows)).
		Int("failures", len(rep.Failures)).
		Dur("elapsed", time.Since(start)).
		Msg("batch complete")

	return rep, nil
}

func failureFrom(path string, err error) report.Failure {
	f := report.Failure{Path: path, Kind: "internal", Step: "process", Message: err.Error()}
	var pe *Error
	if errors.As(err, &pe) {
		f.Kind = string(pe.Kind)
		f.Step = string(pe.Step)
		if pe.Cause != nil {
			f.Message = pe.Cause.Error()
		}
	}
	return f
}
