package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"smdoctor/internal/debugger"
	"smdoctor/internal/facts"
	"smdoctor/internal/history"
)

// ExplainResult pairs a fact bundle with its derived report.
type ExplainResult struct {
	Bundle *facts.Bundle
	Report *debugger.Report
	Digest history.Digest
}

// FrameResult is the diagnosis of one frame of a multi-frame event.
type FrameResult struct {
	Index  int
	Report *debugger.Report
}

// Explain loads a single fact bundle and derives its report.
func Explain(path string) (*ExplainResult, error) {
	bundle, err := facts.Load(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read facts file: %w", err)
	}
	return &ExplainResult{
		Bundle: bundle,
		Report: debugger.Build(bundle),
		Digest: history.DigestOf(data),
	}, nil
}

// ExplainEvent diagnoses every frame of an event export in parallel.
// Results keep frame order regardless of scheduling.
func ExplainEvent(ctx context.Context, path string, jobs int) (*facts.Event, []FrameResult, error) {
	ev, err := facts.LoadEvent(path)
	if err != nil {
		return nil, nil, err
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if _, err := safecast.Conv[uint16](jobs); err != nil {
		return nil, nil, fmt.Errorf("invalid jobs value %d: %w", jobs, err)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FrameResult, len(ev.Frames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(ev.Frames)))

	for i := range ev.Frames {
		g.Go(func(i int) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = FrameResult{
					Index:  i,
					Report: debugger.Build(&ev.Frames[i]),
				}
				return nil
			}
		}(i))
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return ev, results, nil
}
