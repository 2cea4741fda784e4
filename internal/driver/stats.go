package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"polint/internal/stats"
)

// StatsOptions configures a parallel statistics run.
type StatsOptions struct {
	// WithWords enables word and character counters.
	WithWords bool
	// Jobs caps the number of files processed concurrently. Zero or
	// negative means one worker per CPU.
	Jobs int
}

// StatsResult holds the statistics of one file, or the error that
// prevented computing them.
type StatsResult struct {
	Path  string
	Stats *stats.File
	Err   error
}

// StatsFile computes the statistics of a single file.
func StatsFile(path string, opts StatsOptions) StatsResult {
	file, readErr := readFile(path)
	if readErr != nil {
		return StatsResult{Path: path, Err: fmt.Errorf("%s", readErr.Message)}
	}
	return StatsResult{Path: path, Stats: stats.Collect(path, file.Content, opts.WithWords)}
}

// StatsFiles computes statistics for all files in parallel. Results
// are returned in the order of the given files.
func StatsFiles(ctx context.Context, files []string, opts StatsOptions) ([]StatsResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]StatsResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = StatsFile(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
