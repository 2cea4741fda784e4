package driver

import (
	"context"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/source"
	"polint/internal/spell"
)

// CheckOptions configures a parallel check run.
type CheckOptions struct {
	Rules         *checker.RuleSet
	CheckFuzzy    bool
	CheckNoqa     bool
	CheckObsolete bool

	// DictID is the dictionary for identifiers and contexts, shared by
	// all files. Dicts loads per-language translation dictionaries.
	DictID *spell.Dict
	Dicts  *spell.Cache

	// Jobs caps the number of files checked concurrently. Zero or
	// negative means one worker per CPU.
	Jobs int

	// Events, when set, receives per-file progress events.
	Events EventSink
}

// CheckResult holds the outcome of checking one file.
type CheckResult struct {
	Path       string
	Bag        *diag.Bag
	Misspelled []string
}

// readFile reads and normalizes a file, reporting a failure as a
// read-error diagnostic instead of an error: a broken file must not
// abort the whole run.
func readFile(path string) (*source.File, *diag.Diagnostic) {
	f, err := os.Open(path) // #nosec G304 -- paths come from the command line
	if err != nil {
		d := diag.NewError("read-error", path, "could not open file")
		return nil, &d
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		d := diag.NewError("read-error", path, "could not read file")
		return nil, &d
	}
	return source.New(path, data), nil
}

// CheckFile checks a single file and returns its result.
func CheckFile(path string, opts CheckOptions) CheckResult {
	file, readErr := readFile(path)
	if readErr != nil {
		bag := diag.NewBag(0)
		bag.Add(*readErr)
		return CheckResult{Path: path, Bag: bag}
	}
	c := checker.New(file, checker.Options{
		Path:          path,
		Rules:         opts.Rules,
		CheckFuzzy:    opts.CheckFuzzy,
		CheckNoqa:     opts.CheckNoqa,
		CheckObsolete: opts.CheckObsolete,
		DictID:        opts.DictID,
		Dicts:         opts.Dicts,
	})
	c.Run()
	return CheckResult{Path: path, Bag: c.Bag(), Misspelled: c.Misspelled()}
}

// CheckFiles checks all files in parallel. Results are returned in
// the order of the given files.
func CheckFiles(ctx context.Context, files []string, opts CheckOptions) ([]CheckResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты: индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]CheckResult, len(files))

	if opts.Events != nil {
		for _, path := range files {
			opts.Events.OnEvent(Event{File: path, Status: StatusQueued})
		}
	}

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
			if opts.Events != nil {
				opts.Events.OnEvent(Event{File: path, Status: StatusChecking})
			}
			results[i] = CheckFile(path, opts)
			if opts.Events != nil {
				status := StatusDone
				if results[i].Bag.HasErrors() {
					status = StatusError
				}
				opts.Events.OnEvent(Event{
					File:     path,
					Status:   status,
					Problems: results[i].Bag.Len(),
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
