package cu2qu

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// forEach calls fn for every index in [0, n) on up to workers goroutines.
// If workers is 0 or negative, GOMAXPROCS is used.
func forEach(n, workers int, fn func(i int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)
	if workers <= 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	work := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}
	for i := range n {
		work <- i
	}
	close(work)
	wg.Wait()
}

// ConvertAll converts every item with [Convert], using up to workers
// goroutines. The results are in input order and are identical to those of
// sequential conversion. opts.Stats, if set, may be shared with other
// conversions running concurrently.
func ConvertAll[A Approximable](items []A, opts Options, workers int) []Conversion {
	out := make([]Conversion, len(items))
	forEach(len(items), workers, func(i int) {
		out[i] = Convert(items[i], opts)
	})
	return out
}

// GlyphJob is a glyph whose masters [ConvertGlyphs] converts together.
type GlyphJob struct {
	Name    string
	Masters []Drawer
	Outs    []Pen
}

// ConvertGlyphs runs [GlyphsToQuadratic] for every job, using up to workers
// goroutines. Every job must draw into its own pens. Failing jobs don't
// stop the others; the returned error joins the errors of all failed jobs,
// and incompatibility errors carry the job's name.
func ConvertGlyphs(jobs []GlyphJob, opts Options, workers int) error {
	errs := make([]error, len(jobs))
	forEach(len(jobs), workers, func(i int) {
		job := jobs[i]
		Logger().Debug("converting glyph", "glyph", job.Name, "masters", len(job.Masters))
		err := GlyphsToQuadratic(job.Masters, job.Outs, opts)
		if err == nil {
			return
		}
		var ierr *IncompatibleError
		if errors.As(err, &ierr) {
			ierr.Glyph = job.Name
			errs[i] = err
		} else {
			errs[i] = fmt.Errorf("glyph %q: %w", job.Name, err)
		}
	})
	return errors.Join(errs...)
}
