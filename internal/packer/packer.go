// Package packer lays out same-size photos onto fixed-size pages and renders
// each page as a print-ready PNG collage.
package packer

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/yotam4h/photopacker/internal/layout"
	"github.com/yotam4h/photopacker/internal/scanner"
)

// CollagesDir is the subdirectory of the output root that receives pages.
const CollagesDir = "collages"

// Packer renders size groups into page collages. One Packer serves one run;
// its configuration is immutable after New.
type Packer struct {
	page      layout.PageSpec
	dpi       int
	marginCm  float64
	outputDir string
	backing   color.Color
}

// Options control a single Pack run.
type Options struct {
	Workers      int  // parallel page renders, minimum 1
	ShowProgress bool // render a progress bar on stderr
	Verbose      bool // print per-group grid info
}

// Result summarizes a run. Non-fatal problems accumulate here instead of
// aborting, so one bad file or oversized group cannot sink a whole run.
type Result struct {
	RunID           string
	GroupsProcessed int
	GroupsSkipped   int
	PagesWritten    int
	Warnings        []string // skipped groups (slot too large for the page)
	Errors          []error  // per-image decode failures and per-page write failures
}

// Failed reports whether anything went wrong, even though the run completed.
// Callers use it to exit non-zero while still keeping all produced pages.
func (r *Result) Failed() bool {
	return len(r.Warnings) > 0 || len(r.Errors) > 0
}

// batchJob is one page worth of images with its pre-assigned sequence
// number. Numbers are allocated during planning, before any parallel
// rendering, so output names are deterministic for a given input.
type batchJob struct {
	seq   int
	size  layout.PhysicalSize
	plan  layout.GridPlan
	paths []string
}

// New validates the run configuration and prepares the output directory.
// Validation failures here are fatal: nothing has been written yet.
func New(page layout.PageSpec, dpi, marginMM int, outputDir string) (*Packer, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %d", dpi)
	}
	if marginMM < 0 {
		return nil, fmt.Errorf("margin must not be negative, got %dmm", marginMM)
	}
	if page.WidthCm <= 0 || page.HeightCm <= 0 {
		return nil, fmt.Errorf("invalid page dimensions: %gx%gcm", page.WidthCm, page.HeightCm)
	}

	if err := os.MkdirAll(filepath.Join(outputDir, CollagesDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Packer{
		page:      page,
		dpi:       dpi,
		marginCm:  float64(marginMM) / 10.0,
		outputDir: outputDir,
		backing:   color.White,
	}, nil
}

// SetBacking overrides the default white backing color.
func (p *Packer) SetBacking(c color.Color) {
	p.backing = c
}

// Pack renders all groups. Groups whose slot does not fit the page even once
// are skipped with a warning; everything else is split into page-sized
// batches and rendered on a small worker pool.
func (p *Packer) Pack(ctx context.Context, groups []scanner.SizeGroup, opts Options) (*Result, error) {
	result := &Result{RunID: uuid.New().String()}

	jobs := p.planBatches(groups, result, opts.Verbose)
	if len(jobs) == 0 {
		return result, nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = newPackProgressBar(len(jobs))
	}

	type pageOutcome struct {
		imageErrs []error
		writeErr  error
	}
	outcomes := make([]pageOutcome, len(jobs))

	jobCh := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobCh {
				imageErrs, writeErr := p.renderPage(jobs[i])
				outcomes[i] = pageOutcome{imageErrs: imageErrs, writeErr: writeErr}
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}()
	}

	dispatched := 0
dispatch:
	for i := range jobs {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobCh <- i:
			dispatched++
		}
	}
	close(jobCh)
	wg.Wait()

	if bar != nil {
		_ = bar.Finish()
	}

	// Only dispatched jobs produced pages; indices are handed out in order,
	// so the first `dispatched` outcome slots are exactly the rendered ones.
	for _, o := range outcomes[:dispatched] {
		result.Errors = append(result.Errors, o.imageErrs...)
		if o.writeErr != nil {
			result.Errors = append(result.Errors, o.writeErr)
		} else {
			result.PagesWritten++
		}
	}
	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	return result, nil
}

// planBatches computes the grid for every group and splits image lists into
// page-sized batches with globally monotonic sequence numbers.
func (p *Packer) planBatches(groups []scanner.SizeGroup, result *Result, verbose bool) []batchJob {
	var jobs []batchJob
	seq := 0

	for _, group := range groups {
		plan := layout.PlanGrid(p.page, group.Size, p.marginCm)
		capacity := plan.Capacity()

		if capacity == 0 {
			result.GroupsSkipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"images %s are too large for %s pages, group skipped (%d images)",
				group.Size, p.page.Name, len(group.Paths)))
			continue
		}

		if verbose {
			fmt.Printf("Size %s: %d images, %d×%d grid (%d per page)\n",
				group.Size, len(group.Paths), plan.Cols, plan.Rows, capacity)
		}

		result.GroupsProcessed++
		for start := 0; start < len(group.Paths); start += capacity {
			end := min(start+capacity, len(group.Paths))
			seq++
			jobs = append(jobs, batchJob{
				seq:   seq,
				size:  group.Size,
				plan:  plan,
				paths: group.Paths[start:end],
			})
		}
	}

	return jobs
}

// pagePath returns the output path for a page sequence number.
func (p *Packer) pagePath(seq int) string {
	return filepath.Join(p.outputDir, CollagesDir, fmt.Sprintf("collage_%03d.png", seq))
}

func newPackProgressBar(count int) *progressbar.ProgressBar {
	return progressbar.NewOptions(count,
		progressbar.OptionSetDescription("Rendering pages"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)
}
