package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/red-newt/propsmith/internal/adapter"
	"github.com/red-newt/propsmith/internal/config"
	m "github.com/red-newt/propsmith/internal/model"
)

// ApplyArgs configures a mutation run.
type ApplyArgs struct {
	Paths   []m.Path
	DryRun  bool
	Threads int
	// Reports, when non-empty, is where the run report is persisted.
	// Dry runs are never persisted.
	Reports m.Path
}

// StatsArgs configures an analysis run.
type StatsArgs struct {
	Paths   []m.Path
	Threads int
	// Save persists the computed statistics under Reports.
	Save    bool
	Reports m.Path
	// FromReport loads previously saved statistics instead of scanning.
	FromReport bool
}

// ListArgs configures a file listing.
type ListArgs struct {
	Paths []m.Path
}

// Workflow is the narrow interface the CLI drives. Paths accept the /...
// recursion suffix; the default scan root is the current directory.
type Workflow interface {
	Apply(ctx context.Context, args ApplyArgs) (m.RunReport, error)
	Stats(ctx context.Context, args StatsArgs) (m.UsageStats, error)
	List(ctx context.Context, args ListArgs) ([]FileScan, error)
}

type workflow struct {
	fs    adapter.SourceFSAdapter
	orch  Orchestrator
	store adapter.ReportStore
	cfg   *config.Config
	log   *slog.Logger
}

// NewWorkflow creates a Workflow instance with the provided collaborators.
func NewWorkflow(fs adapter.SourceFSAdapter, orch Orchestrator, store adapter.ReportStore, cfg *config.Config, log *slog.Logger) Workflow {
	if log == nil {
		log = slog.Default()
	}

	return &workflow{fs: fs, orch: orch, store: store, cfg: cfg, log: log}
}

// Apply rewrites target elements across the discovered file set. Only root
// discovery fails the run; per-file errors are folded into the report.
func (w *workflow) Apply(ctx context.Context, args ApplyArgs) (m.RunReport, error) {
	started := time.Now()

	sources, err := w.discover(args.Paths)
	if err != nil {
		return m.RunReport{}, err
	}

	outcomes := make([]m.FileOutcome, len(sources))

	pool, ctx := errgroup.WithContext(ctx)
	pool.SetLimit(threadCount(args.Threads))

	for i, src := range sources {
		pool.Go(func() error {
			outcomes[i] = w.orch.ApplyFile(ctx, src, args.DryRun)

			return nil
		})
	}

	_ = pool.Wait()

	report := m.RunReport{
		Files:     outcomes,
		StartedAt: started.UTC(),
		DryRun:    args.DryRun,
	}

	for i, out := range outcomes {
		switch out.Status {
		case m.FileModified:
			report.Modified++
		case m.FileErrored:
			report.Errored++
		case m.FileSkipped:
			report.SkippedFiles++
		default:
			report.Unmodified++
		}

		report.BytesScanned += sources[i].Size
	}

	report.ElapsedMS = time.Since(started).Milliseconds()

	if args.Reports != "" && !args.DryRun {
		if err := w.store.SaveRun(args.Reports, report); err != nil {
			return report, fmt.Errorf("save run report: %w", err)
		}
	}

	return report, nil
}

// Stats aggregates component usage across the discovered file set. Workers
// produce pure per-file scans; folding happens here, in file order, so the
// totals are exact regardless of scheduling.
func (w *workflow) Stats(ctx context.Context, args StatsArgs) (m.UsageStats, error) {
	if args.FromReport {
		return w.store.LoadStats(args.Reports)
	}

	sources, err := w.discover(args.Paths)
	if err != nil {
		return m.UsageStats{}, err
	}

	scans := make([]FileScan, len(sources))

	pool, ctx := errgroup.WithContext(ctx)
	pool.SetLimit(threadCount(args.Threads))

	for i, src := range sources {
		pool.Go(func() error {
			scans[i] = w.orch.ScanFile(ctx, src)

			return nil
		})
	}

	_ = pool.Wait()

	acc := NewUsageAccumulator()
	for _, scan := range scans {
		if scan.Err != nil {
			w.log.Debug("file errored", "path", scan.Path, "err", scan.Err)
		}

		acc.Fold(scan)
	}

	stats := acc.Finalize(w.cfg.Priority.High, w.cfg.Priority.Medium)

	if args.Save {
		if err := w.store.SaveStats(args.Reports, stats); err != nil {
			return stats, fmt.Errorf("save usage report: %w", err)
		}
	}

	return stats, nil
}

// List scans the discovered files sequentially and returns their per-file
// element and match counts.
func (w *workflow) List(ctx context.Context, args ListArgs) ([]FileScan, error) {
	sources, err := w.discover(args.Paths)
	if err != nil {
		return nil, err
	}

	scans := make([]FileScan, len(sources))
	for i, src := range sources {
		scans[i] = w.orch.ScanFile(ctx, src)
	}

	return scans, nil
}

// discover resolves the scan roots into the ordered source file set. An
// unreadable root is the fatal case; it aborts before any file is processed.
func (w *workflow) discover(paths []m.Path) ([]m.SourceFile, error) {
	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	sources, err := w.fs.Get(paths, w.cfg.Extensions)
	if err != nil {
		return nil, fmt.Errorf("discover sources: %w", err)
	}

	w.log.Debug("discovered sources", "count", len(sources))

	return sources, nil
}

func threadCount(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}
