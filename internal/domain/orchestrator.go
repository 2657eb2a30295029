package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/red-newt/propsmith/internal/adapter"
	"github.com/red-newt/propsmith/internal/config"
	m "github.com/red-newt/propsmith/internal/model"
)

const defaultFilePerm os.FileMode = 0o644

// Orchestrator processes one file at a time: parse, build the import table,
// classify every element in document order, then either rewrite attributes
// (apply) or collect sightings (scan). Any per-file failure, including a
// panic inside the pipeline, becomes an errored outcome so a single bad file
// never aborts the run.
type Orchestrator interface {
	ApplyFile(ctx context.Context, src m.SourceFile, dryRun bool) m.FileOutcome
	ScanFile(ctx context.Context, src m.SourceFile) FileScan
}

type orchestrator struct {
	fs     adapter.SourceFSAdapter
	parser adapter.MarkupParser
	cfg    *config.Config
	log    *slog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and parser adapters. Configuration is read per call so flag
// overrides applied after construction are honored.
func NewOrchestrator(fs adapter.SourceFSAdapter, parser adapter.MarkupParser, cfg *config.Config, log *slog.Logger) Orchestrator {
	if log == nil {
		log = slog.Default()
	}

	return &orchestrator{fs: fs, parser: parser, cfg: cfg, log: log}
}

// ApplyFile merges the configured directives into every target element of one
// file and splices the result back, or records the would-be diff on dry runs.
func (o *orchestrator) ApplyFile(ctx context.Context, src m.SourceFile, dryRun bool) (outcome m.FileOutcome) {
	outcome = m.FileOutcome{Path: src.Origin, Status: m.FileUnmodified}

	defer func() {
		if r := recover(); r != nil {
			outcome.Status = m.FileErrored
			outcome.Err = fmt.Sprintf("internal error: %v", r)
		}
	}()

	content, pf, idx, err := o.parseFile(ctx, src)
	if err != nil {
		return errorOutcome(src.Origin, err)
	}

	if idx.file {
		outcome.Status = m.FileSkipped

		return outcome
	}

	rules := o.rules()
	table := BuildImportTable(pf.Imports)

	var edits []adapter.ElementEdit

	for _, el := range pf.Elements {
		if idx.ignores(el.Line) {
			continue
		}

		if _, verdict := Classify(el.Tag, table, rules); verdict != m.VerdictInScope {
			continue
		}

		outcome.Matches++

		merged, mo := MergeAttributes(el.Attrs, o.cfg.Directives, o.cfg.UpdateExisting)
		outcome.Added += len(mo.Added)
		outcome.Updated += len(mo.Updated)
		outcome.Skipped += len(mo.Skipped)

		if mo.Changed {
			edits = append(edits, adapter.ElementEdit{
				Span:        el.AttrSpan,
				Attrs:       merged,
				SelfClosing: el.SelfClosing,
			})
		}
	}

	if len(edits) == 0 {
		return outcome
	}

	rewritten := adapter.SpliceEdits(content, edits)
	outcome.Status = m.FileModified

	if dryRun {
		outcome.Diff = lineDiff(string(src.Origin), content, rewritten)

		return outcome
	}

	if err := o.fs.WriteFile(src.Origin, rewritten, filePerm(o.fs, src.Origin)); err != nil {
		return errorOutcome(src.Origin, fmt.Errorf("write %s: %w", src.Origin, err))
	}

	o.log.Debug("rewrote file", "path", src.Origin, "elements", len(edits))

	return outcome
}

// ScanFile classifies one file's elements and returns the pure sighting list
// for the usage accumulator.
func (o *orchestrator) ScanFile(ctx context.Context, src m.SourceFile) (scan FileScan) {
	scan = FileScan{Path: src.Origin, Bytes: src.Size}

	defer func() {
		if r := recover(); r != nil {
			scan.Err = fmt.Errorf("internal error: %v", r)
		}
	}()

	_, pf, idx, err := o.parseFile(ctx, src)
	if err != nil {
		return FileScan{Path: src.Origin, Err: err}
	}

	if idx.file {
		scan.Skipped = true

		return scan
	}

	rules := o.rules()
	table := BuildImportTable(pf.Imports)

	for _, el := range pf.Elements {
		if idx.ignores(el.Line) {
			continue
		}

		scan.Elements++

		match, verdict := Classify(el.Tag, table, rules)
		if verdict != m.VerdictInScope {
			continue
		}

		scan.Sightings = append(scan.Sightings, Sighting{Name: el.Tag, Match: match})
	}

	return scan
}

func (o *orchestrator) parseFile(ctx context.Context, src m.SourceFile) ([]byte, *adapter.ParsedFile, ignoreIndex, error) {
	content, err := o.fs.ReadFile(src.Origin)
	if err != nil {
		return nil, nil, ignoreIndex{}, fmt.Errorf("read %s: %w", src.Origin, err)
	}

	pf, err := o.parser.Parse(ctx, src.Origin, content, src.Dialect)
	if err != nil {
		return nil, nil, ignoreIndex{}, err
	}

	return content, pf, buildIgnoreIndex(pf.Comments, pf.Elements, content), nil
}

func (o *orchestrator) rules() Ruleset {
	return NewRuleset(o.cfg.Components, o.cfg.Modules, o.cfg.Include, o.cfg.Exclude)
}

func errorOutcome(path m.Path, err error) m.FileOutcome {
	return m.FileOutcome{Path: path, Status: m.FileErrored, Err: err.Error()}
}

// filePerm preserves the scanned file's permissions on rewrite.
func filePerm(fs adapter.SourceFSAdapter, path m.Path) os.FileMode {
	info, err := fs.FileInfo(path)
	if err != nil {
		return defaultFilePerm
	}

	return info.Mode().Perm()
}

// lineDiff renders the changed lines between two versions of a file.
// Unchanged regions are elided; the output is meant for the dry-run console.
func lineDiff(path string, before, after []byte) string {
	dmp := diffmatchpatch.New()

	src, dst, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lines)

	var b strings.Builder

	fmt.Fprintf(&b, "--- %s\n+++ %s\n", path, path)

	for _, d := range diffs {
		var prefix string

		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		default:
			continue
		}

		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
