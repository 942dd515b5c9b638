// Package adapter contains infrastructure adapters for the pegsolve CLI.
package adapter

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

const (
	traceFilePattern = "trace_*.yaml"
	traceFileFormat  = "trace_%02d.yaml"
	traceFilePrefix  = "trace_"
	traceFileSuffix  = ".yaml"
)

// traceRecord is the on-disk form of a trace. Boards are stored as their
// trimmed rows so every rendering survives a YAML round trip.
type traceRecord struct {
	Requested   int        `yaml:"requested"`
	Hole        m.Position `yaml:"hole"`
	Substituted bool       `yaml:"substituted,omitempty"`
	Solved      bool       `yaml:"solved"`
	Boards      [][]string `yaml:"boards"`
	Jumps       []m.Jump   `yaml:"jumps,omitempty"`
	Stats       m.Stats    `yaml:"stats"`
}

func newTraceRecord(trace m.Trace) traceRecord {
	record := traceRecord{
		Requested:   trace.Requested,
		Hole:        trace.Hole,
		Substituted: trace.Substituted,
		Solved:      trace.Solved,
		Boards:      make([][]string, 0, len(trace.Boards)),
		Jumps:       trace.Jumps,
		Stats:       trace.Stats,
	}

	for _, board := range trace.Boards {
		record.Boards = append(record.Boards, boardRows(board))
	}

	return record
}

func (r traceRecord) trace() m.Trace {
	trace := m.Trace{
		Requested:   r.Requested,
		Hole:        r.Hole,
		Substituted: r.Substituted,
		Solved:      r.Solved,
		Jumps:       r.Jumps,
		Stats:       r.Stats,
	}

	if len(r.Boards) > 0 {
		trace.Boards = make([]string, 0, len(r.Boards))
	}

	for _, rows := range r.Boards {
		trace.Boards = append(trace.Boards, renderRows(rows))
	}

	return trace
}

// boardRows splits a rendering into rows without their indentation.
func boardRows(board string) []string {
	lines := strings.Split(strings.TrimRight(board, "\n"), "\n")

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.TrimSpace(line))
	}

	return rows
}

// renderRows rebuilds a rendering from trimmed rows, indenting row i of n
// by n-i spaces as the board renderer does.
func renderRows(rows []string) string {
	var sb strings.Builder

	for i, row := range rows {
		sb.WriteString(strings.Repeat(" ", len(rows)-i))
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ReportStore persists solver traces between runs.
type ReportStore interface {
	// SaveTraces writes traces to dir in order, replacing traces saved earlier.
	SaveTraces(ctx context.Context, dir m.Path, traces []m.Trace) error
	// LoadTraces reads back the traces saved in dir, in the order they were saved.
	LoadTraces(ctx context.Context, dir m.Path) ([]m.Trace, error)
}

// LocalReportStore stores one YAML document per trace in a directory.
type LocalReportStore struct{}

// NewReportStore creates a ReportStore backed by the local filesystem.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveTraces implements ReportStore.
func (s *LocalReportStore) SaveTraces(ctx context.Context, dir m.Path, traces []m.Trace) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		slog.Error("failed to create reports dir", "dir", dir, "error", err)
		return fmt.Errorf("create reports dir: %w", err)
	}

	if err := s.removeStale(dir); err != nil {
		return err
	}

	for i, trace := range traces {
		path := filepath.Join(string(dir), fmt.Sprintf(traceFileFormat, i))

		data, err := yaml.Marshal(newTraceRecord(trace))
		if err != nil {
			slog.Error("failed to encode trace", "path", path, "error", err)
			return fmt.Errorf("encode trace %d: %w", i, err)
		}

		if err := os.WriteFile(path, data, 0o600); err != nil {
			slog.Error("failed to write trace", "path", path, "error", err)
			return fmt.Errorf("write trace %d: %w", i, err)
		}

		slog.Debug("saved trace", "path", path, "hole", trace.Hole, "solved", trace.Solved)
	}

	return nil
}

func (s *LocalReportStore) removeStale(dir m.Path) error {
	stale, err := filepath.Glob(filepath.Join(string(dir), traceFilePattern))
	if err != nil {
		return fmt.Errorf("list stale traces: %w", err)
	}

	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			slog.Error("failed to remove stale trace", "path", path, "error", err)
			return fmt.Errorf("remove stale trace: %w", err)
		}
	}

	return nil
}

// LoadTraces implements ReportStore.
func (s *LocalReportStore) LoadTraces(ctx context.Context, dir m.Path) ([]m.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(string(dir)); err != nil {
		return nil, fmt.Errorf("reports dir: %w", err)
	}

	paths, err := s.tracePaths(dir)
	if err != nil {
		return nil, err
	}

	traces := make([]m.Trace, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("failed to read trace", "path", path, "error", err)
			return nil, fmt.Errorf("read trace: %w", err)
		}

		var record traceRecord
		if err := yaml.Unmarshal(data, &record); err != nil {
			slog.Error("failed to decode trace", "path", path, "error", err)
			return nil, fmt.Errorf("decode trace %s: %w", filepath.Base(path), err)
		}

		traces = append(traces, record.trace())
	}

	return traces, nil
}

// tracePaths lists the trace files in dir ordered by their numeric index.
// Files whose name carries no index are skipped.
func (s *LocalReportStore) tracePaths(dir m.Path) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(string(dir), traceFilePattern))
	if err != nil {
		return nil, fmt.Errorf("list traces: %w", err)
	}

	type indexedPath struct {
		index int
		path  string
	}

	indexed := make([]indexedPath, 0, len(matches))

	for _, path := range matches {
		index, ok := traceIndex(filepath.Base(path))
		if !ok {
			slog.Warn("skipping trace file without index", "path", path)
			continue
		}

		indexed = append(indexed, indexedPath{index: index, path: path})
	}

	slices.SortFunc(indexed, func(a, b indexedPath) int {
		return cmp.Compare(a.index, b.index)
	})

	paths := make([]string, 0, len(indexed))
	for _, entry := range indexed {
		paths = append(paths, entry.path)
	}

	return paths, nil
}

func traceIndex(name string) (int, bool) {
	digits := strings.TrimSuffix(strings.TrimPrefix(name, traceFilePrefix), traceFileSuffix)

	index, err := strconv.Atoi(digits)
	if err != nil || index < 0 {
		return 0, false
	}

	return index, true
}
