// Package lint drives the per-file tool invocations and folds their
// outcomes into the final exit status.
//
// The package models the run as an ordered sequence of file tasks. Each task
// is consumed exactly once and yields exactly one outcome: clean, differences
// found, tool trouble, or an internal failure. Trouble is isolated to its
// task; an internal failure halts the remaining batch.
package lint

// ToolKind selects which external tool a task invokes.
type ToolKind int

const (
	// KindFormat runs the formatter and diffs its output against the file.
	KindFormat ToolKind = iota
	// KindAnalyze runs the static analyzer and collects its diagnostics.
	KindAnalyze
)

// String returns a human-readable name for logging.
func (k ToolKind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindAnalyze:
		return "analyze"
	default:
		return "unknown"
	}
}

// FileTask pairs a file path with the tool that should process it.
// Tasks are immutable once enumerated.
type FileTask struct {
	Path string
	Kind ToolKind
}

// Tasks builds the ordered task list for a run: all formatter tasks first,
// then all analyzer tasks, each preserving enumeration order. The same path
// may legitimately appear in both halves.
func Tasks(formatFiles, analyzeFiles []string) []FileTask {
	tasks := make([]FileTask, 0, len(formatFiles)+len(analyzeFiles))
	for _, f := range formatFiles {
		tasks = append(tasks, FileTask{Path: f, Kind: KindFormat})
	}
	for _, f := range analyzeFiles {
		tasks = append(tasks, FileTask{Path: f, Kind: KindAnalyze})
	}
	return tasks
}
