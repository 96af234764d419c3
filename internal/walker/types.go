package walker

// Entry is one file produced by the walk.
type Entry struct {
	// Path is relative to the root and always uses forward slashes.
	Path string
	// AbsPath is the absolute path used for I/O.
	AbsPath string
}

// SkippedReason clarifies why a file/directory was not yielded.
type SkippedReason string

const (
	ReasonIgnoredHidden     SkippedReason = "Ignored (Dotfile)"
	ReasonIgnoredRule       SkippedReason = "Ignored (Gitignore Rule)"
	ReasonExcluded          SkippedReason = "Excluded (Pattern)"
	ReasonNotIncluded       SkippedReason = "Filtered (No Include Match)"
	ReasonDepthLimit        SkippedReason = "Skipped (Depth Limit)"
	ReasonSymlink           SkippedReason = "Skipped (Symbolic Link)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonBinary            SkippedReason = "Skipped (Binary File)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker collects skipped items. The walk runs on a single
// goroutine, so it is not safe for concurrent use.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker. A nil tracker drops it.
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	if st == nil {
		return
	}
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	if st == nil {
		return nil
	}
	return st.items
}
