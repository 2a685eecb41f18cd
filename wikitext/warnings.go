package wikitext

import (
	"fmt"
)

// Warning is a markup problem found while parsing.
type Warning struct {

	// Issue is the kind of the problem.
	Issue Issue

	// Pos is the byte offset in the source where the problem starts.
	Pos int

	// Description explains the problem to the page author.
	Description string
}

// WarningOverflowPolicy determines what happens once the Warnings list is full.
type WarningOverflowPolicy int

const (
	// WarnOverflowNoCap keeps every Warning.
	WarnOverflowNoCap WarningOverflowPolicy = iota

	// WarnOverflowNoRec keeps no Warnings at all.
	WarnOverflowNoRec

	// WarnOverflowDrop keeps the Warnings closest to the start of the source and
	// discards the rest.
	WarnOverflowDrop

	// WarnOverflowTrunc works like WarnOverflowDrop, but reserves the last slot for an
	// [IssueWarningsTruncated] marker and counts the discarded Warnings.
	WarnOverflowTrunc
)

// Warnings collects the problems of one parse. A capped list keeps the Warnings with the
// smallest positions, whatever order they are reported in: unclosed tags are reported
// at the end of the input, but point at its start.
type Warnings struct {
	policy WarningOverflowPolicy

	list []Warning

	// maxWarnings is the capacity of the list, the marker included.
	maxWarnings int

	overflowed   bool
	droppedCount int

	// firstDropPos is the smallest position among the discarded Warnings.
	firstDropPos int

	// earliest is the Warning with the smallest position ever added, kept or not.
	earliest    Warning
	hasEarliest bool
}

// IsOverflow is true once a Warning was discarded because the list was full.
func (w *Warnings) IsOverflow() bool {
	return w.overflowed
}

// DroppedCount is the count of discarded Warnings, only tracked by [WarnOverflowTrunc].
func (w *Warnings) DroppedCount() int {
	return w.droppedCount
}

// FirstDropPos is the smallest position among the discarded Warnings.
func (w *Warnings) FirstDropPos() int {
	return w.firstDropPos
}

// Earliest returns the Warning with the smallest position added so far, including the
// discarded ones. Among equal positions the first added wins.
func (w *Warnings) Earliest() (Warning, bool) {
	return w.earliest, w.hasEarliest
}

// List returns the kept Warnings, unsorted, followed by the truncation marker if any.
func (w *Warnings) List() []Warning {
	if w.policy != WarnOverflowTrunc || !w.overflowed || w.maxWarnings == 0 {
		return w.list
	}

	return append(w.list[:len(w.list):len(w.list)], Warning{
		Issue:       IssueWarningsTruncated,
		Pos:         w.firstDropPos,
		Description: fmt.Sprintf("too many warnings, %d more were suppressed", w.droppedCount),
	})
}

// Len is the count of Warnings returned by List.
func (w *Warnings) Len() int {
	if w.policy == WarnOverflowTrunc && w.overflowed && w.maxWarnings > 0 {
		return len(w.list) + 1
	}
	return len(w.list)
}

// Add records the Warning according to the policy.
func (w *Warnings) Add(item Warning) {
	if !w.hasEarliest || item.Pos < w.earliest.Pos {
		w.earliest = item
		w.hasEarliest = true
	}

	switch w.policy {
	case WarnOverflowNoRec:
		return
	case WarnOverflowNoCap:
		w.list = append(w.list, item)
		return
	}

	limit := w.maxWarnings
	if w.policy == WarnOverflowTrunc {
		// the last slot is for the marker
		limit = max(w.maxWarnings-1, 0)
	}

	if len(w.list) < limit {
		w.list = append(w.list, item)
		return
	}

	// the list is full, the Warning with the largest position goes
	dropped := item
	if last := w.latestKept(); last >= 0 && item.Pos < w.list[last].Pos {
		dropped = w.list[last]
		w.list = append(w.list[:last], w.list[last+1:]...)
		w.list = append(w.list, item)
	}

	if !w.overflowed || dropped.Pos < w.firstDropPos {
		w.firstDropPos = dropped.Pos
	}
	w.overflowed = true

	if w.policy == WarnOverflowTrunc {
		w.droppedCount++
	}
}

// latestKept returns the index of the kept Warning with the largest position, the last
// added among equal ones, or -1 if the list is empty.
func (w *Warnings) latestKept() int {
	idx := -1
	for i, item := range w.list {
		if idx < 0 || item.Pos >= w.list[idx].Pos {
			idx = i
		}
	}
	return idx
}

// NewWarnings creates a Warnings collector with the given overflow policy and capacity.
// It returns a ConfigError if cap is negative.
func NewWarnings(policy WarningOverflowPolicy, cap int) (Warnings, error) {

	if cap < 0 {
		return Warnings{}, NewConfigError(
			IssueNegativeWarningsCap,
			fmt.Errorf("warnings cap must be non-negative, got %d", cap),
		)
	}

	return Warnings{
		policy:      policy,
		list:        make([]Warning, 0, min(cap, DefaultMaxWarnings)),
		maxWarnings: cap,
	}, nil
}
