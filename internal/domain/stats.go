package domain

import (
	"fmt"
	"slices"
)

// EmptyCounts maps a bare field name to the number of times it was seen empty
type EmptyCounts map[string]int

// Names returns the counted field names sorted ascending
func (c EmptyCounts) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LineStats holds the per-line classification totals of a scan
type LineStats struct {
	Total   int
	Valid   int
	Blank   int
	Invalid int
}

// Consistent reports whether Total equals Valid + Blank + Invalid
func (s LineStats) Consistent() bool {
	return s.Total == s.Valid+s.Blank+s.Invalid
}

// FormatSize renders a byte count with a 1024-based unit and two decimals
func FormatSize(bytes int64) string {
	const unit = 1024
	switch {
	case bytes < unit:
		return fmt.Sprintf("%d Bytes", bytes)
	case bytes < unit*unit:
		return fmt.Sprintf("%.2f KB", float64(bytes)/unit)
	case bytes < unit*unit*unit:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(unit*unit))
	default:
		return fmt.Sprintf("%.2f GB", float64(bytes)/(unit*unit*unit))
	}
}
