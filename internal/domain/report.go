package domain

// FileInfo describes an input file before it is scanned
type FileInfo struct {
	Path string
	Size int64 // bytes on disk
}

// Report is the outcome of a complete scan of one JSONL file.
// It is only ever produced for a scan that reached end of file.
type Report struct {
	File         FileInfo
	Compression  string // codec name, empty for plain text
	Lines        LineStats
	Structure    *Registry
	EmptyCounts  EmptyCounts
	InvalidLines []int // 1-based line numbers, ascending
}

// NewReport creates an empty report for file
func NewReport(file FileInfo) *Report {
	return &Report{
		File:        file,
		Structure:   NewRegistry(),
		EmptyCounts: EmptyCounts{},
	}
}

// Tree builds the display tree of the discovered structure
func (r *Report) Tree(listLabel string) *PathTree {
	return BuildPathTree(r.Structure.Paths(), listLabel)
}

// AddRecord feeds one decoded record through both walkers
func (r *Report) AddRecord(v Value) {
	MapStructure(v, r.Structure, "")
	CountEmpty(v, r.EmptyCounts)
}
