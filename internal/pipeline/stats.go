package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total      int
	Current    int
	Stamped    int
	Skipped    int
	Failed     int
	TotalBytes int64
}
