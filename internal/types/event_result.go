package types

// EventProcessingResult is the per-event outcome of processing a Drift
// event through the bridge: whether it produced a cortex memory, what
// links it created, and how long it took.
type EventProcessingResult struct {
	EventType      string
	MemoryCreated  bool
	MemoryID       string
	MemoryType     MemoryType
	LinksCreated   []string
	DurationMicros uint64
	Error          string
}

// HasError reports whether processing failed non-fatally.
func (r EventProcessingResult) HasError() bool {
	return r.Error != ""
}

// HasMemory reports whether a memory ID accompanies this result. A
// zero-value MemoryID with MemoryCreated true is a contract violation the
// caller should treat as a bug, not a valid state.
func (r EventProcessingResult) HasMemory() bool {
	return r.MemoryCreated && r.MemoryID != ""
}
