package types

// MemoryType tags a cortex memory's kind. Memory creation itself is owned
// by the (external) memory-creation pipeline; the bridge only ever carries
// this tag through from an event it is told about, in EventProcessingResult.
type MemoryType string

const (
	MemoryTypeFact       MemoryType = "fact"
	MemoryTypePattern    MemoryType = "pattern"
	MemoryTypeDecision   MemoryType = "decision"
	MemoryTypeConvention MemoryType = "convention"
	MemoryTypeOther      MemoryType = "other"
)
