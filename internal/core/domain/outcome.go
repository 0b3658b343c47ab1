package domain

// Outcome is the traversal decision for a single path.
type Outcome uint8

const (
	// Normal paths are ordinary directories (or files) that are neither bundles nor unwanted.
	Normal Outcome = iota
	// Bundle paths are collected and never descended into.
	Bundle
	// Unwanted paths are neither collected nor descended into.
	Unwanted
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Bundle:
		return "bundle"
	case Unwanted:
		return "unwanted"
	default:
		return "normal"
	}
}
