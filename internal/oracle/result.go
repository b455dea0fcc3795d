package oracle

// Status discriminates a validated result from the not-found
// condition. "No qualifying result" is a normal outcome, distinct from
// any error: errors travel on the error return, never inside an
// Outcome.
type Status int

// Outcome statuses.
const (
	// Empty means the response was well-formed but held no usable
	// data for the given parameters.
	Empty Status = iota
	// Found means the response held at least one usable element.
	Found
)

// Outcome is the tagged result of a prediction operation.
type Outcome[T any] struct {
	Data   T
	Status Status
}

// IsFound reports whether the outcome carries usable data.
func (o Outcome[T]) IsFound() bool {
	return o.Status == Found
}

func found[T any](data T) Outcome[T] {
	return Outcome[T]{Data: data, Status: Found}
}

func empty[T any]() Outcome[T] {
	return Outcome[T]{Status: Empty}
}
