// internal/domain/query.go
package domain

// QueryParameters is the structured form of a free-text workout request.
// Muscles, BodyParts and Equipment carry set semantics: callers must not
// rely on element order.
type QueryParameters struct {
	Muscles    []string
	BodyParts  []string
	Difficulty string // "beginner", "intermediate", "expert", or "" when unresolved
	Equipment  []string
}
