package catalog

import "strings"

// Predicate reports whether a record should be kept.
type Predicate[T any] func(T) bool

// Searchable records expose the text fields free-text search looks at.
type Searchable interface {
	SearchText() []string
}

// Filter returns the items matching every predicate, preserving order. With
// no predicates it returns a copy of items.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	match := All(preds...)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}

	return out
}

// All matches when every predicate matches. All() matches everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one predicate matches. Any() matches nothing.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && p(v) {
				return true
			}
		}
		return false
	}
}

// Not inverts p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// MatchText matches records where any searchable field contains query,
// ignoring case and surrounding whitespace. A blank query matches everything.
func MatchText[T Searchable](query string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))

	return func(v T) bool {
		if q == "" {
			return true
		}
		for _, field := range v.SearchText() {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
}

// AgentStatusIs matches agents in status s. An empty s matches all agents.
func AgentStatusIs(s AgentStatus) Predicate[Agent] {
	return func(a Agent) bool { return s == "" || a.Status == s }
}

// ProjectStatusIs matches projects in status s. An empty s matches all projects.
func ProjectStatusIs(s ProjectStatus) Predicate[Project] {
	return func(p Project) bool { return s == "" || p.Status == s }
}

// FileKindIs matches files of the given kind, ignoring case. An empty kind
// matches all files.
func FileKindIs(kind string) Predicate[File] {
	return func(f File) bool { return kind == "" || strings.EqualFold(f.Kind, kind) }
}

// UsesAgent matches projects that have agentID assigned.
func UsesAgent(agentID string) Predicate[Project] {
	return func(p Project) bool {
		for _, id := range p.AgentIDs {
			if id == agentID {
				return true
			}
		}
		return false
	}
}
