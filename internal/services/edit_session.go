package services

import "time"

// EditSession holds a draft copy of an entity while an edit is in
// progress. Mutations apply to the draft only; Commit hands the draft
// back and Discard resets it, so a failed validation leaves the stored
// entity untouched.
type EditSession[T any] struct {
	original T
	draft    T
}

// BeginEdit opens an edit session seeded with a copy of the entity.
func BeginEdit[T any](entity T) *EditSession[T] {
	return &EditSession[T]{original: entity, draft: entity}
}

// Draft returns the mutable working copy.
func (s *EditSession[T]) Draft() *T {
	return &s.draft
}

// Discard resets the draft back to the original.
func (s *EditSession[T]) Discard() {
	s.draft = s.original
}

// Commit returns the edited value.
func (s *EditSession[T]) Commit() T {
	return s.draft
}

// nextTimestampID returns a millisecond-timestamp id, bumped past last so
// two creations within the same millisecond still get distinct ids.
func nextTimestampID(last int64) int64 {
	id := time.Now().UnixMilli()
	if id <= last {
		id = last + 1
	}
	return id
}
