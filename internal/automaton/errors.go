package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExtents is returned when grid dimensions are unusable.
	ErrInvalidExtents = errors.New("automaton: invalid extents")
	// ErrInvalidCoordinate marks a coordinate outside its grid. Reaching it
	// through the kernel indicates a defect in the caller.
	ErrInvalidCoordinate = errors.New("automaton: invalid coordinate")
	// ErrInvalidRule is returned for malformed or out-of-range rule sets.
	ErrInvalidRule = errors.New("automaton: invalid rule")
	// ErrCapacity is returned when a history is built with capacity < 1.
	ErrCapacity = errors.New("automaton: invalid history capacity")
	// ErrShapeMismatch is returned when a grid does not fit a topology.
	ErrShapeMismatch = errors.New("automaton: grid shape does not match topology")
	// ErrSnapshotFormat is returned when decoding a malformed snapshot.
	ErrSnapshotFormat = errors.New("automaton: malformed snapshot")
)

// ExtentsError describes why a set of extents was rejected.
type ExtentsError struct {
	Kind    Kind
	Extents Extents
	Reason  string
}

func (e *ExtentsError) Error() string {
	return fmt.Sprintf("automaton: invalid extents %s for %s: %s", e.Extents, e.Kind, e.Reason)
}

func (e *ExtentsError) Unwrap() error { return ErrInvalidExtents }

// CoordinateError reports a coordinate that is out of range.
type CoordinateError struct {
	Coord   Coord
	Extents Extents
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("automaton: coordinate %s outside %s", e.Coord, e.Extents)
}

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }

// RuleError names the offending value of a rejected rule set.
// Token is set when the failure came from parsing text.
type RuleError struct {
	Set   string // "survival" or "birth"
	Value int
	Max   int
	Token string
}

func (e *RuleError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("automaton: invalid %s count %q", e.Set, e.Token)
	}
	return fmt.Sprintf("automaton: %s count %d outside [0, %d]", e.Set, e.Value, e.Max)
}

func (e *RuleError) Unwrap() error { return ErrInvalidRule }

// CapacityError reports a rejected history capacity.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("automaton: history capacity %d must be at least 1", e.Capacity)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }
