package scene

import (
	"errors"
	"fmt"
)

// ErrMissingEntity is returned when a required node or body is absent
// from the scene.
var ErrMissingEntity = errors.New("scene: missing entity")

// MissingEntityError names the entity that could not be found.
// It matches ErrMissingEntity with errors.Is.
type MissingEntityError struct {
	Name string // Node name that was looked up
	Kind string // Expected kind, e.g. "label", "sprite", "body"
}

func (e *MissingEntityError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("scene: missing entity %q", e.Name)
	}
	return fmt.Sprintf("scene: missing %s %q", e.Kind, e.Name)
}

// Is reports whether target is ErrMissingEntity.
func (e *MissingEntityError) Is(target error) bool {
	return target == ErrMissingEntity
}

// Lookup finds a node and asserts its kind. It returns a
// *MissingEntityError when the node is absent or has the wrong kind.
func Lookup[T Node](s Scene, name, kind string) (T, error) {
	var zero T
	n, ok := s.Node(name)
	if !ok {
		return zero, &MissingEntityError{Name: name, Kind: kind}
	}
	t, ok := n.(T)
	if !ok {
		return zero, &MissingEntityError{Name: name, Kind: kind}
	}
	return t, nil
}
