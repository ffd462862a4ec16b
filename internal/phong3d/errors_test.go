package phong3d

import (
	"errors"
	"fmt"
	"testing"
)

func TestGeometryErrorWrapping(t *testing.T) {
	err := fmt.Errorf("line 3: %w", &GeometryError{Shape: "box", Err: fmt.Errorf("scale: %w", ErrSingularTransform)})
	if !errors.Is(err, ErrSingularTransform) {
		t.Fatal("errors.Is lost the sentinel")
	}
	var ge *GeometryError
	if !errors.As(err, &ge) || ge.Shape != "box" {
		t.Fatalf("errors.As failed: %v", err)
	}
	if got := ge.Error(); got != `shape "box": scale: singular transform` {
		t.Fatalf("message: %s", got)
	}
}

func TestNumericError(t *testing.T) {
	var err error = &NumericError{Op: "normalize", Err: ErrDegenerateNormal}
	if !errors.Is(err, ErrDegenerateNormal) || errors.Is(err, ErrSingularTransform) {
		t.Fatal("NumericError unwrap wrong")
	}
	if err.Error() != "normalize: degenerate normal" {
		t.Fatalf("message: %s", err)
	}
}
