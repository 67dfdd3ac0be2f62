// internal/importer/errors_test.go
package importer

import (
	"errors"
	"testing"
)

func TestErrors(t *testing.T) {
	errs := []error{
		ErrCopyFailed,
		ErrRemoveFailed,
		ErrCreateDir,
		ErrDestinationExists,
		ErrPathTraversal,
	}
	for i, a := range errs {
		if a.Error() == "" {
			t.Errorf("error %v should have a message", a)
		}
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v and %v should be distinct", a, b)
			}
		}
	}
}
