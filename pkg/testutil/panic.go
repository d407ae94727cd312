package testutil

import (
	"fmt"
)

// ErrorPanicked calls fn and returns its error, or reports that it panicked.
func ErrorPanicked(fn func() error) (err error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			panicked = true
		}
	}()

	return fn(), false
}
