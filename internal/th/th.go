// Package th provides basic test helpers.
package th

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// ExpectNotHang fails the test if f does not return within waitFor.
// Used to guard tests that bound infinite sequences.
func ExpectNotHang(t *testing.T, waitFor time.Duration, f func()) {
	t.Helper()
	done := make(chan struct{})

	go func() {
		defer close(done)
		f()
	}()

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Errorf("test hanged")
	}
}

// Name generates a test name.
// Works the same way as fmt.Sprint, but adds spaces between all arguments.
func Name(args ...any) string {
	res := fmt.Sprintln(args...)
	return strings.TrimSpace(res)
}
