package ctest

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// NewLogger returns a [*slog.Logger] that routes records through t.Log,
// keeping output attached to the owning test.
func NewLogger(t *testing.T) *slog.Logger {
	return slogt.New(t)
}
