//go:build integration

package testutils

import (
	"os"
	"testing"
)

// TestMain runs before all tests and ensures proper cleanup
// This ensures Docker cleanup even when running `go test ./...` directly
func TestMain(m *testing.M) {
	os.Exit(RunIntegration(m))
}
