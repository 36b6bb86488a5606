//go:build integration
// +build integration

package repository

import (
	"os"
	"testing"

	"maua-esports-backend/internal/testutils"
)

// TestMain runs before all repository tests and ensures proper Docker cleanup
func TestMain(m *testing.M) {
	os.Exit(testutils.RunIntegration(m))
}
