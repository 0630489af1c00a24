package config

import (
	"fmt"
	"os"
	"testing"
)

// TestMain runs before all tests in the config package. The config tests
// manipulate DATABASE_URL and may attempt real connections, so they are
// gated on GO_ENV=test to prevent accidental use of a live database.
func TestMain(m *testing.M) {
	if env := os.Getenv("GO_ENV"); env != "test" {
		fmt.Fprintf(os.Stderr,
			"SAFETY CHECK FAILED: config tests must run with GO_ENV=test (current: %q).\n"+
				"Run them as: GO_ENV=test go test ./...\n", env)
		os.Exit(1)
	}

	os.Exit(m.Run())
}
