// Package testutil provides testing utilities.
package testutil

import (
	"os"
	"testing"
)

// SkipLongSearches skips the test if RUN_LONG_SEARCHES is not set.
// Use this for searches on digests of five or more hex characters, which take
// around a million attempts or more.
//
// Run them with: RUN_LONG_SEARCHES=1 go test ./...
func SkipLongSearches(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_LONG_SEARCHES") == "" {
		t.Skip("Skipping long search (set RUN_LONG_SEARCHES=1 to run)")
	}
}
