// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package logging

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// TestMain raises the zerolog global level so per-logger levels govern
// what the tests observe; the package init() sets it to info, which
// would silently drop debug and trace events in every test.
func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	os.Exit(m.Run())
}
