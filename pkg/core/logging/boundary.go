// ============================================================================
// precalc - Precise chained arithmetic
// ============================================================================
//
// Package:     logging
// Description: Routes calculator boundary diagnostics to a logger
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package logging

import (
	mdwlog "github.com/msto63/precalc/foundation/core/log"
	"github.com/msto63/precalc/foundation/utils/mathx"
)

// BoundaryHandler returns a mathx.BoundaryHandler that logs each event as a
// warning on logger
func BoundaryHandler(logger *mdwlog.Logger) mathx.BoundaryHandler {
	return func(e mathx.BoundaryEvent) {
		logger.Warn("value is out of the safe integer range, the result may be inaccurate", mdwlog.Fields{
			"operator": e.Operator.String(),
			"stage":    e.Stage.String(),
			"value":    mathx.FormatNumber(e.Value),
		})
	}
}
