// SPDX-License-Identifier: MIT

package matrix

import (
	"sync"

	"github.com/rs/zerolog"
)

// Log field keys shared by every event the package emits.
const (
	logKeyOp         = "op"
	logKeyRows       = "rows"
	logKeyCols       = "cols"
	logKeyIterations = "iterations"
	logKeyEstimate   = "estimate"
	logKeyColumn     = "column"
)

var (
	loggerMu sync.RWMutex
	logger   = zerolog.Nop()
)

// SetLogger installs l as the package logger. The default is zerolog.Nop(),
// so the kernels are silent unless a caller opts in.
//
// Events are emitted at Debug level (cache fills, solver convergence) and at
// Warn level (degenerate LU pivots). Inner loops never log.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// currentLogger returns a copy of the installed logger.
func currentLogger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()

	return logger
}

// logCacheFill records the first computation of a memoized result.
func logCacheFill(op string, m *Dense) {
	lg := currentLogger()
	lg.Debug().Str(logKeyOp, op).Int(logKeyRows, m.r).Int(logKeyCols, m.c).Msg("cache fill")
}
