//go:build mabara_debug

package mabara

import "log/slog"

// debugFail logs the misuse and halts. It only exists in builds with the
// mabara_debug tag; release builds carry the same error returns without
// the abort, so callers never depend on it.
func debugFail(op, msg string) {
	slog.Error("mabara: sparse set failure", "op", op, "reason", msg)
	panic("mabara: " + op + ": " + msg)
}
