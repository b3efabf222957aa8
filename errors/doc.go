// Package errors provides structured error types for the scripthook bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: library and symbol names
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindSymbolNotFound).
//		Library("ScriptHookV.dll").
//		Symbol("?createTexture@@YAHPEBD@Z").
//		Cause(lookupErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedHost("GTA4")
//	err := errors.TooManyArgs(30, 25)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Phase and Kind, so callers can distinguish
// "this game is not supported" from "the hook library failed to load" without
// string inspection.
package errors
