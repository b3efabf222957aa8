// Package resolver locates the hook library inside the game process and
// resolves its exported entry points.
//
// A Resolver classifies the host game once, from the process executable's
// file stem, and keeps that outcome for its lifetime: an unrecognized host
// or an unreadable path is a permanent failure, reported identically on
// every later call. The matching hook library (ScriptHookV.dll or
// ScriptHookRDR2.dll) opens lazily on the first export resolution and is
// never released; a failed open is likewise permanent.
//
// Resolved export addresses are cached by mangled name, so each export is
// looked up at most once. The cache is bounded; filling it is reported as
// a distinct error rather than silently returning uncached pointers.
//
// # Thread Safety
//
// Host classification is guarded and safe to trigger from any goroutine.
// Every other method is owned by the single script thread, matching the
// hook runtime's execution model, and carries no locking. Reset exists
// for tests only.
//
// # Failure Model
//
// All failures carry a Phase and Kind from the errors package:
// path_discovery and path_too_long for executable path queries,
// unsupported_host for unknown games, library_load for a hook library
// that failed to open, symbol_not_found for missing exports, and
// cache_exhausted for a full cache. None of them are retried internally.
package resolver
