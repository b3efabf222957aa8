package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the bridge the error occurred
type Phase string

const (
	PhaseIdentify Phase = "identify" // host process classification
	PhaseLoad     Phase = "load"     // hook library loading
	PhaseResolve  Phase = "resolve"  // export lookup and caching
	PhaseBind     Phase = "bind"     // typed function binding
	PhaseInvoke   Phase = "invoke"   // native call frames
)

// Kind categorizes the error
type Kind string

const (
	KindPathDiscovery   Kind = "path_discovery"   // module path could not be read
	KindPathTooLong     Kind = "path_too_long"    // path exceeds bounded buffer growth
	KindUnsupportedHost Kind = "unsupported_host" // executable stem not recognized
	KindLibraryLoad     Kind = "library_load"     // hook library failed to open
	KindSymbolNotFound  Kind = "symbol_not_found" // export missing from library
	KindCacheExhausted  Kind = "cache_exhausted"  // symbol cache at capacity
	KindInvalidInput    Kind = "invalid_input"
	KindTooManyArgs     Kind = "too_many_args" // native frame argument limit
	KindNilResult       Kind = "nil_result"    // native call returned no result slot
	KindUnsupported     Kind = "unsupported"
	KindNotInitialized  Kind = "not_initialized"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Library string
	Symbol  string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Symbol != "" {
		b.WriteString(": ")
		b.WriteString(Demangle(e.Symbol))
	}
	if e.Library != "" {
		if e.Symbol != "" {
			b.WriteString(" in ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Library)
	}

	if e.Detail != "" {
		if e.Symbol != "" || e.Library != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Library sets the hook library file name
func (b *Builder) Library(name string) *Builder {
	b.err.Library = name
	return b
}

// Symbol sets the export name, mangled or plain
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// PathDiscovery creates an error for a failed module path query
func PathDiscovery(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseIdentify,
		Kind:   KindPathDiscovery,
		Detail: detail,
		Cause:  cause,
	}
}

// PathTooLong creates an error for a path that kept overflowing the
// discovery buffer after the allowed number of size doublings
func PathTooLong(attempts int, lastSize int) *Error {
	return &Error{
		Phase:  PhaseIdentify,
		Kind:   KindPathTooLong,
		Detail: fmt.Sprintf("module path still truncated after %d attempts (last buffer %d)", attempts, lastSize),
		Value:  lastSize,
	}
}

// UnsupportedHost creates an error for an unrecognized executable stem
func UnsupportedHost(stem string) *Error {
	return &Error{
		Phase:  PhaseIdentify,
		Kind:   KindUnsupportedHost,
		Detail: fmt.Sprintf("executable %q is not a recognized host", stem),
		Value:  stem,
	}
}

// LibraryLoad creates an error for a hook library that failed to open
func LibraryLoad(library string, cause error) *Error {
	return &Error{
		Phase:   PhaseLoad,
		Kind:    KindLibraryLoad,
		Library: library,
		Cause:   cause,
	}
}

// SymbolNotFound creates an error for a missing export
func SymbolNotFound(library, symbol string, cause error) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindSymbolNotFound,
		Library: library,
		Symbol:  symbol,
		Cause:   cause,
	}
}

// CacheExhausted creates an error for a symbol cache at capacity
func CacheExhausted(symbol string, limit int) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindCacheExhausted,
		Symbol: symbol,
		Detail: fmt.Sprintf("symbol cache full (%d entries)", limit),
		Value:  limit,
	}
}

// TooManyArgs creates an error for a native frame over the argument limit
func TooManyArgs(count, max int) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindTooManyArgs,
		Detail: fmt.Sprintf("%d arguments exceed the native limit of %d", count, max),
		Value:  count,
	}
}

// NilResult creates an error for a native call that returned no result slot
func NilResult(hash uint64) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindNilResult,
		Detail: fmt.Sprintf("native 0x%016X returned nil result pointer", hash),
		Value:  hash,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NotInitialized creates a not-initialized error
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Demangle extracts the readable function name from an MSVC-mangled
// export. C++ manglings start with '?' followed by the identifier,
// terminated by '@'; anything else is returned unchanged.
func Demangle(name string) string {
	if !strings.HasPrefix(name, "?") {
		return name
	}
	rest := name[1:]
	id, _, found := strings.Cut(rest, "@")
	if !found || id == "" {
		return name
	}
	return id
}
