package scripthook

// Loader opens the hook library inside the current process and looks up
// its exports. Production implementations wrap the platform loader; tests
// substitute recording fakes.
type Loader interface {
	// Open maps the named library into the process and returns an opaque
	// handle. The handle is never released: the hook library lives for the
	// remainder of the process per its own unload semantics.
	Open(name string) (uintptr, error)

	// Lookup returns the address of an exported symbol in a library
	// previously returned by Open.
	Lookup(handle uintptr, symbol string) (uintptr, error)
}

// PathSource reports the file system path of the host process executable.
// The resolver derives the game identity from the path's file stem.
type PathSource interface {
	ModulePath() (string, error)
}
