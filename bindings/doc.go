// Package bindings is the typed surface over the hook library's SDK
// exports: script lifecycle, render and keyboard callbacks, textures,
// world pools, script globals and the game version.
//
// A Hook binds each export lazily on first use through the resolver, so
// a script that never draws textures never resolves the texture exports,
// and an export missing from an older hook build fails only the calls
// that need it.
//
// # Thread Safety
//
// Hook methods belong to the single script thread, like everything past
// host identification. Registered callbacks are the exception: the hook
// runtime invokes them from its own contexts (the render thread for
// present callbacks, the input path for keyboard handlers). Code inside
// a callback must never issue a native call or touch Hook methods; the
// runtime forbids reentry from those contexts and the bridge does not
// detect it.
//
// # Callback Lifetime
//
// Registering a callback allocates a permanent native trampoline for the
// Go function. Unregistering detaches it from the hook but cannot free
// the trampoline, so callbacks are meant to be registered a bounded
// number of times per process, which matches how the hook itself treats
// them.
package bindings
