// Package invoker builds native call frames on top of the resolver's
// frame primitives.
//
// A native call is hash-addressed: open a frame with the command hash,
// push up to MaxArgs argument slots, execute, read one result slot. Every
// argument occupies a full 64-bit slot holding the value's bit pattern
// zero-extended; the Packable constraint proves at compile time that a
// value fits. The result slot is reinterpreted as whatever type the
// caller instantiates Invoke with — the hook publishes no signatures, so
// that instantiation is the caller's half of the interop contract.
//
// Frames are not transactional. A failure mid-frame leaves the partial
// frame with the hook, exactly as the underlying runtime does; the next
// frame implicitly abandons it. Invoking from inside a present or
// keyboard callback is forbidden by the hook runtime and is not detected
// here.
//
// All of this runs on the single script thread. Nothing in this package
// locks.
package invoker
