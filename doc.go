// Package scripthook provides a typed Go bridge into the ScriptHook family
// of native-script runtimes (ScriptHookV for Grand Theft Auto V,
// ScriptHookRDR2 for Red Dead Redemption 2).
//
// The bridge runs inside the game process. It identifies the host
// executable, loads the matching hook library, resolves its C++-mangled
// exports, and exposes the hash-addressed native calling convention plus a
// typed surface over the SDK entry points (script lifecycle, callbacks,
// textures, world pools, game version).
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	scripthook/          Root package with the Loader and PathSource boundary interfaces
//	├── joaat/           Jenkins one-at-a-time hashing (32/64-bit, literal and string forms)
//	├── resolver/        Host identification, hook library loading, export resolution
//	├── invoker/         64-bit slot packing and hash-addressed native calls
//	├── bindings/        Typed surface over the hook SDK exports
//	├── errors/          Structured error types for debugging
//	└── cmd/natives/     Hash and catalog utility (CLI + TUI)
//
// # Quick Start
//
// Resolve the hook and call a native:
//
//	const (
//	    nativeWait        = 0x4EDE34FBADD967A6 // WAIT
//	    nativePlayerPedID = 0xD80958FC74E988A6 // PLAYER_PED_ID
//	)
//
//	res := resolver.New(resolver.Options{})
//	hook := bindings.NewHook(res)
//
//	hook.ScriptRegister(module, func() {
//	    for {
//	        ped, err := invoker.Invoke[int32](res, nativePlayerPedID)
//	        if err != nil {
//	            return
//	        }
//	        _ = ped
//	        invoker.Call(res, nativeWait, invoker.Pack(int32(0)))
//	    }
//	})
//
// Asset identifiers (model and weapon names) hash at runtime:
//
//	model := joaat.String32("adder")
//
// # Thread Safety
//
// Host identification runs exactly once and is safe to trigger from any
// goroutine. Everything past identification — export resolution, native
// frames, the typed bindings — is owned by the single script thread the
// hook runtime dedicates to each registered script. The bridge carries no
// locks on those paths and calling them from other goroutines is undefined.
//
// # Trust Model
//
// Typed calls reinterpret raw export addresses and raw result bits as the
// signatures the caller declares. The hook library publishes no signature
// metadata at runtime, so a wrong declaration corrupts silently rather than
// failing. Treat every signature in bindings and every Invoke instantiation
// as part of the interop contract.
package scripthook
