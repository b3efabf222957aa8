package resolver

import (
	"reflect"
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	scripthook "github.com/playday3008/scripthook-go"
	"github.com/playday3008/scripthook-go/errors"
)

// DefaultCacheLimit bounds the export cache. The SDK surface is a few
// dozen exports, so hitting the limit means the resolver is being fed
// generated or runaway names.
const DefaultCacheLimit = 256

// Options configures a Resolver. The zero value selects the platform
// loader, the platform path source and the default cache limit.
type Options struct {
	// Loader opens the hook library and looks up exports. Tests inject
	// fakes here.
	Loader scripthook.Loader

	// Path reports the host executable path used for identification.
	Path scripthook.PathSource

	// CacheLimit caps the number of cached export addresses.
	// Zero means DefaultCacheLimit.
	CacheLimit int
}

// Resolver classifies the host game and resolves hook library exports.
//
// Identification runs exactly once and may be triggered from any
// goroutine. All other methods belong to the single script thread and are
// NOT safe for concurrent use.
type Resolver struct {
	loader scripthook.Loader
	path   scripthook.PathSource

	identifyOnce sync.Once
	identity     Identity
	identifyErr  error

	handle  uintptr
	loaded  bool
	loadErr error

	cache      map[string]uintptr
	cacheLimit int

	fnNativeInit   func(uint64)
	fnNativePush64 func(uint64)
	fnNativeCall   func() *uint64
}

// New creates a Resolver with the given options.
func New(opts Options) *Resolver {
	r := &Resolver{
		loader:     opts.Loader,
		path:       opts.Path,
		cacheLimit: opts.CacheLimit,
	}
	if r.loader == nil {
		r.loader = platformLoader{}
	}
	if r.path == nil {
		r.path = platformPathSource{}
	}
	if r.cacheLimit <= 0 {
		r.cacheLimit = DefaultCacheLimit
	}
	r.cache = make(map[string]uintptr)
	return r
}

// Identity classifies the host game, running the classification on the
// first call. The outcome, success or failure, is permanent for the life
// of the Resolver.
func (r *Resolver) Identity() (Identity, error) {
	r.identifyOnce.Do(r.identify)
	return r.identity, r.identifyErr
}

func (r *Resolver) identify() {
	p, err := r.path.ModulePath()
	if err != nil {
		r.identifyErr = err
		Logger().Warn("host path discovery failed", zap.Error(err))
		return
	}

	stem := stemOf(p)
	id, ok := identityForStem(stem)
	if !ok {
		r.identifyErr = errors.UnsupportedHost(stem)
		Logger().Warn("unrecognized host executable", zap.String("stem", stem))
		return
	}

	r.identity = id
	Logger().Debug("host identified",
		zap.String("stem", stem),
		zap.String("identity", id.String()),
		zap.String("library", id.LibraryName()))
}

// library returns the hook library handle, opening it on first use.
// Open failures are permanent.
func (r *Resolver) library() (uintptr, error) {
	if r.loaded {
		return r.handle, r.loadErr
	}

	id, err := r.Identity()
	if err != nil {
		return 0, err
	}

	name := id.LibraryName()
	h, err := r.loader.Open(name)
	r.loaded = true
	if err != nil {
		r.loadErr = errors.LibraryLoad(name, err)
		Logger().Error("hook library failed to load", zap.String("library", name), zap.Error(err))
		return 0, r.loadErr
	}

	r.handle = h
	Logger().Info("hook library loaded", zap.String("library", name))
	return h, nil
}

// Resolve returns the address of the named export. Successful lookups
// are cached, so each export resolves through the loader at most once.
func (r *Resolver) Resolve(name string) (uintptr, error) {
	if addr, ok := r.cache[name]; ok {
		return addr, nil
	}

	h, err := r.library()
	if err != nil {
		return 0, err
	}

	if len(r.cache) >= r.cacheLimit {
		return 0, errors.CacheExhausted(name, r.cacheLimit)
	}

	// A zero address is never a valid export, whatever the loader said.
	addr, err := r.loader.Lookup(h, name)
	if err != nil || addr == 0 {
		id, _ := r.Identity()
		return 0, errors.SymbolNotFound(id.LibraryName(), name, err)
	}

	r.cache[name] = addr
	return addr, nil
}

// Bind resolves name and reinterprets the export's address as the
// function signature *fnptr points at. fnptr must be a pointer to a func
// variable; on success the variable holds a callable binding.
//
// The declared signature is the caller's claim about the export's ABI.
// Nothing validates it: a wrong signature corrupts at call time, not
// here.
func (r *Resolver) Bind(name string, fnptr any) error {
	v := reflect.ValueOf(fnptr)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Func {
		return errors.New(errors.PhaseBind, errors.KindInvalidInput).
			Symbol(name).
			Detail("fnptr must be a pointer to a func variable, got %T", fnptr).
			Build()
	}

	addr, err := r.Resolve(name)
	if err != nil {
		return err
	}

	purego.RegisterFunc(fnptr, addr)
	return nil
}

// Reset clears every resolution outcome: identity, library handle, the
// export cache and the bound call primitives. It exists for tests; never
// call it while any other bridge operation may run.
func (r *Resolver) Reset() {
	r.identifyOnce = sync.Once{}
	r.identity = IdentityUnknown
	r.identifyErr = nil
	r.handle = 0
	r.loaded = false
	r.loadErr = nil
	r.cache = make(map[string]uintptr)
	r.fnNativeInit = nil
	r.fnNativePush64 = nil
	r.fnNativeCall = nil
}
