//go:build !windows

package resolver

import (
	"github.com/ebitengine/purego"

	scripthook "github.com/playday3008/scripthook-go"
)

// platformLoader opens libraries through the system dynamic loader. The
// real hook libraries are Windows binaries, so outside Windows this path
// serves stub libraries in test and development rigs.
type platformLoader struct{}

var _ scripthook.Loader = platformLoader{}

func (platformLoader) Open(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
}

func (platformLoader) Lookup(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}
