//go:build windows

package resolver

import (
	"golang.org/x/sys/windows"

	scripthook "github.com/playday3008/scripthook-go"
)

// platformLoader opens libraries through the Windows loader. The hook
// library ships next to the game executable, which the default search
// order covers.
type platformLoader struct{}

var _ scripthook.Loader = platformLoader{}

func (platformLoader) Open(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func (platformLoader) Lookup(handle uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), symbol)
}
