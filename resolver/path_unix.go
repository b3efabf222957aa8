//go:build !windows

package resolver

import (
	"os"
	"path/filepath"

	scripthook "github.com/playday3008/scripthook-go"
	"github.com/playday3008/scripthook-go/errors"
)

// platformPathSource reports the current executable. Symlinks are
// resolved so the stem reflects the real binary, matching what the
// Windows long-path normalization produces there.
type platformPathSource struct{}

var _ scripthook.PathSource = platformPathSource{}

func (platformPathSource) ModulePath() (string, error) {
	p, err := os.Executable()
	if err != nil {
		return "", errors.PathDiscovery("query executable path", err)
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return p, nil
}
