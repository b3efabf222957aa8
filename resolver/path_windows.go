//go:build windows

package resolver

import (
	"golang.org/x/sys/windows"

	scripthook "github.com/playday3008/scripthook-go"
	"github.com/playday3008/scripthook-go/errors"
)

// platformPathSource queries the host executable path from the process
// module table. The raw path is normalized to its long form so the stem
// never carries 8.3 short-name mangling.
type platformPathSource struct{}

var _ scripthook.PathSource = platformPathSource{}

func (platformPathSource) ModulePath() (string, error) {
	raw, err := growPath(func(buf []uint16) (int, bool, error) {
		n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
		if err != nil {
			if err == windows.ERROR_INSUFFICIENT_BUFFER {
				return 0, true, nil
			}
			return 0, false, errors.PathDiscovery("query module file name", err)
		}
		// Older loaders truncate silently and report a full buffer.
		if n >= uint32(len(buf)) {
			return 0, true, nil
		}
		return int(n), false, nil
	})
	if err != nil {
		return "", err
	}
	raw = append(raw, 0)

	long, err := growPath(func(buf []uint16) (int, bool, error) {
		n, err := windows.GetLongPathName(&raw[0], &buf[0], uint32(len(buf)))
		if err != nil {
			return 0, false, errors.PathDiscovery("expand long path name", err)
		}
		// A result larger than the buffer is the required size.
		if n > uint32(len(buf)) {
			return 0, true, nil
		}
		return int(n), false, nil
	})
	if err != nil {
		return "", err
	}

	return windows.UTF16ToString(long), nil
}
