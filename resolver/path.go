package resolver

import (
	"github.com/playday3008/scripthook-go/errors"
)

const (
	// maxPathDefault is the classic Windows MAX_PATH, the starting size
	// for path queries.
	maxPathDefault = 260

	// maxPathDoublings bounds how many times a path buffer doubles before
	// the query is abandoned as pathological.
	maxPathDoublings = 7
)

// growPath runs query with a progressively larger UTF-16 buffer. query
// returns the number of units written, whether the buffer was too small
// and the call should be retried larger, or a hard error that stops the
// growth immediately. The buffer starts at maxPathDefault units and
// doubles at most maxPathDoublings times.
func growPath(query func(buf []uint16) (n int, retry bool, err error)) ([]uint16, error) {
	size := maxPathDefault
	for attempt := 0; attempt <= maxPathDoublings; attempt++ {
		buf := make([]uint16, size)
		n, retry, err := query(buf)
		if err != nil {
			return nil, err
		}
		if !retry {
			return buf[:n], nil
		}
		size *= 2
	}
	return nil, errors.PathTooLong(maxPathDoublings+1, size/2)
}
