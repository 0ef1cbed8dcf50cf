// Package httprange parses single HTTP Range headers and resolves them
// against a known entity size into a concrete byte window.
package httprange

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMalformed reports a Range header that is present but not a usable
// single byte range.
var ErrMalformed = errors.New("malformed range header")

// Spec is a parsed Range header before it has been checked against any
// file size. An omitted bound is -1.
//
//	bytes=0-499  -> {0, 499}
//	bytes=500-   -> {500, -1}
//	bytes=-500   -> {-1, 500} (suffix: last 500 bytes)
type Spec struct {
	Start int64
	End   int64
}

// Suffix reports whether the spec asks for the last End bytes.
func (s Spec) Suffix() bool { return s.Start < 0 }

// Parse parses a single HTTP Range header of form: bytes=start-end.
// Supports: bytes=0-499, bytes=500- , bytes=-500 (suffix).
//
// An absent header returns (nil, nil). Size validation happens later in
// Resolve; Parse only rejects what is syntactically unusable.
func Parse(h string) (*Spec, error) {
	h = strings.TrimSpace(h)
	if h == "" {
		return nil, nil
	}
	if !strings.HasPrefix(h, "bytes=") {
		return nil, ErrMalformed
	}
	spec := strings.TrimPrefix(h, "bytes=")
	// only support single range
	if strings.Contains(spec, ",") {
		return nil, ErrMalformed
	}
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return nil, ErrMalformed
	}
	startStr := strings.TrimSpace(parts[0])
	endStr := strings.TrimSpace(parts[1])

	if startStr == "" {
		// suffix: -N
		n, err := strconv.ParseInt(endStr, 10, 64)
		if err != nil || n <= 0 {
			return nil, ErrMalformed
		}
		return &Spec{Start: -1, End: n}, nil
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return nil, ErrMalformed
	}
	if endStr == "" {
		return &Spec{Start: start, End: -1}, nil
	}
	end, err := strconv.ParseInt(endStr, 10, 64)
	if err != nil || end < 0 {
		return nil, ErrMalformed
	}
	if end < start {
		return nil, ErrMalformed
	}
	return &Spec{Start: start, End: end}, nil
}
