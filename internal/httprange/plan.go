package httprange

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnsatisfiable reports a syntactically valid range that does not
// overlap the entity at all. The caller should answer 416 with a
// "bytes */size" Content-Range.
var ErrUnsatisfiable = errors.New("range not satisfiable")

// Plan is the resolved byte window for one response. End is inclusive.
// A full-body plan for an empty file has Start 0 and End -1.
type Plan struct {
	Status int // http.StatusOK or http.StatusPartialContent
	Start  int64
	End    int64
	Size   int64
}

// Length is the number of body bytes the plan will send.
func (p Plan) Length() int64 { return p.End - p.Start + 1 }

// Partial reports whether the plan answers 206 instead of 200.
func (p Plan) Partial() bool { return p.Status == http.StatusPartialContent }

// ContentRange renders the Content-Range value for a 206 response.
func (p Plan) ContentRange() string {
	return fmt.Sprintf("bytes %d-%d/%d", p.Start, p.End, p.Size)
}

// Resolve checks a parsed spec against the entity size and produces the
// definitive streaming plan. A nil spec means no Range header was sent
// and yields a 200 full-body plan.
//
// Ends past the last byte clamp to size-1; a start at or past the size
// is ErrUnsatisfiable. Suffix specs take the last End bytes, the whole
// file when End exceeds it.
func Resolve(spec *Spec, size int64) (Plan, error) {
	if spec == nil {
		return Plan{Status: http.StatusOK, Start: 0, End: size - 1, Size: size}, nil
	}

	p := Plan{Status: http.StatusPartialContent, Size: size}
	if spec.Suffix() {
		if size == 0 {
			return Plan{}, ErrUnsatisfiable
		}
		n := spec.End
		if n > size {
			n = size
		}
		p.Start = size - n
		p.End = size - 1
		return p, nil
	}

	if spec.Start >= size {
		return Plan{}, ErrUnsatisfiable
	}
	p.Start = spec.Start
	p.End = spec.End
	if p.End < 0 || p.End >= size {
		p.End = size - 1
	}
	return p, nil
}
