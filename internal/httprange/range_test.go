package httprange_test

import (
	"errors"
	"testing"

	"github.com/vidserve/vidserve/internal/httprange"
)

func Test_Parse(t *testing.T) {

	type testCase struct {
		name     string
		header   string
		expected *httprange.Spec
		wantErr  bool
	}

	cases := []testCase{
		{"absent", "", nil, false},
		{"absent whitespace", "   ", nil, false},
		{"bounded", "bytes=0-499", &httprange.Spec{Start: 0, End: 499}, false},
		{"single byte", "bytes=0-0", &httprange.Spec{Start: 0, End: 0}, false},
		{"open ended", "bytes=500-", &httprange.Spec{Start: 500, End: -1}, false},
		{"open ended from zero", "bytes=0-", &httprange.Spec{Start: 0, End: -1}, false},
		{"suffix", "bytes=-500", &httprange.Spec{Start: -1, End: 500}, false},
		{"spaces inside", "bytes= 5 - 10 ", &httprange.Spec{Start: 5, End: 10}, false},
		{"wrong unit", "items=0-499", nil, true},
		{"no unit", "0-499", nil, true},
		{"empty spec", "bytes=", nil, true},
		{"dash only", "bytes=-", nil, true},
		{"suffix zero", "bytes=-0", nil, true},
		{"suffix negative", "bytes=--5", nil, true},
		{"suffix garbage", "bytes=-abc", nil, true},
		{"garbage start", "bytes=abc-", nil, true},
		{"garbage end", "bytes=0-xyz", nil, true},
		{"multiple ranges", "bytes=0-499,600-700", nil, true},
		{"end before start", "bytes=499-0", nil, true},
	}

	for _, tCase := range cases {
		t.Run(tCase.name, func(t *testing.T) {
			actual, err := httprange.Parse(tCase.header)
			if (err != nil) != tCase.wantErr {
				t.Errorf("expectedErr=%v, gotErr=%v", tCase.wantErr, err)
				return
			}
			if err != nil {
				if !errors.Is(err, httprange.ErrMalformed) {
					t.Errorf("expected ErrMalformed, got %v", err)
				}
				return
			}
			if (actual == nil) != (tCase.expected == nil) {
				t.Errorf("expected spec=%v, got %v", tCase.expected, actual)
				return
			}
			if actual != nil && *actual != *tCase.expected {
				t.Errorf("expected spec=%v, got %v", *tCase.expected, *actual)
			}
		})
	}
}
