package httprange_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/vidserve/vidserve/internal/httprange"
)

func Test_Resolve(t *testing.T) {

	type testCase struct {
		name     string
		spec     *httprange.Spec
		size     int64
		expected httprange.Plan
		wantErr  bool
	}

	cases := []testCase{
		{
			"no header full body",
			nil, 1000,
			httprange.Plan{Status: http.StatusOK, Start: 0, End: 999, Size: 1000},
			false,
		},
		{
			"open ended from zero covers whole file",
			&httprange.Spec{Start: 0, End: -1}, 1000,
			httprange.Plan{Status: http.StatusPartialContent, Start: 0, End: 999, Size: 1000},
			false,
		},
		{
			"bounded window",
			&httprange.Spec{Start: 500, End: 999}, 1000,
			httprange.Plan{Status: http.StatusPartialContent, Start: 500, End: 999, Size: 1000},
			false,
		},
		{
			"open ended tail",
			&httprange.Spec{Start: 500, End: -1}, 1000,
			httprange.Plan{Status: http.StatusPartialContent, Start: 500, End: 999, Size: 1000},
			false,
		},
		{
			"single byte",
			&httprange.Spec{Start: 0, End: 0}, 1000,
			httprange.Plan{Status: http.StatusPartialContent, Start: 0, End: 0, Size: 1000},
			false,
		},
		{
			"end clamps to last byte",
			&httprange.Spec{Start: 0, End: 5000}, 1000,
			httprange.Plan{Status: http.StatusPartialContent, Start: 0, End: 999, Size: 1000},
			false,
		},
		{
			"suffix takes tail",
			&httprange.Spec{Start: -1, End: 500}, 1000,
			httprange.Plan{Status: http.StatusPartialContent, Start: 500, End: 999, Size: 1000},
			false,
		},
		{
			"suffix larger than file takes whole file",
			&httprange.Spec{Start: -1, End: 2000}, 1000,
			httprange.Plan{Status: http.StatusPartialContent, Start: 0, End: 999, Size: 1000},
			false,
		},
		{
			"start at size unsatisfiable",
			&httprange.Spec{Start: 1000, End: -1}, 1000,
			httprange.Plan{},
			true,
		},
		{
			"start past size unsatisfiable",
			&httprange.Spec{Start: 5000, End: 6000}, 1000,
			httprange.Plan{},
			true,
		},
		{
			"empty file full body",
			nil, 0,
			httprange.Plan{Status: http.StatusOK, Start: 0, End: -1, Size: 0},
			false,
		},
		{
			"empty file any range unsatisfiable",
			&httprange.Spec{Start: 0, End: -1}, 0,
			httprange.Plan{},
			true,
		},
		{
			"empty file suffix unsatisfiable",
			&httprange.Spec{Start: -1, End: 10}, 0,
			httprange.Plan{},
			true,
		},
	}

	for _, tCase := range cases {
		t.Run(tCase.name, func(t *testing.T) {
			actual, err := httprange.Resolve(tCase.spec, tCase.size)
			if (err != nil) != tCase.wantErr {
				t.Errorf("expectedErr=%v, gotErr=%v", tCase.wantErr, err)
				return
			}
			if err != nil {
				if !errors.Is(err, httprange.ErrUnsatisfiable) {
					t.Errorf("expected ErrUnsatisfiable, got %v", err)
				}
				return
			}
			if actual != tCase.expected {
				t.Errorf("expected plan=%+v, got %+v", tCase.expected, actual)
			}
		})
	}
}

func Test_PlanHeaders(t *testing.T) {
	p := httprange.Plan{Status: http.StatusPartialContent, Start: 0, End: 999, Size: 1000}
	if got := p.Length(); got != 1000 {
		t.Errorf("expected length=1000, got %d", got)
	}
	if got := p.ContentRange(); got != "bytes 0-999/1000" {
		t.Errorf("expected content range=bytes 0-999/1000, got %q", got)
	}
	if !p.Partial() {
		t.Error("expected partial plan")
	}

	full := httprange.Plan{Status: http.StatusOK, Start: 0, End: 499, Size: 500}
	if full.Partial() {
		t.Error("expected full-body plan")
	}
	if got := full.Length(); got != 500 {
		t.Errorf("expected length=500, got %d", got)
	}
}
