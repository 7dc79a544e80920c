package cmd

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeaderFlag_Set(t *testing.T) {
	testCases := []struct {
		Name   string
		Args   []string
		Header http.Header
		Err    bool
	}{
		{
			Name:   "Single",
			Args:   []string{"Authorization=Bearer token"},
			Header: http.Header{"Authorization": {"Bearer token"}},
		},
		{
			Name:   "Quoted",
			Args:   []string{`"X-Api-Key=abc"`},
			Header: http.Header{"X-Api-Key": {"abc"}},
		},
		{
			Name:   "Multiple",
			Args:   []string{"a=1, b=2"},
			Header: http.Header{"A": {"1"}, "B": {"2"}},
		},
		{
			Name:   "Repeated",
			Args:   []string{"a=1", "a=2,b=3"},
			Header: http.Header{"A": {"1", "2"}, "B": {"3"}},
		},
		{
			Name:   "EqualsInValue",
			Args:   []string{"a=b=c,d=e"},
			Header: http.Header{"A": {"b=c"}, "D": {"e"}},
		},
		{
			Name: "NoValue",
			Args: []string{"Authorization"},
			Err:  true,
		},
		{
			Name: "MissingPair",
			Args: []string{"a=1,b,c=2"},
			Err:  true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			h := make(http.Header)
			f := &headerFlag{value: &h}

			var err error
			for _, arg := range testCase.Args {
				if err = f.Set(arg); err != nil {
					break
				}
			}
			if testCase.Err {
				if err == nil {
					subT.Error("expected error")
				}
				return
			}
			if err != nil {
				subT.Error(err)
				return
			}

			if diff := cmp.Diff(testCase.Header, h); diff != "" {
				subT.Errorf("unexpected headers (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHeaderFlag_String(t *testing.T) {
	h := make(http.Header)
	f := &headerFlag{value: &h}
	if f.String() != "" {
		t.Errorf("expected empty string, got: %s", f.String())
		return
	}

	if err := f.Set("a=1"); err != nil {
		t.Error(err)
		return
	}
	if f.String() != "A=1" {
		t.Errorf("expected A=1, got: %s", f.String())
	}
	if f.Type() != "key=value" {
		t.Errorf("unexpected type: %s", f.Type())
	}
}
