package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func fixedIDs(ids ...string) Option {
	i := 0
	return WithIDGenerator(IDGeneratorFunc(func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}))
}
