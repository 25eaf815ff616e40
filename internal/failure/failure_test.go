package failure

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"argument", Argumentf("bad %s", "flag"), ExitUsage},
		{"validation", Validationf("too small"), ExitUsage},
		{"path", Pathf("no extension"), ExitRuntime},
		{"io", WrapIO(os.ErrPermission, "write"), ExitRuntime},
		{"unclassified", errors.New("boom"), ExitRuntime},
		{"wrapped argument", fmt.Errorf("outer: %w", Argumentf("inner")), ExitUsage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestWrapIO(t *testing.T) {
	t.Run("Should return nil for a nil cause", func(t *testing.T) {
		assert.NoError(t, WrapIO(nil, "ignored"))
	})

	t.Run("Should keep the cause reachable and in the message", func(t *testing.T) {
		err := WrapIO(os.ErrNotExist, "open %s", "in.csv")

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Equal(t, IO, KindOf(err))
		assert.Equal(t, "open in.csv: "+os.ErrNotExist.Error(), err.Error())
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Path, KindOf(Pathf("x")))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}
