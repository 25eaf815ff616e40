package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBaseName(t *testing.T) {
	assert.NoError(t, ValidateBaseName("data-split"))
	assert.NoError(t, ValidateBaseName("  padded  "))

	for _, bad := range []string{"", "   ", "a/b", `a\b`, ".", ".."} {
		assert.Error(t, ValidateBaseName(bad), "%q", bad)
	}
}

func TestParseLineCount(t *testing.T) {
	t.Run("Should accept positive integers", func(t *testing.T) {
		n, err := ParseLineCount(" 25 ")
		require.NoError(t, err)
		assert.Equal(t, 25, n)
	})

	t.Run("Should reject non-numeric and non-positive values", func(t *testing.T) {
		for _, bad := range []string{"", "ten", "0", "-3", "1.5"} {
			_, err := ParseLineCount(bad)
			assert.Error(t, err, "%q", bad)
			assert.Error(t, ValidateLineCount(bad), "%q", bad)
		}
	})
}
