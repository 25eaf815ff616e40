package chunk

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natedelduca/file-split/internal/failure"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
		size     int
		headers  bool
		want     Sequence
	}{
		{
			name:     "trailing newline becomes an empty data line",
			contents: "a\nb\nc\nd\nd\n",
			size:     2,
			want:     Sequence{"a\r\nb\r\n", "c\r\nd\r\n", "d\r\n\r\n"},
		},
		{
			name:     "header repeated in every chunk",
			contents: "h\n1\n2\n3\n",
			size:     2,
			headers:  true,
			want:     Sequence{"h\r\n1\r\n2\r\n", "h\r\n3\r\n\r\n"},
		},
		{
			name:     "header only document yields nothing",
			contents: "h",
			size:     3,
			headers:  true,
			want:     Sequence{},
		},
		{
			name:     "header with trailing newline keeps the empty line",
			contents: "h\n",
			size:     3,
			headers:  true,
			want:     Sequence{"h\r\n\r\n"},
		},
		{
			name:     "empty document without headers",
			contents: "",
			size:     1,
			want:     Sequence{"\r\n"},
		},
		{
			name:     "empty document with headers",
			contents: "",
			size:     1,
			headers:  true,
			want:     Sequence{},
		},
		{
			name:     "carriage returns are kept",
			contents: "a\r\nb\r\n",
			size:     5,
			want:     Sequence{"a\r\r\nb\r\r\n\r\n"},
		},
		{
			name:     "size larger than document",
			contents: "x\ny",
			size:     10,
			want:     Sequence{"x\r\ny\r\n"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Split(tc.contents, tc.size, tc.headers)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplit_RejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			got, err := Split("a\nb", size, false)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, failure.Validation, failure.KindOf(err))
			assert.Contains(t, err.Error(), "line count must be at least 1")
		})
	}
}

func TestSplit_PreservesEveryLineInOrder(t *testing.T) {
	lines := make([]string, 37)
	for i := range lines {
		lines[i] = fmt.Sprintf("row-%02d", i)
	}
	contents := strings.Join(lines, "\n")

	for size := 1; size <= 40; size++ {
		seq, err := Split(contents, size, false)
		require.NoError(t, err)
		require.Equal(t, Count(len(lines), size), seq.Len(), "size %d", size)

		var rebuilt []string
		for _, text := range seq.All() {
			require.True(t, strings.HasSuffix(text, LineTerminator))
			rebuilt = append(rebuilt, strings.Split(strings.TrimSuffix(text, LineTerminator), LineTerminator)...)
		}
		assert.Equal(t, lines, rebuilt, "size %d", size)
	}
}

func TestSplit_EveryChunkStartsWithHeader(t *testing.T) {
	seq, err := Split("id,name\n1,a\n2,b\n3,c\n4,d\n5,e", 2, true)
	require.NoError(t, err)
	require.Equal(t, 3, seq.Len())

	for i, text := range seq.All() {
		assert.True(t, strings.HasPrefix(text, "id,name\r\n"), "chunk %d: %q", i, text)
	}
}

func TestSequence_All(t *testing.T) {
	seq := Sequence{"a", "b", "c"}

	t.Run("Should be restartable", func(t *testing.T) {
		for range 2 {
			var got []string
			for i, text := range seq.All() {
				assert.Equal(t, seq[i], text)
				got = append(got, text)
			}
			assert.Equal(t, []string(seq), got)
		}
	})

	t.Run("Should stop when the consumer breaks", func(t *testing.T) {
		visited := 0
		for range seq.All() {
			visited++
			break
		}
		assert.Equal(t, 1, visited)
	})
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(0, 3))
	assert.Equal(t, 1, Count(1, 3))
	assert.Equal(t, 1, Count(3, 3))
	assert.Equal(t, 2, Count(4, 3))
	assert.Equal(t, 0, Count(4, 0))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{""}, Lines(""))
	assert.Equal(t, []string{"a", ""}, Lines("a\n"))
	assert.Equal(t, []string{"a\r", "b"}, Lines("a\r\nb"))
}

func TestValidateSize(t *testing.T) {
	assert.NoError(t, ValidateSize(1))
	err := ValidateSize(0)
	require.Error(t, err)
	assert.Equal(t, "line count must be at least 1 (got 0)", err.Error())
}
