package chunk

import (
	"iter"
	"strings"

	"github.com/natedelduca/file-split/internal/failure"
)

// LineTerminator ends every line written to a chunk, whatever the input used.
const LineTerminator = "\r\n"

// Sequence is the ordered, fully rendered set of chunks for one document.
type Sequence []string

// Len returns the number of chunks.
func (s Sequence) Len() int { return len(s) }

// All yields each chunk with its index. It can be ranged over repeatedly.
func (s Sequence) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, text := range s {
			if !yield(i, text) {
				return
			}
		}
	}
}

// Lines splits contents on "\n" only. A trailing "\r" stays on its line and
// an empty document is a single empty line.
func Lines(contents string) []string {
	return strings.Split(contents, "\n")
}

// Count returns how many chunks of size hold dataLines lines.
func Count(dataLines, size int) int {
	if size < 1 || dataLines <= 0 {
		return 0
	}
	return (dataLines + size - 1) / size
}

// ValidateSize rejects chunk sizes below one line.
func ValidateSize(size int) error {
	if size < 1 {
		return failure.Validationf("line count must be at least 1 (got %d)", size)
	}
	return nil
}

// Split partitions contents into chunks of at most size data lines. When
// includeHeader is set the first line is repeated at the top of every chunk
// and is not counted as data.
//
// A document whose only line is the header yields no chunks at all, not a
// header-only chunk.
func Split(contents string, size int, includeHeader bool) (Sequence, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}

	data := Lines(contents)
	var header string
	if includeHeader {
		header, data = data[0], data[1:]
	}

	count := Count(len(data), size)
	chunks := make(Sequence, 0, count)
	for c := range count {
		start := c * size
		end := min(start+size, len(data))
		chunks = append(chunks, render(header, includeHeader, data[start:end]))
	}
	return chunks, nil
}

func render(header string, includeHeader bool, lines []string) string {
	var b strings.Builder
	if includeHeader {
		b.WriteString(header)
		b.WriteString(LineTerminator)
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(LineTerminator)
	}
	return b.String()
}
