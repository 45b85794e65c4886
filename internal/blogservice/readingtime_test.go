package blogservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingTime(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "empty body", body: "", expected: 0},
		{name: "single word", body: "hello", expected: 1},
		{name: "exactly one minute", body: strings.Repeat("word ", 40), expected: 1},
		{name: "just over one minute", body: strings.Repeat("word ", 41), expected: 2},
		{name: "three minutes", body: strings.Repeat("word ", 120), expected: 3},
		{name: "collapses whitespace", body: "one  two\n three\tfour", expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, readingTime(tc.body))
		})
	}
}
