package blogservice

import "strings"

// wordsPerMinute is the assumed reading speed for the reading_time estimate.
const wordsPerMinute = 40

// readingTime estimates how many minutes a body takes to read, rounding up.
// It is recomputed by every write path that changes the body.
func readingTime(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}

	return (words + wordsPerMinute - 1) / wordsPerMinute
}
