package main

import "strings"

// changedLines returns the 1-based numbers of lines that differ between two
// texts with the same line count.
func changedLines(before, after string) []int {
	a := strings.Split(before, "\n")
	b := strings.Split(after, "\n")
	var lines []int
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			lines = append(lines, i+1)
		}
	}
	return lines
}
