package t2048

// Merge slides and merges a single line toward index 0.
//
// Each tile merges with the nearest equal tile further along the line when
// only empty cells lie between them. A tile produced by a merge does not merge
// again in the same pass, so [2, 2, 2, 0] becomes [4, 2, 0, 0]. The result has
// the same length as line, front-packed with trailing zeros. line is not modified.
func Merge(line []int) []int {
	merged := make([]int, len(line))
	// consumed marks destinations that already hold a merge result.
	consumed := make([]bool, len(line))

	for i, v := range line {
		if consumed[i] {
			continue
		}
		if j := nextMatch(line, i); j >= 0 && !consumed[j] {
			merged[j] = v * 2
			consumed[j] = true
			continue
		}
		merged[i] = v
	}

	return compact(merged)
}

// nextMatch returns the index of the nearest tile after i holding the same
// value with only empty cells in between, or -1. Empty cells never match.
func nextMatch(line []int, i int) int {
	if line[i] == 0 {
		return -1
	}
	for j := i + 1; j < len(line); j++ {
		if line[j] == line[i] {
			return j
		}
		if line[j] != 0 {
			return -1
		}
	}
	return -1
}

// compact moves non-zero values to the front, keeping their order.
func compact(line []int) []int {
	result := make([]int, len(line))
	writePos := 0
	for _, v := range line {
		if v == 0 {
			continue
		}
		result[writePos] = v
		writePos++
	}
	return result
}
