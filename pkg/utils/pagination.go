package utils

import "math"

// PageCount is ceil(total/size). An empty listing or a non-positive size has no pages.
func PageCount(total int64, size int) int {
	if size < 1 || total < 1 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}

// PageOffset is the number of rows that precede a 1-based page. Pages too
// far out to address saturate at the largest whole multiple of size.
func PageOffset(page, size int) int {
	if page < 1 || size < 1 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt - math.MaxInt%size
	}
	return (page - 1) * size
}
