package table

// pageWindow is the result of page derivation: a validated page number
// and the half-open slice window into the filtered view.
type pageWindow struct {
	page       int
	totalPages int
	start, end int
}

// derivePage clamps the requested page against the filtered row count.
// totalPages is at least 1 even for an empty view, so "page 1 of 1"
// always exists. Out-of-range requests clamp, they never error.
func derivePage(filteredCount, pageSize, requestedPage int) pageWindow {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (filteredCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := page * pageSize
	if start > filteredCount {
		start = filteredCount
	}
	if end > filteredCount {
		end = filteredCount
	}

	return pageWindow{page: page, totalPages: totalPages, start: start, end: end}
}

// pageButtons returns the page numbers to offer, at most five
// consecutive values centered on the current page where the bounds
// allow.
func pageButtons(page, totalPages int) []int {
	start := page - 2
	if start < 1 {
		start = 1
	}
	end := start + 4
	if end > totalPages {
		end = totalPages
	}
	if end-start < 4 {
		start = end - 4
		if start < 1 {
			start = 1
		}
	}

	buttons := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		buttons = append(buttons, p)
	}
	return buttons
}
