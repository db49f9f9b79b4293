package utils

import (
	"net/http"
	"strconv"
)

type QueryOptions struct {
	Page   int
	Limit  int
	Active *bool
	Search string
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 10
	}

	var active *bool
	if actStr := q.Get("active"); actStr != "" {
		val := actStr == "true"
		active = &val
	}

	return QueryOptions{
		Page:   page,
		Limit:  limit,
		Active: active,
		Search: q.Get("search"),
	}
}

// --- Pagination math ---

// TotalPages returns ceil(total / pageSize); zero items means zero pages.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage keeps the current page in range after a filter shrinks the set.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageSlice returns the items belonging to the given 1-based page.
func PageSlice[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
