package controllers

import (
	"net/http"
	"strconv"
)

// helperPagination returns slice of data for ?page=N and the page number
// with total number of pages. Out of range page is clamped into range.
func helperPagination[T any](r *http.Request, data []T, perPage int) (_ []T, page, pages int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	total := len(data)
	if perPage < 1 {
		return data, 1, 1
	}
	pages = (total + perPage - 1) / perPage
	if pages < 1 {
		return data, 1, 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	return data[start:end], page, pages
}
