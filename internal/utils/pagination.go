package utils

import (
	"math"
	"strconv"
)

const MaxPageLimit = 100

// maxPage keeps (page-1)*limit inside int for every allowed limit.
const maxPage = math.MaxInt / MaxPageLimit

// PageParams is a normalized page/limit pair taken from a query string.
type PageParams struct {
	Page  int
	Limit int
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePage turns raw page/limit query values into bounded params. Missing or
// invalid values fall back to page 1 and defaultLimit.
func ParsePage(rawPage, rawLimit string, defaultLimit int) PageParams {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageParams{Page: page, Limit: limit}
}
