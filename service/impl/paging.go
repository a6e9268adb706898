package impl

import (
	"strconv"

	"playtube/pkg"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// normalizePage turns raw query values into positive integers. Absent
// values fall back to defaults; non-numeric or non-positive ones are
// rejected before the store is touched.
func normalizePage(pageRaw, limitRaw string) (page, limit int, err error) {
	page = defaultPage
	if pageRaw != "" {
		page, err = strconv.Atoi(pageRaw)
		if err != nil || page < 1 {
			return 0, 0, pkg.NewError(pkg.ErrInvalidPagination, err)
		}
	}

	limit = defaultLimit
	if limitRaw != "" {
		limit, err = strconv.Atoi(limitRaw)
		if err != nil || limit < 1 {
			return 0, 0, pkg.NewError(pkg.ErrInvalidPagination, err)
		}
	}
	return page, limit, nil
}
