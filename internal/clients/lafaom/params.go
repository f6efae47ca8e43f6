package lafaom

import (
	"net/url"
	"strconv"
)

const DefaultPageSize = 20

// PageParams are the pagination query parameters shared by every collection
// endpoint. Zero values fall back to the API defaults; Extra filter keys are
// merged in and win over nothing (pagination keys are never overridable
// through Extra).
type PageParams struct {
	Page     int
	PageSize int
	OrderBy  string
	Asc      string
	Extra    url.Values
}

func (p PageParams) values() url.Values {

	params := url.Values{}
	for key, vals := range p.Extra {
		for _, v := range vals {
			params.Add(key, v)
		}
	}

	page := p.Page
	if page == 0 {
		page = 1
	}
	pageSize := p.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	orderBy := p.OrderBy
	if orderBy == "" {
		orderBy = "created_at"
	}
	asc := p.Asc
	if asc == "" {
		asc = "asc"
	}

	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))
	params.Set("order_by", orderBy)
	params.Set("asc", asc)
	return params
}

func (p PageParams) effectivePageSize() int {
	if p.PageSize == 0 {
		return DefaultPageSize
	}
	return p.PageSize
}
