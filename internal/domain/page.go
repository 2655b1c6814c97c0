package domain

// Page is one offset/limit window over a result set.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// HasMore reports whether rows remain after this page.
func HasMore(offset, returned, total int) bool {
	if offset < 0 || returned < 0 {
		return false
	}
	return offset < total-returned
}

// HasMore reports whether rows remain after this page.
func (p Page[T]) HasMore() bool {
	return HasMore(p.Offset, len(p.Items), p.Total)
}
