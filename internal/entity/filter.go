package entity

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

func (d SortDir) String() string {
	return string(d)
}

func (d SortDir) IsValid() bool {
	switch d {
	case SortAsc, SortDesc:
		return true
	}

	return false
}

// Pagination is the list metadata block of the response envelope.
type Pagination struct {
	CurrentPage uint64 `json:"current_page"`
	LastPage    uint64 `json:"last_page"`
	PerPage     uint64 `json:"per_page"`
	Total       int    `json:"total"`
}

func NewPagination(page, perPage uint64, total int) Pagination {
	lastPage := uint64(total) / perPage
	if uint64(total)%perPage != 0 || lastPage == 0 {
		lastPage++
	}

	return Pagination{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
}
