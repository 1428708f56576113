package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laundrify/backoffice/internal/entity"
)

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     uint64
		perPage  uint64
		total    int
		lastPage uint64
	}{
		{"empty result still has one page", 1, 10, 0, 1},
		{"exact fit", 1, 10, 20, 2},
		{"partial last page", 2, 10, 21, 3},
		{"single item", 1, 10, 1, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := entity.NewPagination(tt.page, tt.perPage, tt.total)
			require.Equal(t, tt.page, p.CurrentPage)
			require.Equal(t, tt.lastPage, p.LastPage)
			require.Equal(t, tt.perPage, p.PerPage)
			require.Equal(t, tt.total, p.Total)
		})
	}
}
