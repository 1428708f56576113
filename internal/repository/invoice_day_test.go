package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/laundrify/backoffice/internal/entity"
)

func TestInvoiceDay(t *testing.T) {
	t.Parallel()

	jakarta := time.FixedZone("WIB", 7*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "midday utc",
			in:   time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
			want: "INV-20260831-0001",
		},
		{
			name: "just after local midnight",
			in:   time.Date(2026, 9, 1, 0, 30, 0, 0, jakarta),
			want: "INV-20260901-0001",
		},
		{
			name: "just before local midnight",
			in:   time.Date(2026, 8, 31, 23, 59, 0, 0, jakarta),
			want: "INV-20260831-0001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := invoiceDay(tt.in)

			// The date stored for the counter row and the date printed in
			// the invoice must be the same calendar day as the timestamp.
			require.Equal(t, tt.want, entity.FormatInvoice(day, 1))

			y1, m1, d1 := tt.in.Date()
			y2, m2, d2 := day.Date()
			require.Equal(t, [3]int{y1, int(m1), d1}, [3]int{y2, int(m2), d2})
		})
	}
}
