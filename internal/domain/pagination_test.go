package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PaginationParams
		want PaginationParams
	}{
		{
			name: "defaults",
			in:   PaginationParams{},
			want: PaginationParams{Page: 0, PageSize: DefaultPageSize, SortBy: "event_date", SortDir: SortAsc},
		},
		{
			name: "negative page and oversized page",
			in:   PaginationParams{Page: -3, PageSize: 500, SortBy: "prize_pool", SortDir: SortDesc},
			want: PaginationParams{Page: 0, PageSize: MaxPageSize, SortBy: "prize_pool", SortDir: SortDesc},
		},
		{
			name: "page beyond the offset range is clamped",
			in:   PaginationParams{Page: 1e17, PageSize: 500},
			want: PaginationParams{Page: MaxPage, PageSize: MaxPageSize, SortBy: "event_date", SortDir: SortAsc},
		},
		{
			name: "unknown sort key is replaced",
			in:   PaginationParams{Page: 2, PageSize: 20, SortBy: "room_password; DROP TABLE events"},
			want: PaginationParams{Page: 2, PageSize: 20, SortBy: "event_date", SortDir: SortAsc},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize(EventSortKeys, "event_date", SortAsc))
		})
	}
}

func TestPaginationParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 0, PageSize: 10}.Offset())
	assert.Equal(t, 30, PaginationParams{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 0, PaginationParams{Page: -1, PageSize: 10}.Offset())
	assert.Equal(t, math.MaxInt, PaginationParams{Page: 1e17, PageSize: 500}.Offset())

	p := PaginationParams{Page: 1e17, PageSize: 500}.Bounded()
	assert.Positive(t, p.Offset())
	assert.Equal(t, MaxPage*MaxPageSize, p.Offset())
}

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, SortDesc, ParseSortDirection(" desc ", SortAsc))
	assert.Equal(t, SortAsc, ParseSortDirection("ASC", SortDesc))
	assert.Equal(t, SortDesc, ParseSortDirection("sideways", SortDesc))
	assert.Equal(t, SortDirection(""), ParseSortDirection("", ""))
}
