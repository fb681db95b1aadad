package domain

import (
	"math"
	"slices"
	"strings"
)

// SortDirection is ASC or DESC.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection accepts asc/desc in any case. Anything else yields def.
func ParseSortDirection(s string, def SortDirection) SortDirection {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASC":
		return SortAsc
	case "DESC":
		return SortDesc
	default:
		return def
	}
}

// PaginationParams holds offset-based pagination and sorting parameters for list queries.
// Page is zero-indexed.
type PaginationParams struct {
	Page     int
	PageSize int
	SortBy   string
	SortDir  SortDirection
}

// Offset returns the row offset for the current page.
// Formula: Page * PageSize, saturating at math.MaxInt.
func (p PaginationParams) Offset() int {
	if p.Page <= 0 || p.PageSize <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return p.Page * p.PageSize
}

// Paging bounds applied by Normalize. MaxPage keeps Page * MaxPageSize
// within the range of int.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	MaxPage         = math.MaxInt / MaxPageSize
)

// Bounded clamps page and page size only.
func (p PaginationParams) Bounded() PaginationParams {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Normalize clamps paging to valid bounds. An unknown sort key becomes defSort
// and an unknown direction becomes defDir.
func (p PaginationParams) Normalize(allowed []string, defSort string, defDir SortDirection) PaginationParams {
	p = p.Bounded()
	if !slices.Contains(allowed, p.SortBy) {
		p.SortBy = defSort
	}
	if p.SortDir != SortAsc && p.SortDir != SortDesc {
		p.SortDir = defDir
	}
	return p
}

// Sort keys accepted by event and registration listings.
var (
	EventSortKeys = []string{
		"event_date", "created_at", "updated_at", "event_name", "game_name",
		"prize_pool", "entry_fee", "registration_open_date", "registration_close_date", "slots_filled",
	}
	RegistrationSortKeys = []string{"registered_at", "updated_at", "status", "team_name"}
)
