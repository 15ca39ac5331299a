package listview

// State is the page-local UI state for one list: the active client-side
// predicates, the sort spec, and the current page. Changing any filter or
// sort input resets the page to 1, so the view never silently stays on a
// now-out-of-range page; navigation clamps against the last computed page
// count.
type State[T any] struct {
	filters  []Predicate[T]
	sort     *SortSpec[T]
	page     int
	pageSize int

	// last totalPages seen by Apply; 0 until the first render
	totalPages int
}

// NewState creates page state with the list's fixed page size, positioned on
// page 1 with no filters and no sort.
func NewState[T any](pageSize int) *State[T] {
	return &State[T]{page: 1, pageSize: pageSize}
}

// SetFilters replaces the active predicates and resets to page 1.
func (s *State[T]) SetFilters(preds ...Predicate[T]) {
	s.filters = preds
	s.page = 1
}

// SetSort replaces the sort spec and resets to page 1.
func (s *State[T]) SetSort(key Accessor[T], dir Direction) {
	s.sort = &SortSpec[T]{Key: key, Direction: dir}
	s.page = 1
}

// ClearSort drops the sort spec (fetch/append order) and resets to page 1.
func (s *State[T]) ClearSort() {
	s.sort = nil
	s.page = 1
}

func (s *State[T]) Page() int     { return s.page }
func (s *State[T]) PageSize() int { return s.pageSize }

// SetPage clamps into [1, totalPages] using the last computed page count.
// Before the first Apply only the lower bound applies.
func (s *State[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if s.totalPages > 0 && page > s.totalPages {
		page = s.totalPages
	}
	s.page = page
}

func (s *State[T]) NextPage() { s.SetPage(s.page + 1) }
func (s *State[T]) PrevPage() { s.SetPage(s.page - 1) }

// Apply derives the visible slice for the canonical collection and records
// the page count for navigation clamping.
func (s *State[T]) Apply(items []T) Result[T] {
	res := Process(items, Query[T]{
		Filters:  s.filters,
		Sort:     s.sort,
		Page:     s.page,
		PageSize: s.pageSize,
	})
	s.totalPages = res.TotalPages
	return res
}
