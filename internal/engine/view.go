package engine

// View owns the transient view-state driving the derived table: raw and
// committed (debounced) search query, sort configuration, and the current
// page. It is the sole writer of that state; every operation updates all
// affected fields in one step so the derived pipeline always observes a
// consistent snapshot.
//
// The debounce quiet timer itself lives in the event loop. View tracks a
// generation counter instead: SetQuery bumps it and CommitQuery applies
// only when handed the current generation, so a stale timer firing after a
// newer keystroke can never commit an old query.
type View struct {
	query          string
	debouncedQuery string
	sortKey        SortKey
	sortDir        Direction
	page           int
	pageSize       int
	queryGen       int
}

// NewView creates a View with the default state: no query, first-name
// ascending sort, page 1.
func NewView(pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{
		sortKey:  SortByFirstName,
		sortDir:  Ascending,
		page:     1,
		pageSize: pageSize,
	}
}

// Query returns the raw query as last typed.
func (v *View) Query() string { return v.query }

// DebouncedQuery returns the committed query the filter actually uses.
func (v *View) DebouncedQuery() string { return v.debouncedQuery }

// SortKey returns the current sort field.
func (v *View) SortKey() SortKey { return v.sortKey }

// SortDirection returns the current sort direction.
func (v *View) SortDirection() Direction { return v.sortDir }

// Page returns the current 1-based page.
func (v *View) Page() int { return v.page }

// PageSize returns the fixed page size.
func (v *View) PageSize() int { return v.pageSize }

// SetQuery records a new raw query and returns the debounce generation for
// it. The committed query and the page are untouched; callers schedule a
// quiet timer and hand the generation back to CommitQuery when it fires.
func (v *View) SetQuery(query string) int {
	v.query = query
	v.queryGen++
	return v.queryGen
}

// CommitQuery commits the raw query after a quiet period. Generations
// older than the latest SetQuery are dropped, which is what makes the
// debounce cancelling rather than throttling. Committing a changed query
// resets the page to 1; re-committing an identical value is a no-op.
// It reports whether the committed query changed.
func (v *View) CommitQuery(gen int) bool {
	if gen != v.queryGen {
		return false
	}
	if v.query == v.debouncedQuery {
		return false
	}
	v.debouncedQuery = v.query
	v.page = 1
	return true
}

// SetSort selects the sort field. Reselecting the current field flips the
// direction; a new field always starts ascending. The page resets to 1
// either way.
func (v *View) SetSort(key SortKey) {
	if key == v.sortKey {
		if v.sortDir == Ascending {
			v.sortDir = Descending
		} else {
			v.sortDir = Ascending
		}
	} else {
		v.sortKey = key
		v.sortDir = Ascending
	}
	v.page = 1
}

// SetSortOrder sets the sort key and direction directly, bypassing the
// reselection toggle. Needed when the sort arrives fully specified (a
// flag rather than a column click): toggling would invert a request for
// the key the view already sorts by. The page resets to 1 like any other
// sort change.
func (v *View) SetSortOrder(key SortKey, dir Direction) {
	v.sortKey = key
	v.sortDir = dir
	v.page = 1
}

// SetPage moves to page n, clamped to [1, totalPages]. A totalPages of
// zero clamps as one so an empty result set still sits on page 1 of 1.
func (v *View) SetPage(n, totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	if n < 1 {
		n = 1
	}
	if n > totalPages {
		n = totalPages
	}
	v.page = n
}

// Result is one derived view over a record set: the page to render plus
// the counts the presentation needs for pagination controls.
type Result struct {
	Page          []Record
	FilteredCount int
	Meta          PageMeta
}

// Apply runs the derived pipeline Filter -> Sort -> Paginate over records
// with the current view-state. It is deterministic and side-effect-free;
// repeated calls with unchanged inputs yield equal results.
func (v *View) Apply(records []Record) Result {
	filtered := Filter(records, v.debouncedQuery)
	sorted := Sort(filtered, v.sortKey, v.sortDir)
	page := Paginate(sorted, v.page, v.pageSize)

	return Result{
		Page:          page,
		FilteredCount: len(filtered),
		Meta:          NewPageMeta(v.page, v.pageSize, len(filtered)),
	}
}
