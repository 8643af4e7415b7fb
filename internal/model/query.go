package model

// ParsedQuery is the intermediate representation the lexical extractor
// pulls out of a free-text question. It lives for a single request.
// Month is always zero-padded to two digits when present; Year is always
// four digits when present.
type ParsedQuery struct {
	OriginalQuery string
	Category      CategoryCode // empty when no category keyword matched
	Month         string       // "01".."12", empty when undetected
	Year          string       // "2000".., empty when undetected
}

// ShapeKind selects which query strategy the planner chose.
type ShapeKind int

const (
	// ShapeCategoryAndMonth scopes to one category within one month.
	ShapeCategoryAndMonth ShapeKind = iota
	// ShapeMonthOnly summarizes all categories within one month.
	ShapeMonthOnly
	// ShapeCategoryOnly scopes to one category over a month or whole year.
	ShapeCategoryOnly
	// ShapeFallback is the unscoped general summary.
	ShapeFallback
)

// QueryShape is the planner's output: which strategy to run and with
// which period. Month is empty for whole-year CategoryOnly queries and
// for Fallback; Year is set for every kind except Fallback.
type QueryShape struct {
	Category CategoryCode
	Month    string
	Year     string
	Kind     ShapeKind
}
