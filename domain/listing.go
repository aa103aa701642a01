package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	ListLimitMax = 100
)

// SortDirection is the direction of one ordering column.
type SortDirection int8

const (
	Ascending  SortDirection = 1
	Descending SortDirection = -1
)

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "unknown"
	}
}

// ParseSortDirection accepts asc/ascending/1 and desc/descending/-1.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "1":
		return Ascending, nil
	case "desc", "descending", "-1":
		return Descending, nil
	}
	return 0, fmt.Errorf("%w: unknown sort direction %q", ErrBadParamInput, s)
}

func (d SortDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts both the string and the numeric form.
func (d *SortDirection) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Errorf("%w: unknown sort direction %s", ErrBadParamInput, string(b))
	}
	parsed, err := ParseSortDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// SortableColumns is the allow-list of public columns a listing may order by.
var SortableColumns = map[string]struct{}{
	"uuid":    {},
	"content": {},
	"hidden":  {},
	"vote":    {},
	"created": {},
	"updated": {},
}

// Ordering is one {column, direction} pair. Position in the list decides precedence.
type Ordering struct {
	Column    string        `json:"column"`
	Direction SortDirection `json:"order"`
}

// ParseOrdering parses the "column:direction" form used in query strings.
// A bare column sorts ascending.
func ParseOrdering(s string) (Ordering, error) {
	column, dir, found := strings.Cut(s, ":")
	o := Ordering{Column: strings.TrimSpace(column), Direction: Ascending}
	if found {
		d, err := ParseSortDirection(dir)
		if err != nil {
			return Ordering{}, err
		}
		o.Direction = d
	}
	return o, nil
}

// ListQuery describes one listing window.
// Offset counts pages of Limit records, not records.
type ListQuery struct {
	Offset int64
	Limit  int64
	Order  []Ordering
}

// Skip is the number of matching records before the window.
func (q ListQuery) Skip() int64 {
	return q.Offset * q.Limit
}

// Validate enforces the window bounds and the sort allow-list.
func (q ListQuery) Validate() error {
	if q.Limit < 1 || q.Limit > ListLimitMax {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrBadParamInput, ListLimitMax)
	}
	if q.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative", ErrBadParamInput)
	}
	// the skipped record count must fit a SQL OFFSET
	if q.Offset > math.MaxInt32/q.Limit {
		return fmt.Errorf("%w: offset is too large", ErrBadParamInput)
	}
	seen := make(map[string]bool, len(q.Order))
	for _, o := range q.Order {
		if _, ok := SortableColumns[o.Column]; !ok {
			return fmt.Errorf("%w: column %q is not sortable", ErrBadParamInput, o.Column)
		}
		if o.Direction != Ascending && o.Direction != Descending {
			return fmt.Errorf("%w: column %q has no direction", ErrBadParamInput, o.Column)
		}
		if seen[o.Column] {
			return fmt.Errorf("%w: column %q ordered twice", ErrBadParamInput, o.Column)
		}
		seen[o.Column] = true
	}
	return nil
}

// CommentPage is one window of a comment listing.
type CommentPage struct {
	Limit   int64
	Offset  int64
	Order   []Ordering
	Total   int64
	Records []Comment
}
