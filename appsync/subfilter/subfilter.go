// Package subfilter builds enhanced subscription filter payloads for
// AppSync subscription resolvers.
//
// AppSync enforces hard limits on filter payloads: field paths of at
// most 256 characters, at most 5 values for in/notIn, 20 for
// containsAny, 5 field filters per AND group and 10 AND groups per OR
// group. Constructors never fail; a violation is recorded on the
// value and surfaced when the payload is marshaled or checked with
// Err, so filter expressions compose without error plumbing at every
// step.
package subfilter

import (
	"encoding/json"
	"fmt"
)

// Operator is a subscription filter comparison operator, spelled the
// way the wire format expects.
type Operator string

const (
	OpEq          Operator = "eq"
	OpNe          Operator = "ne"
	OpLe          Operator = "le"
	OpLt          Operator = "lt"
	OpGe          Operator = "ge"
	OpGt          Operator = "gt"
	OpContains    Operator = "contains"
	OpNotContains Operator = "notContains"
	OpBeginsWith  Operator = "beginsWith"
	OpIn          Operator = "in"
	OpNotIn       Operator = "notIn"
	OpBetween     Operator = "between"
	OpContainsAny Operator = "containsAny"
)

// Number covers the numeric types admitted by filter operators,
// including int64-backed scalars such as appsync.AWSTimestamp.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// EqValue covers the types usable with the equality operators eq and
// ne: numbers, strings (including string-backed scalars such as
// appsync.ID) and booleans.
type EqValue interface {
	Number | ~string | ~bool
}

// OrdValue covers the types usable with the ordered and membership
// operators. Booleans are excluded; they only support equality.
type OrdValue interface {
	Number | ~string
}

// FieldPath addresses a field in published subscription data, dotted
// for nesting ("player.team").
type FieldPath struct {
	path string
}

const maxFieldPathLen = 256

// NewFieldPath validates and builds a field path. Paths longer than
// 256 characters are rejected.
func NewFieldPath(path string) (FieldPath, error) {
	if len(path) > maxFieldPathLen {
		return FieldPath{}, fmt.Errorf("field path exceeds %d characters (got %d)", maxFieldPathLen, len(path))
	}
	return FieldPath{path: path}, nil
}

// MustFieldPath is NewFieldPath, panicking on an invalid path. For
// paths known at compile time.
func MustFieldPath(path string) FieldPath {
	p, err := NewFieldPath(path)
	if err != nil {
		panic(err)
	}
	return p
}

func (p FieldPath) String() string { return p.path }

// FieldFilter is a single field comparison.
type FieldFilter struct {
	path  FieldPath
	op    Operator
	value any
	err   error
}

// Err returns the violation recorded during construction, if any.
func (f FieldFilter) Err() error { return f.err }

func (f FieldFilter) MarshalJSON() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return json.Marshal(struct {
		FieldName string   `json:"fieldName"`
		Operator  Operator `json:"operator"`
		Value     any      `json:"value"`
	}{f.path.path, f.op, f.value})
}

// Eq matches when the field equals the value.
func Eq[T EqValue](path FieldPath, value T) FieldFilter {
	return FieldFilter{path: path, op: OpEq, value: value}
}

// Ne matches when the field differs from the value.
func Ne[T EqValue](path FieldPath, value T) FieldFilter {
	return FieldFilter{path: path, op: OpNe, value: value}
}

// Le matches when the field is less than or equal to the value.
func Le[T OrdValue](path FieldPath, value T) FieldFilter {
	return FieldFilter{path: path, op: OpLe, value: value}
}

// Lt matches when the field is less than the value.
func Lt[T OrdValue](path FieldPath, value T) FieldFilter {
	return FieldFilter{path: path, op: OpLt, value: value}
}

// Ge matches when the field is greater than or equal to the value.
func Ge[T OrdValue](path FieldPath, value T) FieldFilter {
	return FieldFilter{path: path, op: OpGe, value: value}
}

// Gt matches when the field is greater than the value.
func Gt[T OrdValue](path FieldPath, value T) FieldFilter {
	return FieldFilter{path: path, op: OpGt, value: value}
}

// Contains matches when the field contains the value.
func Contains[T OrdValue](path FieldPath, value T) FieldFilter {
	return FieldFilter{path: path, op: OpContains, value: value}
}

// NotContains matches when the field does not contain the value.
func NotContains[T OrdValue](path FieldPath, value T) FieldFilter {
	return FieldFilter{path: path, op: OpNotContains, value: value}
}

// BeginsWith matches when the string field starts with the prefix.
func BeginsWith[T ~string](path FieldPath, prefix T) FieldFilter {
	return FieldFilter{path: path, op: OpBeginsWith, value: prefix}
}

// Between matches when the field lies between start and end,
// inclusive.
func Between[T OrdValue](path FieldPath, start, end T) FieldFilter {
	return FieldFilter{path: path, op: OpBetween, value: []T{start, end}}
}

const (
	maxInValues          = 5
	maxContainsAnyValues = 20
	maxFiltersPerAnd     = 5
	maxGroupsPerOr       = 10
)

// In matches when the field equals any of the values. At most 5
// values are allowed.
func In[T OrdValue](path FieldPath, values ...T) FieldFilter {
	f := FieldFilter{path: path, op: OpIn, value: values}
	if len(values) > maxInValues {
		f.err = fmt.Errorf("in accepts at most %d values (got %d)", maxInValues, len(values))
	}
	return f
}

// NotIn matches when the field equals none of the values. At most 5
// values are allowed.
func NotIn[T OrdValue](path FieldPath, values ...T) FieldFilter {
	f := FieldFilter{path: path, op: OpNotIn, value: values}
	if len(values) > maxInValues {
		f.err = fmt.Errorf("notIn accepts at most %d values (got %d)", maxInValues, len(values))
	}
	return f
}

// ContainsAny matches when the field contains any of the values. At
// most 20 values are allowed.
func ContainsAny[T OrdValue](path FieldPath, values ...T) FieldFilter {
	f := FieldFilter{path: path, op: OpContainsAny, value: values}
	if len(values) > maxContainsAnyValues {
		f.err = fmt.Errorf("containsAny accepts at most %d values (got %d)", maxContainsAnyValues, len(values))
	}
	return f
}

// Filter is a conjunction of field filters: all of them must match.
type Filter struct {
	filters []FieldFilter
	err     error
}

// And builds a conjunction. At most 5 field filters are allowed;
// violations recorded on any member propagate.
func And(filters ...FieldFilter) Filter {
	f := Filter{filters: filters}
	if len(filters) > maxFiltersPerAnd {
		f.err = fmt.Errorf("a filter accepts at most %d field filters (got %d)", maxFiltersPerAnd, len(filters))
		return f
	}
	for _, ff := range filters {
		if ff.err != nil {
			f.err = ff.err
			break
		}
	}
	return f
}

// Err returns the first violation recorded in the conjunction.
func (f Filter) Err() error { return f.err }

func (f Filter) MarshalJSON() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return json.Marshal(struct {
		Filters []FieldFilter `json:"filters"`
	}{f.filters})
}

// FilterGroup is a disjunction of filters: the subscription fires when
// any member filter matches. This is the value a subscription resolver
// returns to scope its notifications.
type FilterGroup struct {
	filters []Filter
	err     error
}

// Or builds a disjunction. At most 10 filters are allowed; violations
// recorded on any member propagate.
func Or(filters ...Filter) *FilterGroup {
	g := &FilterGroup{filters: filters}
	if len(filters) > maxGroupsPerOr {
		g.err = fmt.Errorf("a filter group accepts at most %d filters (got %d)", maxGroupsPerOr, len(filters))
		return g
	}
	for _, f := range filters {
		if f.err != nil {
			g.err = f.err
			break
		}
	}
	return g
}

// Single wraps one field filter into a complete group, the common case
// of subscriptions filtered on a single field.
func Single(filter FieldFilter) *FilterGroup {
	return Or(And(filter))
}

// Err returns the first violation recorded anywhere in the group.
func (g *FilterGroup) Err() error { return g.err }

func (g *FilterGroup) MarshalJSON() ([]byte, error) {
	if g.err != nil {
		return nil, g.err
	}
	return json.Marshal(struct {
		FilterGroup []Filter `json:"filterGroup"`
	}{g.filters})
}
