// Package query translates flat request query parameters into a typed
// filter/sort/projection/pagination descriptor shared by every list endpoint.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Operator is the closed set of comparison operators a condition may carry.
type Operator int

const (
	OpEq Operator = iota
	OpGte
	OpGt
	OpLte
	OpLt
)

// Condition is a single field comparison.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// SortField orders results by one field.
type SortField struct {
	Field string
	Desc  bool
}

// Query is the structured descriptor produced by Parse.
type Query struct {
	Conditions []Condition
	Sort       []SortField
	Skip       int64
	Limit      int64
	// Projection restricts returned fields; empty means all.
	Projection []string
}

const (
	DefaultLimit = 10
	defaultPage  = 1
	defaultSort  = "created_at"
)

// Reserved control keys stripped from the filter set.
var reservedKeys = map[string]bool{
	"page":   true,
	"sort":   true,
	"limit":  true,
	"fields": true,
}

var operatorSuffixes = []struct {
	suffix string
	op     Operator
}{
	{"_gte", OpGte},
	{"_lte", OpLte},
	{"_gt", OpGt},
	{"_lt", OpLt},
}

// Parse builds a Query from raw URL parameters. Malformed page and limit
// values fall back to their defaults rather than failing the request.
func Parse(values url.Values) Query {
	q := Query{Limit: DefaultLimit}

	for key, vals := range values {
		if reservedKeys[key] || len(vals) == 0 {
			continue
		}

		field, op := splitOperator(key)
		q.Conditions = append(q.Conditions, Condition{
			Field: field,
			Op:    op,
			Value: coerceValue(vals[0]),
		})
	}

	q.Sort = parseSort(values.Get("sort"))

	page := parsePositiveInt(values.Get("page"), defaultPage)
	limit := parsePositiveInt(values.Get("limit"), DefaultLimit)
	q.Limit = limit
	q.Skip = (page - 1) * limit

	if fields := values.Get("fields"); fields != "" {
		for _, f := range strings.Split(fields, ",") {
			if f = strings.TrimSpace(f); f != "" {
				q.Projection = append(q.Projection, f)
			}
		}
	}

	return q
}

// splitOperator peels a range-operator suffix off a parameter name.
func splitOperator(key string) (string, Operator) {
	for _, s := range operatorSuffixes {
		if field, ok := strings.CutSuffix(key, s.suffix); ok && field != "" {
			return field, s.op
		}
	}
	return key, OpEq
}

// coerceValue turns a raw string into a typed value so range comparisons
// match numeric and boolean BSON fields instead of comparing lexically.
func coerceValue(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func parseSort(raw string) []SortField {
	if raw == "" {
		return []SortField{{Field: defaultSort}}
	}

	var sort []SortField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}
		if field, ok := strings.CutPrefix(part, "-"); ok {
			sort = append(sort, SortField{Field: field, Desc: true})
		} else {
			sort = append(sort, SortField{Field: part})
		}
	}
	if len(sort) == 0 {
		return []SortField{{Field: defaultSort}}
	}
	return sort
}

func parsePositiveInt(raw string, fallback int64) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
