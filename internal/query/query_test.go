package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		rawQuery  string
		wantSkip  int64
		wantLimit int64
	}{
		{
			name:      "defaults",
			rawQuery:  "",
			wantSkip:  0,
			wantLimit: 10,
		},
		{
			name:      "explicit page and limit",
			rawQuery:  "page=3&limit=5",
			wantSkip:  10,
			wantLimit: 5,
		},
		{
			name:      "malformed page falls back",
			rawQuery:  "page=abc&limit=5",
			wantSkip:  0,
			wantLimit: 5,
		},
		{
			name:      "malformed limit falls back",
			rawQuery:  "page=2&limit=x",
			wantSkip:  10,
			wantLimit: 10,
		},
		{
			name:      "non-positive values fall back",
			rawQuery:  "page=0&limit=-4",
			wantSkip:  0,
			wantLimit: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.rawQuery)
			assert.NoError(t, err)

			q := Parse(values)

			assert.Equal(t, tt.wantSkip, q.Skip)
			assert.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}

func TestParseConditions(t *testing.T) {
	values, _ := url.ParseQuery("views_gte=10&active=true&author=jane&page=2&sort=views&limit=5&fields=title")

	q := Parse(values)

	// Reserved keys never become filter conditions.
	assert.Len(t, q.Conditions, 3)

	byField := map[string]Condition{}
	for _, c := range q.Conditions {
		byField[c.Field] = c
	}

	assert.Equal(t, Condition{Field: "views", Op: OpGte, Value: int64(10)}, byField["views"])
	assert.Equal(t, Condition{Field: "active", Op: OpEq, Value: true}, byField["active"])
	assert.Equal(t, Condition{Field: "author", Op: OpEq, Value: "jane"}, byField["author"])
}

func TestParseOperatorSuffixes(t *testing.T) {
	tests := []struct {
		key       string
		wantField string
		wantOp    Operator
	}{
		{"views_gte", "views", OpGte},
		{"views_gt", "views", OpGt},
		{"views_lte", "views", OpLte},
		{"views_lt", "views", OpLt},
		{"views", "views", OpEq},
		// A bare suffix with no field stays an exact-match key.
		{"_gte", "_gte", OpEq},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			field, op := splitOperator(tt.key)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOp, op)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     []SortField
	}{
		{
			name:     "default sort is creation time ascending",
			rawQuery: "",
			want:     []SortField{{Field: "created_at"}},
		},
		{
			name:     "descending prefix",
			rawQuery: "sort=-views",
			want:     []SortField{{Field: "views", Desc: true}},
		},
		{
			name:     "multi-field",
			rawQuery: "sort=-views,title",
			want:     []SortField{{Field: "views", Desc: true}, {Field: "title"}},
		},
		{
			name:     "blank entries ignored",
			rawQuery: "sort=,-,",
			want:     []SortField{{Field: "created_at"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.rawQuery)
			assert.Equal(t, tt.want, Parse(values).Sort)
		})
	}
}

func TestParseProjection(t *testing.T) {
	values, _ := url.ParseQuery("fields=title, description,,views")

	q := Parse(values)

	assert.Equal(t, []string{"title", "description", "views"}, q.Projection)
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, int64(42), coerceValue("42"))
	assert.Equal(t, 4.5, coerceValue("4.5"))
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, "hello", coerceValue("hello"))
}
