package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"newsdesk/internal/query"
)

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name    string
		q       query.Query
		want    bson.M
		wantErr bool
	}{
		{
			name: "empty query",
			q:    query.Query{},
			want: bson.M{},
		},
		{
			name: "equality condition",
			q: query.Query{Conditions: []query.Condition{
				{Field: "author", Op: query.OpEq, Value: "jane"},
			}},
			want: bson.M{"author": "jane"},
		},
		{
			name: "range condition",
			q: query.Query{Conditions: []query.Condition{
				{Field: "views", Op: query.OpGte, Value: int64(10)},
			}},
			want: bson.M{"views": bson.M{"$gte": int64(10)}},
		},
		{
			name: "range conditions on the same field merge",
			q: query.Query{Conditions: []query.Condition{
				{Field: "views", Op: query.OpGte, Value: int64(10)},
				{Field: "views", Op: query.OpLt, Value: int64(100)},
			}},
			want: bson.M{"views": bson.M{"$gte": int64(10), "$lt": int64(100)}},
		},
		{
			name: "unknown operator rejected",
			q: query.Query{Conditions: []query.Condition{
				{Field: "views", Op: query.Operator(99), Value: int64(1)},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildFilter(tt.q)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMongoOperator(t *testing.T) {
	assert.Equal(t, "$gte", mongoOperator(query.OpGte))
	assert.Equal(t, "$gt", mongoOperator(query.OpGt))
	assert.Equal(t, "$lte", mongoOperator(query.OpLte))
	assert.Equal(t, "$lt", mongoOperator(query.OpLt))
}
