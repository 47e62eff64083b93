package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"newsdesk/internal/query"
)

// buildFilter converts descriptor conditions into a MongoDB filter document.
// Operators outside the descriptor enum are rejected instead of being passed
// through to the server.
func buildFilter(q query.Query) (bson.M, error) {
	filter := bson.M{}

	for _, cond := range q.Conditions {
		switch cond.Op {
		case query.OpEq:
			filter[cond.Field] = cond.Value
		case query.OpGte, query.OpGt, query.OpLte, query.OpLt:
			rangeFilter, ok := filter[cond.Field].(bson.M)
			if !ok {
				rangeFilter = bson.M{}
				filter[cond.Field] = rangeFilter
			}
			rangeFilter[mongoOperator(cond.Op)] = cond.Value
		default:
			return nil, fmt.Errorf("unknown filter operator %d on field %q", cond.Op, cond.Field)
		}
	}

	return filter, nil
}

func mongoOperator(op query.Operator) string {
	switch op {
	case query.OpGte:
		return "$gte"
	case query.OpGt:
		return "$gt"
	case query.OpLte:
		return "$lte"
	default:
		return "$lt"
	}
}

func findOptions(q query.Query) *options.FindOptionsBuilder {
	opts := options.Find()

	limit := q.Limit
	if limit <= 0 {
		limit = query.DefaultLimit
	}
	opts.SetLimit(limit)

	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}

	sort := bson.D{}
	for _, s := range q.Sort {
		order := 1
		if s.Desc {
			order = -1
		}
		sort = append(sort, bson.E{Key: s.Field, Value: order})
	}
	if len(sort) == 0 {
		sort = bson.D{{Key: "created_at", Value: 1}}
	}
	opts.SetSort(sort)

	if len(q.Projection) > 0 {
		projection := bson.D{}
		for _, field := range q.Projection {
			projection = append(projection, bson.E{Key: field, Value: 1})
		}
		opts.SetProjection(projection)
	}

	return opts
}

// findPage runs the filtered, sorted, paginated read plus a count of all
// documents matching only the filter conditions, so the page and the total
// reflect the same filter semantics.
func findPage[T any](ctx context.Context, coll *mongo.Collection, q query.Query) ([]*T, int64, error) {
	filter, err := buildFilter(q)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := coll.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, 0, err
	}

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}
