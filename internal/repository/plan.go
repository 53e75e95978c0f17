package repository

import (
	"regexp"
	"strconv"

	"github.com/vintiq/offer-service/pkg/dto"
	"github.com/vintiq/offer-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// QueryPlan is the executable form of a listing query: a filter predicate,
// an optional sort order and optional pagination bounds. Zero values mean
// the stage is skipped, so any subset of parameters composes.
type QueryPlan struct {
	Filter bson.D
	Sort   bson.D
	Limit  int64
	Skip   int64
}

// BuildQueryPlan translates the optional listing parameters into a QueryPlan.
// It performs no I/O. Non-numeric price or pagination input is rejected with
// errs.ErrValidation; absent parameters never produce an error.
func BuildQueryPlan(param dto.OfferFilter) (QueryPlan, error) {
	plan := QueryPlan{Filter: bson.D{}}

	if param.Title != "" {
		// Case-insensitive substring match, the query text is taken
		// literally rather than as a regex pattern.
		plan.Filter = append(plan.Filter, bson.E{
			Key:   "product_name",
			Value: primitive.Regex{Pattern: regexp.QuoteMeta(param.Title), Options: "i"},
		})
	}

	priceRange := bson.D{}
	if param.PriceMin != "" {
		priceMin, err := strconv.ParseFloat(param.PriceMin, 64)
		if err != nil {
			return QueryPlan{}, errs.ErrValidation
		}
		priceRange = append(priceRange, bson.E{Key: "$gte", Value: priceMin})
	}
	if param.PriceMax != "" {
		priceMax, err := strconv.ParseFloat(param.PriceMax, 64)
		if err != nil {
			return QueryPlan{}, errs.ErrValidation
		}
		priceRange = append(priceRange, bson.E{Key: "$lte", Value: priceMax})
	}
	if len(priceRange) != 0 {
		plan.Filter = append(plan.Filter, bson.E{Key: "product_price", Value: priceRange})
	}

	switch param.Sort {
	case SortPriceAsc:
		plan.Sort = bson.D{{Key: "product_price", Value: 1}}
	case SortPriceDesc:
		plan.Sort = bson.D{{Key: "product_price", Value: -1}}
	}

	if param.Limit != "" {
		limit, err := strconv.ParseInt(param.Limit, 10, 64)
		if err != nil || limit < 1 {
			return QueryPlan{}, errs.ErrValidation
		}

		page := int64(1)
		if param.Page != "" {
			page, err = strconv.ParseInt(param.Page, 10, 64)
			if err != nil || page < 1 {
				return QueryPlan{}, errs.ErrValidation
			}
		}

		plan.Limit = limit
		plan.Skip = (page - 1) * limit
	} else if param.Page != "" {
		if _, err := strconv.ParseInt(param.Page, 10, 64); err != nil {
			return QueryPlan{}, errs.ErrValidation
		}
	}

	return plan, nil
}
