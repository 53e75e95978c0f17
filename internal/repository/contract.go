package repository

import (
	"context"

	"github.com/vintiq/offer-service/internal/domain"
	"github.com/vintiq/offer-service/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MongoDBOfferRepository interface {
	InsertOffer(ctx context.Context, data domain.Offer) (id primitive.ObjectID, err error)
	GetOfferByID(ctx context.Context, id primitive.ObjectID) (offer domain.Offer, err error)
	FindOffers(ctx context.Context, plan QueryPlan) (data []dto.OfferResponse, err error)
	FindOfferSummaries(ctx context.Context, plan QueryPlan) (data []dto.OfferSummary, err error)
}

type SearchIndexOfferRepository interface {
	IndexOffer(ctx context.Context, data dto.OfferResponse) (err error)
}
