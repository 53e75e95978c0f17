package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/vintiq/offer-service/internal/domain"
	"github.com/vintiq/offer-service/internal/dto"
	"github.com/vintiq/offer-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	offerCollection = "offers"
	userCollection  = "users"
)

type MongoDBOfferRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) MongoDBOfferRepository {
	return &MongoDBOfferRepositoryImpl{db: db}
}

func (r *MongoDBOfferRepositoryImpl) InsertOffer(ctx context.Context, data domain.Offer) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(offerCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertOffer").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBOfferRepositoryImpl) GetOfferByID(ctx context.Context, id primitive.ObjectID) (offer domain.Offer, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection(offerCollection).FindOne(ctx, filter).Decode(&offer)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOfferByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return offer, errs.ErrNotFound
		}

		return offer, err
	}

	return offer, nil
}

// populatedOffer is the aggregation shape with the owner reference resolved
// to the identity's public fields.
type populatedOffer struct {
	domain.Offer `bson:",inline"`
	OwnerProfile []domain.OwnerProfile `bson:"owner_profile"`
}

// FindOffers runs the plan against the offers collection and populates the
// owner reference through a $lookup. Stages the plan leaves at their zero
// value are omitted from the pipeline.
func (r *MongoDBOfferRepositoryImpl) FindOffers(ctx context.Context, plan QueryPlan) (data []dto.OfferResponse, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: plan.Filter}},
	}

	if len(plan.Sort) != 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: plan.Sort}})
	}

	if plan.Skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: plan.Skip}})
	}

	if plan.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: plan.Limit}})
	}

	pipeline = append(pipeline, bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: userCollection},
		{Key: "localField", Value: "owner"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "owner_profile"},
	}}})

	cursor, err := r.db.Collection(offerCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindOffers").Msg("")
		return
	}

	var rows []populatedOffer
	if err = cursor.All(ctx, &rows); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindOffers").Msg("")
		return
	}

	data = make([]dto.OfferResponse, 0, len(rows))
	for _, row := range rows {
		item := dto.OfferResponse{
			ID:                 row.ID.Hex(),
			ExternalID:         row.ExternalID,
			ProductName:        row.ProductName,
			ProductDescription: row.ProductDescription,
			ProductPrice:       row.ProductPrice,
			ProductDetails:     row.ProductDetails,
			ProductImage:       row.ProductImage,
		}
		if len(row.OwnerProfile) != 0 {
			owner := row.OwnerProfile[0]
			item.Owner = &owner
		}

		data = append(data, item)
	}

	return data, nil
}

// FindOfferSummaries serves the projected name-and-price listing through a
// plain find with the plan's sort and pagination bounds applied.
func (r *MongoDBOfferRepositoryImpl) FindOfferSummaries(ctx context.Context, plan QueryPlan) (data []dto.OfferSummary, err error) {
	opts := options.Find().SetProjection(bson.D{
		{Key: "product_name", Value: 1},
		{Key: "product_price", Value: 1},
		{Key: "_id", Value: 0},
	})

	if len(plan.Sort) != 0 {
		opts = opts.SetSort(plan.Sort)
	}

	if plan.Limit > 0 {
		opts = opts.SetLimit(plan.Limit).SetSkip(plan.Skip)
	}

	cursor, err := r.db.Collection(offerCollection).Find(ctx, plan.Filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindOfferSummaries").Msg("")
		return
	}

	data = make([]dto.OfferSummary, 0)
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindOfferSummaries").Msg("")
		return
	}

	return data, nil
}
