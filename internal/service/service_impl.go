package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"
	"github.com/vintiq/offer-service/internal/domain"
	"github.com/vintiq/offer-service/internal/dto"
	"github.com/vintiq/offer-service/internal/repository"
	pkgdto "github.com/vintiq/offer-service/pkg/dto"
	"github.com/vintiq/offer-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const eventOfferPublished = "offer_published"

const legacyPageSize = 5

type OfferServiceImpl struct {
	mongoDBRepo     repository.MongoDBOfferRepository
	searchIndexRepo repository.SearchIndexOfferRepository
	uploader        ImageUploader
	kafkaReader     EventReader
	kafkaProducer   EventWriter
}

func CreateOfferService(mongoDBRepo repository.MongoDBOfferRepository, searchIndexRepo repository.SearchIndexOfferRepository, uploader ImageUploader, kafkaReader EventReader, kafkaProducer EventWriter) OfferService {
	return &OfferServiceImpl{mongoDBRepo: mongoDBRepo, searchIndexRepo: searchIndexRepo, uploader: uploader, kafkaReader: kafkaReader, kafkaProducer: kafkaProducer}
}

// PublishOffer builds and persists an offer for the resolved owner. The
// upload, when a file is attached, completes before anything is written, so
// a failed upload never leaves a partial offer behind.
func (s *OfferServiceImpl) PublishOffer(ctx context.Context, req dto.PublishOfferRequest, ownerID string, file *dto.UploadedFile) (offer domain.Offer, err error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PublishOffer").Msg("")
		return offer, errs.ErrNotLoggedIn
	}

	price, err := strconv.ParseFloat(req.Price, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return offer, errs.ErrValidation
	}

	offer = domain.Offer{
		ExternalID:         ulid.Make().String(),
		ProductName:        req.Title,
		ProductDescription: req.Description,
		ProductPrice:       price,
		ProductDetails: []domain.OfferDetail{
			{Key: domain.DetailKeyBrand, Value: req.Brand},
			{Key: domain.DetailKeySize, Value: req.Size},
			{Key: domain.DetailKeyCondition, Value: req.Condition},
			{Key: domain.DetailKeyColor, Value: req.Color},
			{Key: domain.DetailKeyCity, Value: req.City},
		},
		Owner: owner,
	}

	if file != nil {
		imageRef, uploadErr := s.uploader.Upload(ctx, file.Data, file.MimeType)
		if uploadErr != nil {
			return domain.Offer{}, uploadErr
		}

		offer.ProductImage = &imageRef
	}

	offerID, err := s.mongoDBRepo.InsertOffer(ctx, offer)
	if err != nil {
		return domain.Offer{}, err
	}

	// Echo back the document as the store holds it, not the in-memory draft.
	offer, err = s.mongoDBRepo.GetOfferByID(ctx, offerID)
	if err != nil {
		return domain.Offer{}, err
	}

	s.publishOfferEvent(ctx, offer)

	return offer, nil
}

// publishOfferEvent emits the published offer for the search-index mirror.
// Delivery is best effort: the offer is already persisted, so a broker
// failure is logged rather than surfaced to the seller.
func (s *OfferServiceImpl) publishOfferEvent(ctx context.Context, offer domain.Offer) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventID:   ulid.Make().String(),
		EventType: eventOfferPublished,
		Data: dto.OfferResponse{
			ID:                 offer.ID.Hex(),
			ExternalID:         offer.ExternalID,
			ProductName:        offer.ProductName,
			ProductDescription: offer.ProductDescription,
			ProductPrice:       offer.ProductPrice,
			ProductDetails:     offer.ProductDetails,
			ProductImage:       offer.ProductImage,
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishOfferEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.writeKafkaMessage(jsonMsg, offer.ID.Hex())
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishOfferEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1)) // Exponential backoff
	}
}

func (s *OfferServiceImpl) writeKafkaMessage(msg []byte, key string) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Key:   []byte(key),
			Value: msg,
		},
	)
	return err
}

func (s *OfferServiceImpl) SearchOffers(ctx context.Context, filter pkgdto.OfferFilter) (data []dto.OfferResponse, err error) {
	plan, err := repository.BuildQueryPlan(filter)
	if err != nil {
		return
	}

	return s.mongoDBRepo.FindOffers(ctx, plan)
}

// GetOfferSummaries serves the legacy listing: first page of five offers,
// price ascending, projected to name and price. It runs through the same
// plan builder as SearchOffers.
func (s *OfferServiceImpl) GetOfferSummaries(ctx context.Context) (data []dto.OfferSummary, err error) {
	plan, err := repository.BuildQueryPlan(pkgdto.OfferFilter{
		Sort:  repository.SortPriceAsc,
		Page:  "1",
		Limit: strconv.Itoa(legacyPageSize),
	})
	if err != nil {
		return
	}

	return s.mongoDBRepo.FindOfferSummaries(ctx, plan)
}

// ConsumeEvent feeds published offers into the search index. It runs for
// the life of the process on its own goroutine.
func (s *OfferServiceImpl) ConsumeEvent() {
	if s.kafkaReader == nil {
		return
	}

	for {
		msg, err := s.kafkaReader.ReadMessage(context.Background())
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Reader closed, shutting down.
				return
			}
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			continue
		}

		var receivedMsg dto.KafkaMessage
		if err := json.Unmarshal(msg.Value, &receivedMsg); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			continue
		}

		switch receivedMsg.EventType {
		case eventOfferPublished:
			var offerData dto.OfferResponse
			dataBytes, err := json.Marshal(receivedMsg.Data)
			if err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
				continue
			}
			if err := json.Unmarshal(dataBytes, &offerData); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
				continue
			}

			maxRetries := 3
			for i := 0; i < maxRetries; i++ {
				err = s.searchIndexRepo.IndexOffer(context.Background(), offerData)
				if err == nil {
					break
				}
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
				time.Sleep(time.Second * time.Duration(i+1)) // Exponential backoff
			}
		default:
			log.Info().Str("component", "ConsumeEvent").Str("event_type", receivedMsg.EventType).Msg("Unknown event type")
		}
	}
}
