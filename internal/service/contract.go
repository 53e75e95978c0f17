package service

import (
	"context"

	"github.com/segmentio/kafka-go"
	"github.com/vintiq/offer-service/internal/domain"
	"github.com/vintiq/offer-service/internal/dto"
	pkgdto "github.com/vintiq/offer-service/pkg/dto"
)

type OfferService interface {
	PublishOffer(ctx context.Context, req dto.PublishOfferRequest, ownerID string, file *dto.UploadedFile) (offer domain.Offer, err error)
	SearchOffers(ctx context.Context, filter pkgdto.OfferFilter) (data []dto.OfferResponse, err error)
	GetOfferSummaries(ctx context.Context) (data []dto.OfferSummary, err error)
	ConsumeEvent()
}

// ImageUploader is the media-host contract consumed by the publish path.
type ImageUploader interface {
	Upload(ctx context.Context, fileBytes []byte, mimeType string) (domain.ImageReference, error)
}

// EventReader and EventWriter are the broker contracts the service consumes;
// *kafka.Reader and *kafka.Conn satisfy them.
type EventReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type EventWriter interface {
	WriteMessages(msgs ...kafka.Message) (int, error)
}
