package repository

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/vintiq/offer-service/config"
	"github.com/vintiq/offer-service/internal/dto"
	pkgdto "github.com/vintiq/offer-service/pkg/dto"
	"github.com/vintiq/offer-service/pkg/errs"
	"github.com/vintiq/offer-service/pkg/httpclient"
)

type SearchIndexOfferRepositoryImpl struct {
	config *config.Config
}

func CreateNewSearchIndexRepository(config *config.Config) SearchIndexOfferRepository {
	return &SearchIndexOfferRepositoryImpl{config: config}
}

func (r *SearchIndexOfferRepositoryImpl) IndexOffer(ctx context.Context, data dto.OfferResponse) (err error) {
	requestPayload, err := json.Marshal(data)
	if err != nil {
		return
	}

	statusCode, responseBody, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		Body:   requestPayload,
		URL:    r.config.SearchConfig.DBHost + "/offers/_doc/" + data.ID,
		Method: http.MethodPut,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "IndexOffer").Msg("")
		return
	}

	if statusCode != http.StatusCreated && statusCode != http.StatusOK {
		return errs.ErrInternalServer
	}

	var ack pkgdto.ElasticsearchIndexAck
	if err = json.Unmarshal(responseBody, &ack); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "IndexOffer").Msg("")
		return
	}

	if ack.Shards.Failed != 0 {
		return errs.ErrInternalServer
	}

	return
}
