package controller

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/vintiq/offer-service/internal/dto"
	"github.com/vintiq/offer-service/internal/service"
	pkgdto "github.com/vintiq/offer-service/pkg/dto"
	"github.com/vintiq/offer-service/pkg/errs"
	"github.com/vintiq/offer-service/pkg/utils"
)

const (
	welcomeMessage  = "Welcome to the Vintiq marketplace server!"
	notFoundMessage = "This route does not exist"
)

type Controller struct {
	service service.OfferService
}

func CreateOfferController(e *echo.Echo, service service.OfferService, isLoggedIn echo.MiddlewareFunc) {
	c := Controller{
		service: service,
	}
	e.GET("/", c.Welcome)
	e.POST("/offer/publish", c.PublishOffer, isLoggedIn)
	e.GET("/offers/all", c.SearchOffers)
	e.GET("/offers", c.GetOfferSummaries)
	e.Any("/*", c.NotFound)
}

func (c *Controller) Welcome(e echo.Context) error {
	return pkgdto.WriteSuccessResponse(e, welcomeMessage)
}

func (c *Controller) NotFound(e echo.Context) error {
	return pkgdto.WriteNotFoundResponse(e, notFoundMessage)
}

func (c *Controller) PublishOffer(e echo.Context) error {
	payload := dto.PublishOfferRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "PublishOffer").Msg("")
	}

	ownerID, _ := utils.ExtractTokenOwner(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn)
	}

	file, err := readUploadedFile(e, "picture")
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	offer, err := c.service.PublishOffer(e.Request().Context(), payload, ownerID, file)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return pkgdto.WriteCreatedResponse(e, offer)
}

func (c *Controller) SearchOffers(e echo.Context) error {
	filter := pkgdto.OfferFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "SearchOffers").Msg("")
	}

	data, err := c.service.SearchOffers(e.Request().Context(), filter)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return pkgdto.WriteSuccessResponse(e, data)
}

func (c *Controller) GetOfferSummaries(e echo.Context) error {
	data, err := c.service.GetOfferSummaries(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return pkgdto.WriteSuccessResponse(e, data)
}

// readUploadedFile pulls the optional picture attachment out of the
// multipart form. A missing file part is not an error, the offer is simply
// published without an image. Any other form failure (a truncated or
// malformed body) rejects the request instead of silently dropping the image.
func readUploadedFile(e echo.Context, field string) (*dto.UploadedFile, error) {
	fileHeader, err := e.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, nil
		}

		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "readUploadedFile").Msg("")
		return nil, errs.ErrValidation
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "readUploadedFile").Msg("")
		return nil, errs.ErrValidation
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "readUploadedFile").Msg("")
		return nil, errs.ErrValidation
	}

	return &dto.UploadedFile{
		Data:     fileBytes,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}, nil
}
