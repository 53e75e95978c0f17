package mediahost

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"github.com/vintiq/offer-service/config"
	"github.com/vintiq/offer-service/internal/domain"
	"github.com/vintiq/offer-service/pkg/errs"
)

const defaultBaseURL = "https://api.cloudinary.com"

// Client uploads encoded images to a Cloudinary-style media host and hands
// back the provider's durable reference.
type Client struct {
	baseURL    string
	cloudName  string
	apiKey     string
	apiSecret  string
	timeout    time.Duration
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

func CreateMediaHostClient(config *config.Config) *Client {
	baseURL := config.MediaHostConfig.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := config.MediaHostConfig.UploadTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var st gobreaker.Settings
	st.Name = "media-host-upload"
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return &Client{
		baseURL:    baseURL,
		cloudName:  config.MediaHostConfig.CloudName,
		apiKey:     config.MediaHostConfig.APIKey,
		apiSecret:  config.MediaHostConfig.APISecret,
		timeout:    timeout,
		httpClient: &http.Client{},
		breaker:    gobreaker.NewCircuitBreaker[[]byte](st),
	}
}

// EncodeDataURI wraps raw file bytes into the self-describing
// data:<mimeType>;base64,<payload> form the upload endpoint accepts.
func EncodeDataURI(fileBytes []byte, mimeType string) (string, error) {
	if len(fileBytes) == 0 || !strings.HasPrefix(mimeType, "image/") {
		return "", errs.ErrNotAnImage
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(fileBytes)), nil
}

func (c *Client) Upload(ctx context.Context, fileBytes []byte, mimeType string) (domain.ImageReference, error) {
	var imageRef domain.ImageReference

	payload, err := EncodeDataURI(fileBytes, mimeType)
	if err != nil {
		return imageRef, err
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	form := url.Values{}
	form.Set("file", payload)
	form.Set("api_key", c.apiKey)
	form.Set("timestamp", timestamp)
	form.Set("signature", c.sign(timestamp))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	responseBody, err := c.breaker.Execute(func() ([]byte, error) {
		return c.postForm(ctx, fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cloudName), form)
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return imageRef, errs.ErrUploadFailed
	}

	if err := json.Unmarshal(responseBody, &imageRef); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return imageRef, errs.ErrUploadFailed
	}

	return imageRef, nil
}

func (c *Client) postForm(ctx context.Context, uploadURL string, form url.Values) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media host responded with status %d", response.StatusCode)
	}

	return body, nil
}

func (c *Client) sign(timestamp string) string {
	digest := sha1.Sum([]byte("timestamp=" + timestamp + c.apiSecret))
	return hex.EncodeToString(digest[:])
}
