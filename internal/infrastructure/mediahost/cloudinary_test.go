package mediahost

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vintiq/offer-service/config"
	"github.com/vintiq/offer-service/pkg/errs"
)

func newTestClient(baseURL string) *Client {
	conf := config.Config{}
	conf.MediaHostConfig.BaseURL = baseURL
	conf.MediaHostConfig.CloudName = "test-cloud"
	conf.MediaHostConfig.APIKey = "key"
	conf.MediaHostConfig.APISecret = "secret"

	return CreateMediaHostClient(&conf)
}

func TestEncodeDataURI(t *testing.T) {
	payload, err := EncodeDataURI([]byte("picture bytes"), "image/png")

	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("picture bytes")), payload)
}

func TestEncodeDataURI_RejectsNonImages(t *testing.T) {
	_, err := EncodeDataURI([]byte("not a picture"), "application/pdf")
	assert.ErrorIs(t, err, errs.ErrNotAnImage)

	_, err = EncodeDataURI(nil, "image/png")
	assert.ErrorIs(t, err, errs.ErrNotAnImage)
}

func TestUpload(t *testing.T) {
	var receivedPath string
	var receivedForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		receivedForm = map[string]string{
			"file":      r.PostFormValue("file"),
			"api_key":   r.PostFormValue("api_key"),
			"timestamp": r.PostFormValue("timestamp"),
			"signature": r.PostFormValue("signature"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://media.example/v1/pic.jpg","public_id":"pic-1","resource_type":"image","bytes":16}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	imageRef, err := client.Upload(context.Background(), []byte("fake image bytes"), "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "https://media.example/v1/pic.jpg", imageRef.SecureURL)
	assert.Equal(t, "pic-1", imageRef.PublicID)
	assert.Equal(t, "image", imageRef.ResourceType)
	assert.Equal(t, int64(16), imageRef.Bytes)

	assert.Equal(t, "/v1_1/test-cloud/image/upload", receivedPath)
	assert.True(t, strings.HasPrefix(receivedForm["file"], "data:image/jpeg;base64,"))
	assert.Equal(t, "key", receivedForm["api_key"])
	assert.NotEmpty(t, receivedForm["timestamp"])
	assert.Equal(t, client.sign(receivedForm["timestamp"]), receivedForm["signature"])
}

func TestUpload_ProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Upload(context.Background(), []byte("fake image bytes"), "image/jpeg")

	assert.ErrorIs(t, err, errs.ErrUploadFailed)
}

func TestUpload_UnreachableHost(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")

	_, err := client.Upload(context.Background(), []byte("fake image bytes"), "image/jpeg")

	assert.ErrorIs(t, err, errs.ErrUploadFailed)
}

func TestUpload_MalformedInputDoesNotHitTheHost(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Upload(context.Background(), nil, "image/jpeg")

	assert.ErrorIs(t, err, errs.ErrNotAnImage)
	assert.Zero(t, requests)
}
