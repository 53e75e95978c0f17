package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vintiq/offer-service/config"
	"github.com/vintiq/offer-service/internal/dto"
)

func TestIndexOffer(t *testing.T) {
	var receivedPath string
	var receivedBody dto.OfferResponse

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&receivedBody))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_index":"offers","_id":"abc","result":"created","_shards":{"total":1,"successful":1,"failed":0}}`))
	}))
	defer server.Close()

	conf := config.Config{}
	conf.SearchConfig.DBHost = server.URL
	repo := CreateNewSearchIndexRepository(&conf)

	err := repo.IndexOffer(context.Background(), dto.OfferResponse{
		ID:           "abc",
		ProductName:  "Shirt",
		ProductPrice: 25.5,
	})

	require.NoError(t, err)
	assert.Equal(t, "/offers/_doc/abc", receivedPath)
	assert.Equal(t, "Shirt", receivedBody.ProductName)
}

func TestIndexOffer_IndexFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	conf := config.Config{}
	conf.SearchConfig.DBHost = server.URL
	repo := CreateNewSearchIndexRepository(&conf)

	err := repo.IndexOffer(context.Background(), dto.OfferResponse{ID: "abc"})

	assert.Error(t, err)
}
