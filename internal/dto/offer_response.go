package dto

import "github.com/vintiq/offer-service/internal/domain"

// OfferResponse is an offer with its owner reference resolved to the
// identity's public profile.
type OfferResponse struct {
	ID                 string                 `json:"id"`
	ExternalID         string                 `json:"external_id"`
	ProductName        string                 `json:"product_name"`
	ProductDescription string                 `json:"product_description"`
	ProductPrice       float64                `json:"product_price"`
	ProductDetails     []domain.OfferDetail   `json:"product_details"`
	ProductImage       *domain.ImageReference `json:"product_image,omitempty"`
	Owner              *domain.OwnerProfile   `json:"owner,omitempty"`
}

// OfferSummary is the name-and-price projection served by the legacy
// listing endpoint.
type OfferSummary struct {
	ProductName  string  `bson:"product_name" json:"product_name"`
	ProductPrice float64 `bson:"product_price" json:"product_price"`
}
