package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Detail keys written by the publish path, in display order.
const (
	DetailKeyBrand     = "BRAND"
	DetailKeySize      = "SIZE"
	DetailKeyCondition = "CONDITION"
	DetailKeyColor     = "COLOR"
	DetailKeyCity      = "CITY"
)

type Offer struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExternalID         string             `bson:"external_id" json:"external_id"`
	ProductName        string             `bson:"product_name" json:"product_name"`
	ProductDescription string             `bson:"product_description" json:"product_description"`
	ProductPrice       float64            `bson:"product_price" json:"product_price"`
	ProductDetails     []OfferDetail      `bson:"product_details" json:"product_details"`
	ProductImage       *ImageReference    `bson:"product_image,omitempty" json:"product_image,omitempty"`
	Owner              primitive.ObjectID `bson:"owner,omitempty" json:"owner,omitempty"`
}

// OfferDetail is a single attribute record. Details are kept as an ordered
// sequence of one-pair records, not a map, so attribute order survives
// round-trips to the store and back out in responses.
type OfferDetail struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}

// ImageReference points at the hosted copy of an uploaded picture. The
// service never stores image bytes, only the provider's reference.
type ImageReference struct {
	SecureURL    string `bson:"secure_url" json:"secure_url"`
	PublicID     string `bson:"public_id" json:"public_id"`
	ResourceType string `bson:"resource_type" json:"resource_type"`
	Bytes        int64  `bson:"bytes" json:"bytes"`
}

// OwnerProfile is the public slice of the identity an offer belongs to,
// resolved when the owner reference is populated on reads.
type OwnerProfile struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Account string             `bson:"account" json:"account"`
	Avatar  string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
}
