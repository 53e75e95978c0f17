package dto

type OfferFilter struct {
	Title    string `query:"title"`
	PriceMin string `query:"priceMin"`
	PriceMax string `query:"priceMax"`
	Sort     string `query:"sort"`
	Page     string `query:"page"`
	Limit    string `query:"limit"`
}
