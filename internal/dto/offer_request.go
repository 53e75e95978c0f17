package dto

// UploadedFile carries the bytes and declared MIME type of a multipart
// file attachment.
type UploadedFile struct {
	Data     []byte
	MimeType string
}

type PublishOfferRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Condition   string `form:"condition"`
	City        string `form:"city"`
	Brand       string `form:"brand"`
	Size        string `form:"size"`
	Color       string `form:"color"`
}
