package dto

// UpdateHeaderRequest changes the site header color.
type UpdateHeaderRequest struct {
	HeaderColor string `json:"header_color" validate:"required,hexcolor"`
}

// VideoUpload is a site video received over multipart.
type VideoUpload struct {
	Key         string
	Filename    string
	ContentType string
	Data        []byte
}
