package domain

import "io"

type ServiceCategory string

const (
	CategoryAmenity    ServiceCategory = "amenidad"
	CategoryTransport  ServiceCategory = "transporte"
	CategoryExperience ServiceCategory = "experiencia"
)

// Service is an add-on from the catalog (transport, experiences, amenities).
type Service struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion,omitempty"`
	Price       Money           `json:"precio"`
	Category    ServiceCategory `json:"categoria"`
	Active      Flag            `json:"activo"`
	ImageURL    string          `json:"imagen_url,omitempty"`
}

type ServiceInput struct {
	Name        string          `validate:"required"`
	Description string
	Price       float64         `validate:"gte=0"`
	Category    ServiceCategory `validate:"required,oneof=amenidad transporte experiencia"`
	Active      bool
	Image       *Upload
}

// Upload is a file received from the browser and forwarded upstream.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Document struct {
	ContentType string
	Body        []byte
}
