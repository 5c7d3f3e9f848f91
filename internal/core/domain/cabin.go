package domain

import (
	"github.com/gosimple/slug"
)

type CabinStatus string

const (
	CabinAvailable   CabinStatus = "disponible"
	CabinOccupied    CabinStatus = "ocupado"
	CabinMaintenance CabinStatus = "mantenimiento"
)

func (s CabinStatus) Valid() bool {
	switch s {
	case CabinAvailable, CabinOccupied, CabinMaintenance:
		return true
	}

	return false
}

type Cabin struct {
	ID          int64        `json:"id"`
	Name        string       `json:"nombre"`
	Description string       `json:"descripcion,omitempty"`
	Capacity    int          `json:"capacidad"`
	NightlyRate Money        `json:"precio_noche"`
	Status      CabinStatus  `json:"estado"`
	ImageURL    string       `json:"imagen_url,omitempty"`
	Images      []CabinImage `json:"imagenes,omitempty"`
	RateFrom    *Money       `json:"precio_desde,omitempty"`
}

type CabinImage struct {
	ID      int64  `json:"id"`
	CabinID int64  `json:"cabana_id,omitempty"`
	URL     string `json:"url"`
	Cover   Flag   `json:"es_portada"`
}

func (c *Cabin) Slug() string {
	return slug.Make(c.Name)
}

// GuestOptions lists the values offered by the guest-count selector, 1 to
// capacity. A cabin without capacity offers nothing.
func (c *Cabin) GuestOptions() []int {
	opts := make([]int, 0, max(c.Capacity, 0))
	for i := 1; i <= c.Capacity; i++ {
		opts = append(opts, i)
	}

	return opts
}

// CoverURL prefers the image flagged as cover, then the legacy single image.
func (c *Cabin) CoverURL() string {
	for _, img := range c.Images {
		if img.Cover {
			return img.URL
		}
	}

	if c.ImageURL != "" {
		return c.ImageURL
	}

	if len(c.Images) > 0 {
		return c.Images[0].URL
	}

	return ""
}

type CabinInput struct {
	Name        string      `json:"nombre" validate:"required"`
	Description string      `json:"descripcion"`
	Capacity    int         `json:"capacidad" validate:"gt=0"`
	NightlyRate float64     `json:"precio_noche" validate:"gte=0"`
	Status      CabinStatus `json:"estado" validate:"omitempty,oneof=disponible ocupado mantenimiento"`
	ImageURL    string      `json:"imagen_url,omitempty" validate:"omitempty,url"`
}
