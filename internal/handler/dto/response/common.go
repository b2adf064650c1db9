package response

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"

	"github.com/google/uuid"
)

type IDResponse struct {
	ID string `json:"id"`
}

func FromID(id uuid.UUID) *IDResponse {
	return &IDResponse{ID: id.String()}
}

// ConfigResponse is the public front-end configuration.
type ConfigResponse struct {
	ServiceURL string `json:"service_url"`
	PublicKey  string `json:"public_key"`
	SalonName  string `json:"salon_name"`
	TimeZone   string `json:"time_zone"`
}

func FromConfig(backend config.BackendConfig, salon config.SalonConfig) *ConfigResponse {
	resolved := backend.Resolved()
	return &ConfigResponse{
		ServiceURL: resolved.ServiceURL,
		PublicKey:  resolved.PublicKey,
		SalonName:  salon.Name,
		TimeZone:   salon.Location().String(),
	}
}
