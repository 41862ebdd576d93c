package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ImageConnectorSettings configures the object storage holding product images
type ImageConnectorSettings struct {
	CloudProvider    string `mapstructure:"cloud_provider" validate:"required,oneof=azure local"`
	ConnectionString string `mapstructure:"connection_string" validate:"required_if=CloudProvider azure"`
	ContainerName    string `mapstructure:"container_name" validate:"required"`
	PublicBaseURL    string `mapstructure:"public_base_url" validate:"omitempty,url"`
}

// Validate checks that all fields in ImageConnectorSettings are valid
func (s *ImageConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ImageConnectorSettings: %w", err)
	}
	return nil
}
