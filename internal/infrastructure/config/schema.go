package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema renders a JSON schema describing the config file, for
// editor completion and for documenting the available settings.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/sinkhole/sinkhole.schema.json"
	schema.Title = "Sinkhole API Configuration"
	schema.Description = "Configuration schema for the sinkhole DNS ad-blocking appliance API"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
