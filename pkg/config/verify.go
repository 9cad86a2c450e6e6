package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the config against required fields of the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema struct {
		Ref   string                     `json:"$ref"`
		Defs  map[string]json.RawMessage `json:"$defs"`
		Title string                     `json:"title"`
	}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}
	if _, ok := schema.Defs["Config"]; !ok {
		return fmt.Errorf("embedded schema has no Config definition")
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if cfg.Catalog.Token != "" {
		if cfg.Catalog.Endpoint == "" {
			return fmt.Errorf("catalog.endpoint is required when catalog.token is set")
		}
		if cfg.Catalog.Pages < 1 {
			return fmt.Errorf("catalog.pages must be positive")
		}
		if cfg.Catalog.RateLimit <= 0 {
			return fmt.Errorf("catalog.rate_limit must be positive")
		}
	}

	if cfg.LLM.Enabled && cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required when llm is enabled")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{FieldNameTag: "yaml"}
	return r.Reflect(&Config{})
}
