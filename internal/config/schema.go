package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema of Config.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag: "mapstructure",
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/tuikit/config.schema.json"
	schema.Title = "tuikit Configuration"
	schema.Description = "Configuration schema for tuikit terminal widgets"
	return schema
}

// SchemaJSON returns the indented JSON encoding of Schema.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes the schema next to the config file.
// This is called automatically when a default config is created.
func GenerateSchemaFile() error {
	schemaFile, err := GetSchemaFile()
	if err != nil {
		return fmt.Errorf("failed to get schema path: %w", err)
	}

	data, err := SchemaJSON()
	if err != nil {
		return err
	}

	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
