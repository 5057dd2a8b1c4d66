package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/invopop/jsonschema"
)

const schemaBaseURL = "https://github.com/bnema/docklayout/"

// SchemaFor reflects a JSON schema for v. The top-level struct is inlined;
// nested types such as the recursive layout node go to $defs.
func SchemaFor(v any, id, title, description string) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := r.Reflect(v)
	schema.ID = jsonschema.ID(schemaBaseURL + id)
	schema.Title = title
	schema.Description = description
	return schema
}

// MarshalSchema renders a schema as indented JSON.
func MarshalSchema(schema *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// GenerateSchemaFile writes the schema next to the config file as name.
// It is called when a default config is created.
func GenerateSchemaFile(schema *jsonschema.Schema, name string) (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	data, err := MarshalSchema(schema)
	if err != nil {
		return "", err
	}

	path := filepath.Join(configDir, name)
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}

// LayoutSchema describes the layout file format.
func LayoutSchema() *jsonschema.Schema {
	return SchemaFor(&entity.LayoutRecord{}, "layout.schema.json",
		"docklayout layout",
		"A versioned binary-split panel layout")
}
