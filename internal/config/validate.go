package config

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/settings.schema.json
var schemaFS embed.FS

var (
	schemaOnce     sync.Once
	settingsSchema *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := schemaFS.ReadFile("schemas/settings.schema.json")
		if err != nil {
			schemaErr = fmt.Errorf("failed to read settings schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("settings.schema.json", bytes.NewReader(raw)); err != nil {
			schemaErr = fmt.Errorf("failed to load settings schema: %w", err)
			return
		}
		settingsSchema, schemaErr = compiler.Compile("settings.schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile settings schema: %w", schemaErr)
		}
	})
	return settingsSchema, schemaErr
}

// ValidateDocument checks a YAML (or JSON) settings document against the
// settings schema. An empty document is valid.
func ValidateDocument(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if doc == nil {
		return nil
	}

	// Round-trip through JSON so the validator sees JSON-native types.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	var normalized any
	if err := json.Unmarshal(b, &normalized); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}
