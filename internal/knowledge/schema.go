package knowledge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed content.schema.json
var contentSchemaJSON []byte

const contentSchemaURL = "schema://tutorly/content.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	var def any
	if err := json.Unmarshal(contentSchemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse content schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(contentSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(contentSchemaURL)
})

// validateContent checks raw subject JSON against the content schema.
func validateContent(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile content schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
