package farm

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed farm.schema.json
var schemaJSON string

var farmSchema = jsonschema.MustCompileString("farm.schema.json", schemaJSON)

// ValidateSchema checks raw config bytes (YAML) against the embedded JSON
// Schema. The document is round-tripped through encoding/json first so the
// validator sees JSON-native types rather than YAML ones. Violations wrap
// ErrConfig.
func ValidateSchema(b []byte) error {
	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("parse farm config: %w", err)
	}
	jb, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("normalize farm config: %w", err)
	}
	var doc any
	if err := json.Unmarshal(jb, &doc); err != nil {
		return fmt.Errorf("normalize farm config: %w", err)
	}
	if err := farmSchema.Validate(doc); err != nil {
		return fmt.Errorf("farm schema: %s: %w", err, ErrConfig)
	}
	return nil
}
