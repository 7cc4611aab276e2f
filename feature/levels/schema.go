package levels

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// levelSchema accepts any JSON object as a level code.
const levelSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object"
}`

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("level.json", strings.NewReader(levelSchema)); err != nil {
		return nil, fmt.Errorf("failed to load level schema: %w", err)
	}
	return compiler.Compile("level.json")
}

// parseCode decodes code and checks it against the level schema.
func parseCode(schema *jsonschema.Schema, code string) (map[string]any, error) {
	var doc any
	if err := json.Unmarshal([]byte(code), &doc); err != nil {
		return nil, fmt.Errorf("%w: JSON format error: %v", ErrInvalidLevel, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: code must be a JSON object", ErrInvalidLevel)
	}
	obj, _ := doc.(map[string]any)
	return obj, nil
}
