// Package schema validates outbound event payloads against their JSON
// Schemas before they are published.
package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed extracted.schema.json
var extractedSchemaJSON string

//go:embed exported.schema.json
var exportedSchemaJSON string

// Validator checks event payloads against the schema registered for their
// event type. Unknown event types pass through unvalidated.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// New compiles the embedded schemas. The schemas ship with the binary, so
// a compilation failure is a build defect and panics.
func New() *Validator {
	v := &Validator{schemas: make(map[string]*jsonschema.Schema)}
	v.schemas["extracted"] = mustCompile("extracted.schema.json", extractedSchemaJSON)
	v.schemas["exported"] = mustCompile("exported.schema.json", exportedSchemaJSON)
	return v
}

func mustCompile(name, source string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(source))
	if err != nil {
		panic(fmt.Sprintf("schema: bad embedded schema %s: %v", name, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("schema: add resource %s: %v", name, err))
	}
	sch, err := c.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("schema: compile %s: %v", name, err))
	}
	return sch
}

// Validate checks a marshaled event payload against the schema for its
// event type. Returns nil for event types with no registered schema.
func (v *Validator) Validate(eventType string, payload []byte) error {
	sch, ok := v.schemas[eventType]
	if !ok {
		return nil
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("schema: decode payload: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
