package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

// Schema returns the resume JSON schema, used both for validation and for
// embedding in generation prompts.
func Schema() string {
	return string(resumeSchema)
}

// ValidateMap validates a generic map against the resume schema.
func ValidateMap(m map[string]interface{}) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchema)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// ValidateResume validates a typed resume against the same schema.
func ValidateResume(r Resume) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	return ValidateMap(m)
}
