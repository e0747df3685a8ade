// Package schemas validates analysis reports and resume data against the JSON
// Schema documents kept under schemas/ at the repository root.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Schema files, relative to the repository root.
const (
	ScoreReportSchema = "schemas/score_report.schema.json"
	ATSResultSchema   = "schemas/ats_result.schema.json"
	ResumeDataSchema  = "schemas/resume_data.schema.json"
)

// compiled caches schemas loaded from disk, keyed by absolute path.
var compiled = struct {
	sync.Mutex
	byPath map[string]*gojsonschema.Schema
}{byPath: make(map[string]*gojsonschema.Schema)}

// ResolveSchemaPath looks for relativePath in the working directory and up to
// two parents, so commands and package tests find the same files. It returns
// an absolute path, or "" when nothing matches.
func ResolveSchemaPath(relativePath string) string {
	dir := relativePath
	for range 3 {
		if abs, err := filepath.Abs(dir); err == nil {
			if info, err := os.Stat(abs); err == nil && !info.IsDir() {
				return abs
			}
		}
		dir = filepath.Join("..", dir)
	}
	return ""
}

// ValidateJSON validates the JSON file at jsonPath against the schema file at schemaPath.
func ValidateJSON(schemaPath, jsonPath string) error {
	schema, err := load(schemaPath)
	if err != nil {
		return err
	}
	doc, err := existingFile("JSON", jsonPath)
	if err != nil {
		return err
	}
	return check(schemaPath, schema, gojsonschema.NewReferenceLoader("file://"+doc))
}

// ValidateJSONString validates jsonContent against schemaContent. Nothing is cached.
func ValidateJSONString(schemaContent, jsonContent string) error {
	const name = "(string schema)"
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	return check(name, schema, gojsonschema.NewStringLoader(jsonContent))
}

// ValidateValue validates v, as encoding/json would marshal it, against the
// schema file at schemaPath.
func ValidateValue(schemaPath string, v any) error {
	schema, err := load(schemaPath)
	if err != nil {
		return err
	}
	return check(schemaPath, schema, gojsonschema.NewGoLoader(v))
}

func load(schemaPath string) (*gojsonschema.Schema, error) {
	abs, err := existingFile("schema", schemaPath)
	if err != nil {
		return nil, err
	}

	compiled.Lock()
	defer compiled.Unlock()
	if schema, ok := compiled.byPath[abs]; ok {
		return schema, nil
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + abs))
	if err != nil {
		return nil, &SchemaLoadError{Path: abs, Message: "invalid schema", Cause: err}
	}
	compiled.byPath[abs] = schema
	return schema, nil
}

func existingFile(kind, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s path: %w", kind, err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return "", fmt.Errorf("%s file not found: %s", kind, abs)
	}
	return abs, nil
}

func check(name string, schema *gojsonschema.Schema, doc gojsonschema.JSONLoader) error {
	result, err := schema.Validate(doc)
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "document could not be read", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	out := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, FieldError{Field: desc.Field(), Message: desc.Description()})
	}
	return out
}
