package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := filepath.Join("testdata", "valid_schema.json")
	jsonPath := filepath.Join("testdata", "valid_json.json")

	err := ValidateJSON(schemaPath, jsonPath)
	assert.NoError(t, err)
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	schemaPath := filepath.Join("testdata", "valid_schema.json")
	jsonPath := filepath.Join("testdata", "invalid_json.json")

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateJSON_InvalidJSON_WrongType(t *testing.T) {
	schemaPath := filepath.Join("testdata", "valid_schema.json")
	jsonPath := filepath.Join("testdata", "type_mismatch.json")

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "score", validationErr.Errors[0].Field)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	err := ValidateJSON("testdata/nonexistent_schema.json", filepath.Join("testdata", "valid_json.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	err := ValidateJSON(filepath.Join("testdata", "valid_schema.json"), "testdata/nonexistent_json.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	tmpDir := t.TempDir()
	malformedJSON := filepath.Join(tmpDir, "malformed.json")
	require.NoError(t, os.WriteFile(malformedJSON, []byte("{ invalid json }"), 0644))

	err := ValidateJSON(filepath.Join("testdata", "valid_schema.json"), malformedJSON)
	require.Error(t, err)
}

func TestValidateJSON_BrokenSchema(t *testing.T) {
	err := ValidateJSON(filepath.Join("testdata", "broken_schema.json"), filepath.Join("testdata", "valid_json.json"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`

	err := ValidateJSONString(schemaContent, `{"name": "test"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`

	err := ValidateJSONString(schemaContent, `{"age": 30}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSONString_NestedField(t *testing.T) {
	schemaContent := `{
		"type": "object",
		"properties": {
			"stats": {
				"type": "object",
				"properties": {
					"wordCount": {"type": "integer", "minimum": 0}
				}
			}
		}
	}`

	err := ValidateJSONString(schemaContent, `{"stats": {"wordCount": -1}}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "stats.wordCount", validationErr.Errors[0].Field)
}

func TestValidateValue(t *testing.T) {
	schemaPath := filepath.Join("testdata", "valid_schema.json")

	type result struct {
		Score int    `json:"score"`
		Grade string `json:"grade"`
	}

	assert.NoError(t, ValidateValue(schemaPath, result{Score: 70, Grade: "Good"}))

	err := ValidateValue(schemaPath, result{Score: 170, Grade: "Good"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "score", validationErr.Errors[0].Field)

	err = ValidateValue("testdata/missing.json", result{})
	assert.ErrorContains(t, err, "not found")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "score", Message: "is required"},
			{Field: "grade", Message: "must be a string"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. score: is required")
	assert.Contains(t, errorMsg, "2. grade: must be a string")
}

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath(ScoreReportSchema)
	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))

	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidateValue_CachesCompiledSchema(t *testing.T) {
	schemaPath := filepath.Join("testdata", "valid_schema.json")
	abs, err := filepath.Abs(schemaPath)
	require.NoError(t, err)

	require.NoError(t, ValidateValue(schemaPath, map[string]any{"score": 50, "grade": "Fair"}))

	compiled.Lock()
	first, ok := compiled.byPath[abs]
	compiled.Unlock()
	require.True(t, ok)

	require.NoError(t, ValidateValue(schemaPath, map[string]any{"score": 90, "grade": "Excellent"}))

	compiled.Lock()
	defer compiled.Unlock()
	assert.Same(t, first, compiled.byPath[abs])
}
