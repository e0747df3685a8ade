package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	schemaPath := filepath.Join("..", "..", "schemas", "ats_result.schema.json")
	jsonPath := writeFile(t, "result.json", `{"score": 41, "grade": "Needs Work", "factors": ["Add your phone number"]}`)

	output, err := exec.Command(binaryPath, "validate", "--schema", schemaPath, "--json", jsonPath).CombinedOutput()

	assert.NoError(t, err, "command should succeed")
	assert.Contains(t, string(output), "Validation passed")
}

func TestValidateCommand_Failure(t *testing.T) {
	binaryPath := getBinaryPath(t)

	schemaPath := filepath.Join("..", "..", "schemas", "ats_result.schema.json")
	jsonPath := writeFile(t, "result.json", `{"score": 140, "grade": "Superb", "factors": []}`)

	output, err := exec.Command(binaryPath, "validate", "--schema", schemaPath, "--json", jsonPath).CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "Validation failed")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode())
	}
}

func TestValidateCommand_MissingSchemaFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "validate", "--json", "x.json").CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}
