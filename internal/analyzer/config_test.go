package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverrides_YAML(t *testing.T) {
	path := writeConfig(t, "severity.yaml", `
"AWS::SQS::Queue": CRITICAL
"AWS::Custom::Widget": high
`)

	overrides, err := LoadOverrides(path)

	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, overrides["AWS::SQS::Queue"])
	assert.Equal(t, SeverityHigh, overrides["AWS::Custom::Widget"])
}

func TestLoadOverrides_HCL(t *testing.T) {
	path := writeConfig(t, "severity.hcl", `
severity "AWS::SQS::Queue" {
  level = "CRITICAL"
}

severity "AWS::Custom::Widget" {
  level = "medium"
}
`)

	overrides, err := LoadOverrides(path)

	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, overrides["AWS::SQS::Queue"])
	assert.Equal(t, SeverityMedium, overrides["AWS::Custom::Widget"])
}

func TestLoadOverrides_UnknownSeverityName(t *testing.T) {
	path := writeConfig(t, "severity.yaml", `"AWS::SQS::Queue": fatal`)

	_, err := LoadOverrides(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity")
}

func TestLoadOverrides_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "severity.toml", `x = 1`)

	_, err := LoadOverrides(path)

	assert.Error(t, err)
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadOverrides_MalformedHCL(t *testing.T) {
	path := writeConfig(t, "severity.hcl", `severity "AWS::SQS::Queue" {`)

	_, err := LoadOverrides(path)

	assert.Error(t, err)
}
