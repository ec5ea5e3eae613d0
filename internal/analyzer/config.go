package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// severityConfigFile is the HCL form of the override file:
//
//	severity "AWS::Foo::Bar" {
//	  level = "HIGH"
//	}
type severityConfigFile struct {
	Severities []severityBlock `hcl:"severity,block"`
}

type severityBlock struct {
	ResourceType string `hcl:"resource_type,label"`
	Level        string `hcl:"level"`
}

// LoadOverrides reads per-resource-type severity overrides from a config file.
// YAML files hold a flat resource-type to severity-name map; HCL files hold
// severity blocks. The extension decides the format.
func LoadOverrides(path string) (map[string]Severity, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAMLOverrides(path)
	case ".hcl":
		return loadHCLOverrides(path)
	default:
		return nil, fmt.Errorf("unsupported severity config format %q (expected .yaml, .yml or .hcl)", filepath.Ext(path))
	}
}

func loadYAMLOverrides(path string) (map[string]Severity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read severity config %s: %w", path, err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse severity config %s: %w", path, err)
	}

	overrides := make(map[string]Severity, len(raw))
	for resourceType, level := range raw {
		severity, err := ParseSeverity(level)
		if err != nil {
			return nil, fmt.Errorf("severity config %s: resource type %s: %w", path, resourceType, err)
		}
		overrides[resourceType] = severity
	}

	return overrides, nil
}

func loadHCLOverrides(path string) (map[string]Severity, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse severity config %s: %s", path, diags.Error())
	}
	if file == nil || file.Body == nil {
		return nil, fmt.Errorf("parsed severity config is empty or invalid: %s", path)
	}

	var cfg severityConfigFile
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode severity config %s: %s", path, diags.Error())
	}

	overrides := make(map[string]Severity, len(cfg.Severities))
	for _, block := range cfg.Severities {
		severity, err := ParseSeverity(block.Level)
		if err != nil {
			return nil, fmt.Errorf("severity config %s: resource type %s: %w", path, block.ResourceType, err)
		}
		overrides[block.ResourceType] = severity
	}

	return overrides, nil
}
