package skill

import "github.com/valpere/textskill/internal/transform"

// Name is the skill name the host registers this binary under.
const Name = "text_transform"

// TestArgs is the sample payload the host uses for a smoke run.
const TestArgs = `{"text":"hello world","transform":"uppercase"}`

// ManifestVersion is the manifest format version the host understands.
const ManifestVersion = "1"

// ManifestInfo describes the skill to the host. Parameters and Version are
// required by the host's manifest loader; the rest is informational.
type ManifestInfo struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Parameters   Schema   `json:"parameters"`
	Version      string   `json:"version"`
	BuildVersion string   `json:"build_version,omitempty"`
	Language     string   `json:"language"`
	TestArgs     string   `json:"test_args"`
	Transforms   []string `json:"transforms"`
}

// Schema is the subset of JSON Schema used to describe the skill's input.
type Schema struct {
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Properties  map[string]Schema `json:"properties,omitempty"`
	Required    []string          `json:"required,omitempty"`
	Enum        []string          `json:"enum,omitempty"`
}

// Manifest returns the manifest for the given build version.
func Manifest(buildVersion string) ManifestInfo {
	return ManifestInfo{
		Name:         Name,
		Description:  "Transform text: uppercase, lowercase, reverse, title case",
		Parameters:   parameters(),
		Version:      ManifestVersion,
		BuildVersion: buildVersion,
		Language:     "go",
		TestArgs:     TestArgs,
		Transforms:   transform.Names(),
	}
}

func parameters() Schema {
	return Schema{
		Type: "object",
		Properties: map[string]Schema{
			"text": {
				Type:        "string",
				Description: "Text to transform",
			},
			"transform": {
				Type:        "string",
				Description: "Transform to apply (case-insensitive)",
				Enum:        transform.Names(),
			},
		},
		Required: []string{"text", "transform"},
	}
}
