package version

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-launcher/models"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by [Format].
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Outputs lists every format accepted by [Format].
var Outputs = []string{OutputText, OutputJSON, OutputYAML}

// Format renders info for the -version command line output.
func Format(info *models.VersionInfo, output string) (string, error) {
	switch output {
	case OutputText, "":
		return info.String(), nil
	case OutputJSON:
		data, err := json.MarshalIndent(info.Snapshot(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("error encoding version info as json: %w", err)
		}
		return string(data), nil
	case OutputYAML:
		data, err := yaml.Marshal(info.Snapshot())
		if err != nil {
			return "", fmt.Errorf("error encoding version info as yaml: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}
}
