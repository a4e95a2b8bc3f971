package hostconfig

import (
	"encoding/json"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cardrender/pkg/errors"
)

// Marshal encodes a host config in the given format
func Marshal(cfg *HostConfig, format Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(cfg, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatYAML:
		out, err = yaml.Marshal(cfg)
	case FormatTOML:
		out, err = gotoml.Marshal(cfg)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported host config format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to encode host config as %s", format)
	}
	return out, nil
}

// DefaultsContent returns the embedded defaults document
func DefaultsContent() string {
	return string(defaultConfig)
}

// GenerateCommented returns the embedded defaults with every assignment
// commented out, ready to be saved as a starting host config
func GenerateCommented() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues comments out all non-comment, non-blank lines
// that contain configuration values
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Section headers stay so uncommenting a value keeps it in its table
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
