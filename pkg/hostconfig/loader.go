package hostconfig

import (
	_ "embed"
	stderrors "errors"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables that override host config keys
const EnvPrefix = "CARDRENDER_"

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Format is the syntax of a host config document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts json, yaml, yml or toml
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unsupported host config format %q", s)
}

// FormatFromPath derives the format from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

func (f Format) parser() koanf.Parser {
	switch f {
	case FormatJSON:
		return json.Parser()
	case FormatYAML:
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// LoadOptions selects the layers stacked on top of the built-in defaults
type LoadOptions struct {
	// Path is an optional host config file. Its format follows the extension.
	Path string
	// Overrides are dotted keys such as "actions.maxActions", applied after the file
	Overrides map[string]any
	// Env enables CARDRENDER_* environment variables, applied last
	Env bool
}

// Load builds a host config from defaults, file, overrides and environment,
// in that order. Keys are matched case-insensitively against the defaults.
func Load(opts LoadOptions) (*HostConfig, error) {
	logger := logging.GetLogger("hostconfig")
	defer logging.LogOperationStart(logger, "Load")()

	k, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if opts.Path != "" {
		format, err := FormatFromPath(opts.Path)
		if err != nil {
			return nil, err
		}
		if err := mergeCanonical(k, file.Provider(opts.Path), format.parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load host config from %s", opts.Path).
				WithDetail("path", opts.Path)
		}
		logger.Debug().Str("path", opts.Path).Msg("Loaded host config file")
	}

	if len(opts.Overrides) > 0 {
		if err := mergeCanonical(k, confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply host config overrides")
		}
	}

	if opts.Env {
		if err := loadEnv(k); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	return decode(k)
}

// Parse decodes a host config document layered over the defaults
func Parse(data []byte, format Format) (*HostConfig, error) {
	k, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	if err := mergeCanonical(k, &rawBytesProvider{bytes: data}, format.parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s host config", format)
	}
	return decode(k)
}

// ParseResult pairs a host config with the problems found while reading it
type ParseResult struct {
	HostConfig *HostConfig
	Errors     []error
}

// FromJSON parses a JSON host config. Syntax and type errors leave
// HostConfig nil; validation problems are reported alongside a usable config.
func FromJSON(data []byte) ParseResult {
	cfg, err := Parse(data, FormatJSON)
	if err != nil {
		return ParseResult{Errors: []error{err}}
	}
	return ParseResult{HostConfig: cfg, Errors: cfg.Validate()}
}

var (
	defaultOnce sync.Once
	defaultHC   *HostConfig
	defaultErr  error
)

// Default returns a fresh copy of the built-in host config
func Default() *HostConfig {
	defaultOnce.Do(func() {
		var k *koanf.Koanf
		k, defaultErr = loadDefaults()
		if defaultErr == nil {
			defaultHC, defaultErr = decode(k)
		}
	})
	if defaultErr != nil {
		panic("embedded host config defaults are invalid: " + defaultErr.Error())
	}
	return defaultHC.Clone()
}

// DefaultPath returns the first host config file found under
// $XDG_CONFIG_HOME/cardrender or the XDG config dirs
func DefaultPath() (string, bool) {
	for _, name := range []string{"hostconfig.json", "hostconfig.yaml", "hostconfig.yml", "hostconfig.toml"} {
		if path, err := xdg.SearchConfigFile(filepath.Join("cardrender", name)); err == nil {
			return path, true
		}
	}
	return "", false
}

func loadDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	return k, nil
}

// mergeCanonical loads a layer into a scratch instance, rewrites its keys
// to the spelling used by the defaults and merges it into k
func mergeCanonical(k *koanf.Koanf, p koanf.Provider, parser koanf.Parser) error {
	tmp := koanf.New(".")
	if err := tmp.Load(p, parser); err != nil {
		return err
	}

	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ToLower(key)] = key
	}

	logger := logging.GetLogger("hostconfig")
	flat := make(map[string]interface{})
	for key, v := range tmp.All() {
		canonical, ok := known[strings.ToLower(key)]
		if !ok {
			logger.Debug().Str("key", key).Msg("Unknown host config key")
			canonical = key
		}
		flat[canonical] = v
	}
	return k.Load(confmap.Provider(flat, "."), nil)
}

func loadEnv(k *koanf.Koanf) error {
	byEnvName := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		byEnvName[strings.ToLower(strings.ReplaceAll(key, ".", "_"))] = key
	}
	return k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return byEnvName[strings.ToLower(strings.TrimPrefix(s, EnvPrefix))]
	}), nil)
}

func decode(k *koanf.Koanf) (*HostConfig, error) {
	var cfg HostConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode host config")
	}
	return &cfg, nil
}
