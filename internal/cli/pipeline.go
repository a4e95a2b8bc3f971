package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/features"
	"github.com/arthur-debert/cardrender/pkg/hostconfig"
	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/render"
)

// stdinName is the card argument that reads from stdin
const stdinName = "-"

// cardResult is one rendered card of a multi-card run
type cardResult struct {
	Name string
	Card *render.RenderedCard
	Err  error
}

// hostConfigPath returns --config or the XDG default, if any
func (o *globalOptions) hostConfigPath() string {
	if o.configPath != "" {
		return o.configPath
	}
	if path, ok := hostconfig.DefaultPath(); ok {
		return path
	}
	return ""
}

// loadHostConfig stacks defaults, the config file, --set and the environment
func (o *globalOptions) loadHostConfig() (*hostconfig.HostConfig, error) {
	overrides, err := parseSets(o.sets)
	if err != nil {
		return nil, err
	}
	hc, err := hostconfig.Load(hostconfig.LoadOptions{
		Path:      o.hostConfigPath(),
		Overrides: overrides,
		Env:       !o.noEnv,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadHostConfig, err)
	}
	logger := logging.GetLogger("cli")
	for _, problem := range hc.Validate() {
		logger.Warn().Err(problem).Msg("Host config problem")
	}
	return hc, nil
}

// parseSets turns key=value flags into koanf overrides. Values are read
// as YAML scalars so numbers and booleans keep their type.
func parseSets(sets []string) (map[string]any, error) {
	overrides := make(map[string]any, len(sets))
	for _, set := range sets {
		key, raw, ok := strings.Cut(set, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrInvalidSet, set)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
			value = raw
		}
		overrides[key] = value
	}
	return overrides, nil
}

// newPipeline builds a render pipeline for hc with the declared features
func (o *globalOptions) newPipeline(hc *hostconfig.HostConfig, extra ...render.Option) (*render.Renderer, error) {
	reg := features.NewDefault()
	for _, f := range o.features {
		name, ver, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrInvalidFeature, f)
		}
		if err := reg.Add(name, ver); err != nil {
			return nil, err
		}
	}
	opts := append([]render.Option{render.WithHostConfig(hc), render.WithFeatures(reg)}, extra...)
	return render.New(opts...), nil
}

// readCard reads a card file, or stdin for "-"
func readCard(name string, stdin io.Reader) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf(MsgErrReadCard, "stdin", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf(MsgErrReadCard, name, err)
	}
	return data, nil
}

// renderData renders a card, choosing YAML by extension or content
func renderData(r *render.Renderer, name string, data []byte) (*render.RenderedCard, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return r.RenderYAML(data)
	case ".json":
		return r.RenderJSON(data)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return r.RenderJSON(data)
	}
	return r.RenderYAML(data)
}

// renderAll renders every card concurrently. Results keep argument order;
// per-card failures are kept in the result rather than stopping the rest.
func renderAll(ctx context.Context, r *render.Renderer, names []string, stdin io.Reader) []cardResult {
	logger := logging.GetLogger("cli.render")
	results := make([]cardResult, len(names))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		results[i].Name = name
		g.Go(func() error {
			data, err := readCard(name, stdin)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Card, results[i].Err = renderData(r, name, data)
			logger.Debug().Str("card", name).Err(results[i].Err).Msg("Rendered card")
			return nil
		})
	}
	_ = g.Wait()
	return results
}
