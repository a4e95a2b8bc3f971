// Package features tracks the capabilities a host advertises and checks
// element requirements and card schema versions against them.
package features

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/types"
)

const (
	// SchemaFeature is the feature name under which the supported card schema version is registered
	SchemaFeature = "adaptiveCards"

	// SchemaVersion is the newest card schema version this renderer understands
	SchemaVersion = "1.6"
)

// Registry maps feature names to the version the host supports
type Registry struct {
	mu       sync.RWMutex
	features map[string]string
}

// New returns an empty feature registry
func New() *Registry {
	return &Registry{features: make(map[string]string)}
}

// NewDefault returns a registry advertising the built-in schema version
func NewDefault() *Registry {
	r := New()
	_ = r.Add(SchemaFeature, SchemaVersion)
	return r
}

// Add registers a feature. The version must be a dotted version number
// such as "1", "1.2" or "1.2.3".
func (r *Registry) Add(name, version string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "feature name cannot be empty")
	}
	if canonical(version) == "" {
		return errors.Newf(errors.ErrInvalidInput, "invalid version %q for feature %q", version, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.features[name] = version
	return nil
}

// Remove unregisters a feature
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.features, name)
}

// Version returns the registered version of a feature
func (r *Registry) Version(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.features[name]
	return v, ok
}

// Names returns the registered feature names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.features))
	for n := range r.features {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Meets reports whether every requirement is satisfied. A requirement is
// met when the feature is registered and either asks for any version or
// the registered version is at least the requested one.
func (r *Registry) Meets(reqs []types.Requirement) bool {
	for _, req := range reqs {
		if !r.meets(req) {
			return false
		}
	}
	return true
}

func (r *Registry) meets(req types.Requirement) bool {
	have, ok := r.Version(req.Name)
	if !ok {
		return false
	}
	if strings.TrimSpace(req.Version) == types.AnyVersion {
		return true
	}
	want := canonical(req.Version)
	if want == "" {
		return false
	}
	return semver.Compare(canonical(have), want) >= 0
}

// SupportsSchema reports whether a card of the given version can be
// rendered without a schema warning. An empty version is accepted.
func (r *Registry) SupportsSchema(version string) bool {
	if version == "" {
		return true
	}
	return r.meets(types.Requirement{Name: SchemaFeature, Version: version})
}

// canonical turns "1.2" into "v1.2.0", returning "" for anything that is not a version
func canonical(version string) string {
	v := strings.TrimSpace(version)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}
