package container

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"nsboot/internal/capability"
	"nsboot/internal/idmap"
	errs "nsboot/pkg/errors"
)

// DefaultEnv is handed to the target when a spec names no environment.
var DefaultEnv = []string{"PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"}

// Spec describes one isolated process. It is not modified once a launch
// begins.
type Spec struct {
	// Path is an absolute path or a name looked up in the spec's PATH.
	Path string `yaml:"path"`
	// Args is the full argument vector, argv[0] included.
	Args         []string             `yaml:"args,omitempty"`
	Env          []string             `yaml:"env,omitempty"`
	Namespaces   Namespaces           `yaml:"namespaces"`
	Capabilities capability.AllowList `yaml:"capabilities,omitempty"`
	Mapping      idmap.Mapping        `yaml:"mapping,omitempty"`
}

// WithDefaults fills argv[0] from Path and the default environment.
func (s Spec) WithDefaults() Spec {
	if len(s.Args) == 0 && s.Path != "" {
		s.Args = []string{s.Path}
	}
	if len(s.Env) == 0 {
		s.Env = append([]string(nil), DefaultEnv...)
	}
	return s
}

// UserNamespace reports whether the spec asks for a user namespace.
func (s Spec) UserNamespace() bool {
	return s.Namespaces.Has(NamespaceUser)
}

// Validate checks the spec without touching the host.
func (s Spec) Validate() error {
	if strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("%w: command path is required", errs.ErrUnsupportedConfiguration)
	}
	if strings.ContainsRune(s.Path, 0) {
		return fmt.Errorf("%w: command path contains NUL", errs.ErrUnsupportedConfiguration)
	}

	for _, kv := range s.Env {
		if !strings.Contains(kv, "=") {
			return fmt.Errorf("%w: environment entry %q is not KEY=VALUE", errs.ErrUnsupportedConfiguration, kv)
		}
	}

	if s.UserNamespace() {
		if len(s.Mapping.UID) == 0 || len(s.Mapping.GID) == 0 {
			return fmt.Errorf("%w: user namespace requested without uid and gid mappings", errs.ErrUnsupportedConfiguration)
		}
		return s.Mapping.Validate()
	}

	if !s.Mapping.IsEmpty() {
		return fmt.Errorf("%w: identity mapping given without a user namespace", errs.ErrUnsupportedConfiguration)
	}
	return nil
}

// LoadSpecFile reads a YAML spec. Unknown keys are rejected.
func LoadSpecFile(path string) (Spec, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Spec{}, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}

	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}

	return spec, nil
}
