// Package container defines the base behaviors shared by container
// technologies that install images as environment-module entries.
package container

import (
	"context"

	imgspecv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/spf13/afero"

	"github.com/hpcmod/hpcmod/pkg/container/name"
	"github.com/hpcmod/hpcmod/pkg/settings"
)

// Technology is one container runtime backend. Concrete variants embed Base
// and carry their own immutable FeatureSpec.
type Technology interface {
	// Name returns the technology name, e.g. "apptainer".
	Name() string

	// Features returns the static feature capability table.
	Features() FeatureSpec

	// ModuleDir returns the module directory for a "name" or "name:tag"
	// module name. Pure path computation, no existence check.
	ModuleDir(name string) string

	// ContainerDir returns the directory holding the container files,
	// defaulting to the module directory when no container base is set.
	ContainerDir(name string) string

	// InstalledTags lists the installed tags of a module.
	InstalledTags(moduleName string) ([]string, error)

	// GuessTag resolves the tag of a module name that may lack one.
	GuessTag(moduleName string, allowFail bool) (string, error)

	// EnvironmentFile resolves the path of the environment file of an
	// installed module.
	EnvironmentFile(moduleName string) (string, error)

	// AddEnvironment renders the given environment variables and writes
	// them to dir/fileName.
	AddEnvironment(dir string, envars map[string]string, fileName string) error

	// ResolveFeatures reconciles container-declared features against the
	// site settings and runtime extra flags.
	ResolveFeatures(declared map[string]any, extra []string) map[string]any

	// CleanLabels replaces embedded newlines in label values with the
	// configured label separator.
	CleanLabels(labels map[string]string) map[string]string

	// Add manually installs a container as a module.
	Add(ctx context.Context, image name.Name, moduleName string, config *imgspecv1.Image) error

	// Delete removes container files living outside the module directory.
	Delete(ctx context.Context, moduleName string) error
}

// Option configures a Base.
type Option func(*Base)

// WithFS sets the filesystem the base operates on. Defaults to the OS
// filesystem.
func WithFS(fsys afero.Fs) Option {
	return func(b *Base) {
		b.fs = fsys
	}
}

// WithFeatures sets the static feature capability table of the technology.
func WithFeatures(spec FeatureSpec) Option {
	return func(b *Base) {
		b.features = spec
	}
}

// NewBase returns a Base for the named technology. A nil settings value
// falls back to defaults; injecting settings is the normal path.
func NewBase(techName string, s *settings.Settings, opts ...Option) *Base {
	if s == nil {
		s = settings.New()
	}
	b := &Base{
		name:     techName,
		settings: s,
		fs:       afero.NewOsFs(),
		features: FeatureSpec{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
