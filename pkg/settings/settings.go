// Package settings holds the site-level configuration consumed by the
// container technologies.
package settings

import (
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/hpcmod/hpcmod/pkg/errdefs"
)

// Defaults applied by New when the settings file leaves a value unset.
const (
	DefaultModuleBase      = "modules"
	DefaultEnvironmentFile = "99-environment.sh"
	DefaultLabelSeparator  = ", "
)

// Settings is the site configuration for installed container modules.
// ContainerBase is optional; when unset container files live alongside the
// module tree under ModuleBase.
type Settings struct {
	// ModuleBase is the root directory of installed modules.
	ModuleBase string `yaml:"module_base"`
	// ContainerBase is an alternate root directory for container files.
	ContainerBase string `yaml:"container_base,omitempty"`
	// EnvironmentFile is the file name within a module directory that holds
	// exported environment variables.
	EnvironmentFile string `yaml:"environment_file"`
	// LabelSeparator replaces embedded newlines in container labels.
	LabelSeparator string `yaml:"label_separator"`
	// ContainerFeatures maps feature names to the site-level values handed
	// to the feature resolver, e.g. {"gpu": "nvidia"}.
	ContainerFeatures map[string]any `yaml:"container_features,omitempty"`
}

// New returns settings populated with defaults.
func New() *Settings {
	return &Settings{
		ModuleBase:      DefaultModuleBase,
		EnvironmentFile: DefaultEnvironmentFile,
		LabelSeparator:  DefaultLabelSeparator,
	}
}

// Load reads a settings YAML file from the given filesystem. Values missing
// from the file keep their defaults.
func Load(fsys afero.Fs, path string) (*Settings, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errdefs.Newf(errdefs.ErrNotFound, "settings file %s does not exist", path)
		}
		return nil, err
	}
	s := New()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errdefs.Newf(errdefs.ErrInvalidParameter, "unable to parse settings file %s: %v", path, err)
	}
	return s, nil
}
