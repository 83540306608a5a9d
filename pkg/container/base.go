package container

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	imgspecv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/hpcmod/hpcmod/pkg/container/name"
	"github.com/hpcmod/hpcmod/pkg/errdefs"
	"github.com/hpcmod/hpcmod/pkg/settings"
	"github.com/hpcmod/hpcmod/pkg/util/xos"
	"github.com/hpcmod/hpcmod/pkg/xlog"
)

// Base carries the behaviors shared by all container technologies: path and
// tag resolution against the installed module tree, feature resolution and
// the environment file write. Concrete variants embed it.
type Base struct {
	name     string
	settings *settings.Settings
	fs       afero.Fs
	features FeatureSpec
}

// Name returns the technology name.
func (b *Base) Name() string { return b.name }

// Features returns the static feature capability table.
func (b *Base) Features() FeatureSpec { return b.features }

// Settings returns the injected site settings.
func (b *Base) Settings() *settings.Settings { return b.settings }

// ModuleDir returns the module directory the container references. A tag in
// the name is converted to a folder, so "foo:1.2" maps to
// "<module_base>/foo/1.2".
func (b *Base) ModuleDir(moduleName string) string {
	return filepath.Join(b.settings.ModuleBase, tagToPath(moduleName))
}

// ContainerDir returns the directory holding the container files. Container
// files live alongside the modules unless an alternate container base is
// configured.
func (b *Base) ContainerDir(moduleName string) string {
	base := b.settings.ContainerBase
	if base == "" {
		base = b.settings.ModuleBase
	}
	return filepath.Join(base, tagToPath(moduleName))
}

// InstalledTags returns the sorted tags installed for a module. Each
// immediate subdirectory of the module directory is one installed tag.
func (b *Base) InstalledTags(moduleName string) ([]string, error) {
	dir := filepath.Join(b.settings.ModuleBase, moduleName)
	ok, err := afero.DirExists(b.fs, dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errdefs.Newf(errdefs.ErrNotFound, "%s does not exist", dir)
	}
	entries, err := afero.ReadDir(b.fs, dir)
	if err != nil {
		return nil, err
	}
	tags := lo.FilterMap(entries, func(entry os.FileInfo, _ int) (string, bool) {
		return entry.Name(), entry.IsDir()
	})
	sort.Strings(tags)
	return tags, nil
}

// GuessTag resolves the tag for a module name that may lack one. The outcome
// is three-way:
//
//   - a tagged name when the input already carries a tag or exactly one tag
//     is installed,
//   - the empty string without error when multiple tags are installed and
//     allowFail is set, leaving the choice to the caller,
//   - an error otherwise: ErrNoTagsInstalled when nothing is installed,
//     ErrAmbiguousTag listing the candidates when several are.
func (b *Base) GuessTag(moduleName string, allowFail bool) (string, error) {
	if strings.Contains(moduleName, ":") {
		return moduleName, nil
	}
	tags, err := b.InstalledTags(moduleName)
	if err != nil {
		return "", err
	}
	switch {
	case len(tags) == 0:
		return "", errdefs.Newf(ErrNoTagsInstalled, "%s does not have any tags installed", moduleName)
	case len(tags) == 1:
		return moduleName + ":" + tags[0], nil
	case allowFail:
		return "", nil
	}
	return "", errdefs.Newf(ErrAmbiguousTag, "multiple tags found for %s: %s", moduleName, strings.Join(tags, ", "))
}

// EnvironmentFile resolves the environment file path for an installed
// module, resolving the tag first when the name lacks one.
func (b *Base) EnvironmentFile(moduleName string) (string, error) {
	resolved, err := b.GuessTag(moduleName, false)
	if err != nil {
		return "", err
	}
	path := filepath.Join(b.ModuleDir(resolved), b.settings.EnvironmentFile)
	if !xos.Exists(b.fs, path) {
		return "", errdefs.Newf(errdefs.ErrNotFound, "environment file %s does not exist", path)
	}
	return path, nil
}

// ResolveFeatures reconciles container-declared features against the site
// settings and runtime extra flags using this technology's FeatureSpec.
func (b *Base) ResolveFeatures(declared map[string]any, extra []string) map[string]any {
	return ResolveFeatures(b.features, declared, b.settings.ContainerFeatures, extra)
}

// Add manually installs a container as a module. The base has no install
// behavior; concrete variants override it.
func (b *Base) Add(_ context.Context, _ name.Name, _ string, _ *imgspecv1.Image) error {
	xlog.Warnf("add is not supported for %s", b.Name())
	return nil
}

// Delete removes container files living outside the module directory. The
// base stores containers in the module tree, so there is nothing to do.
func (b *Base) Delete(_ context.Context, _ string) error {
	return nil
}

// tagToPath converts a tagged module name to its on-disk layout.
func tagToPath(moduleName string) string {
	return strings.ReplaceAll(moduleName, ":", string(filepath.Separator))
}
