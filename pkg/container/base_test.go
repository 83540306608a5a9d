package container_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpcmod/hpcmod/pkg/container"
	"github.com/hpcmod/hpcmod/pkg/errdefs"
	"github.com/hpcmod/hpcmod/pkg/settings"
)

func newTestBase(t *testing.T, s *settings.Settings) (*container.Base, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	return container.NewBase("test", s, container.WithFS(fsys)), fsys
}

func installTags(t *testing.T, fsys afero.Fs, moduleBase, moduleName string, tags ...string) {
	t.Helper()
	for _, tag := range tags {
		require.NoError(t, fsys.MkdirAll(filepath.Join(moduleBase, moduleName, tag), 0o755))
	}
}

func TestModuleDir(t *testing.T) {
	s := settings.New()
	s.ModuleBase = "/opt/modules"
	base, _ := newTestBase(t, s)

	assert.Equal(t, "/opt/modules/foo", base.ModuleDir("foo"))
	assert.Equal(t, "/opt/modules/foo/1.2", base.ModuleDir("foo:1.2"))
}

func TestContainerDir(t *testing.T) {
	s := settings.New()
	s.ModuleBase = "/opt/modules"
	base, _ := newTestBase(t, s)

	// defaults to the module base
	assert.Equal(t, "/opt/modules/foo/1.2", base.ContainerDir("foo:1.2"))

	s.ContainerBase = "/opt/containers"
	assert.Equal(t, "/opt/containers/foo/1.2", base.ContainerDir("foo:1.2"))
}

func TestInstalledTags(t *testing.T) {
	s := settings.New()
	base, fsys := newTestBase(t, s)
	installTags(t, fsys, s.ModuleBase, "foo", "2.0", "1.2")
	// files are not tags
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(s.ModuleBase, "foo", "notes.txt"), nil, 0o644))

	tags, err := base.InstalledTags("foo")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.2", "2.0"}, tags)
}

func TestInstalledTags_MissingModule(t *testing.T) {
	base, _ := newTestBase(t, settings.New())

	_, err := base.InstalledTags("foo")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestGuessTag(t *testing.T) {
	s := settings.New()
	base, fsys := newTestBase(t, s)

	// explicit tags pass through untouched, no filesystem needed
	got, err := base.GuessTag("foo:1.0", false)
	require.NoError(t, err)
	assert.Equal(t, "foo:1.0", got)

	// a single installed tag resolves unambiguously
	installTags(t, fsys, s.ModuleBase, "foo", "1.2")
	got, err = base.GuessTag("foo", false)
	require.NoError(t, err)
	assert.Equal(t, "foo:1.2", got)
}

func TestGuessTag_MultipleTags(t *testing.T) {
	s := settings.New()
	base, fsys := newTestBase(t, s)
	installTags(t, fsys, s.ModuleBase, "foo", "1.2", "2.0")

	_, err := base.GuessTag("foo", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrAmbiguousTag)
	assert.Contains(t, err.Error(), "1.2, 2.0")

	// allowFail turns ambiguity into a soft no-resolution outcome
	got, err := base.GuessTag("foo", true)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGuessTag_NoTags(t *testing.T) {
	s := settings.New()
	base, fsys := newTestBase(t, s)
	require.NoError(t, fsys.MkdirAll(filepath.Join(s.ModuleBase, "foo"), 0o755))

	for _, allowFail := range []bool{false, true} {
		_, err := base.GuessTag("foo", allowFail)
		assert.ErrorIs(t, err, container.ErrNoTagsInstalled)
	}
}

func TestEnvironmentFile(t *testing.T) {
	s := settings.New()
	base, fsys := newTestBase(t, s)
	installTags(t, fsys, s.ModuleBase, "foo", "1.2")

	// missing file is an error even when the tag resolves
	_, err := base.EnvironmentFile("foo")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)

	want := filepath.Join(s.ModuleBase, "foo", "1.2", s.EnvironmentFile)
	require.NoError(t, afero.WriteFile(fsys, want, []byte("export FOO=bar\n"), 0o644))

	got, err := base.EnvironmentFile("foo")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAddEnvironment(t *testing.T) {
	s := settings.New()
	base, fsys := newTestBase(t, s)

	envars := map[string]string{
		"PATH_EXTRA": "/opt/view/bin",
		"CONTAINER":  "foo",
	}
	require.NoError(t, base.AddEnvironment("modules/foo/1.2", envars, s.EnvironmentFile))

	content, err := afero.ReadFile(fsys, filepath.Join("modules/foo/1.2", s.EnvironmentFile))
	require.NoError(t, err)
	assert.Equal(t, "export CONTAINER=foo\nexport PATH_EXTRA=/opt/view/bin\n", string(content))
}
