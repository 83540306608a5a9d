package apptainer_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpcmod/hpcmod/pkg/container"
	"github.com/hpcmod/hpcmod/pkg/container/apptainer"
	"github.com/hpcmod/hpcmod/pkg/settings"
)

func TestResolveFeatures(t *testing.T) {
	s := settings.New()
	s.ContainerFeatures = map[string]any{
		"gpu":  "nvidia",
		"x11":  true,
		"home": "/scratch/home",
	}
	tech := apptainer.New(s, container.WithFS(afero.NewMemMapFs()))
	require.Equal(t, "apptainer", tech.Name())

	resolved := tech.ResolveFeatures(map[string]any{
		"gpu":  true,
		"x11":  true,
		"home": true,
	}, nil)

	assert.Equal(t, map[string]any{
		"gpu":  "--nv",
		"x11":  "~/.Xauthority",
		"home": "/scratch/home",
	}, resolved)
}

func TestResolveFeatures_AMD(t *testing.T) {
	s := settings.New()
	s.ContainerFeatures = map[string]any{"gpu": "amd"}
	tech := apptainer.New(s, container.WithFS(afero.NewMemMapFs()))

	resolved := tech.ResolveFeatures(nil, []string{"gpu"})
	assert.Equal(t, map[string]any{"gpu": "--rocm"}, resolved)
}
