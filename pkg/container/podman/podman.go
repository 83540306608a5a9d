// Package podman implements the podman container technology.
package podman

import (
	"github.com/hpcmod/hpcmod/pkg/container"
	"github.com/hpcmod/hpcmod/pkg/settings"
)

// features is the static capability table. Podman only knows GPU
// passthrough through CDI device selection.
var features = container.FeatureSpec{
	"gpu": {
		"nvidia": "--device nvidia.com/gpu=all",
	},
}

// New returns the podman technology configured with the given settings.
func New(s *settings.Settings, opts ...container.Option) *Technology {
	opts = append([]container.Option{container.WithFeatures(features)}, opts...)
	return &Technology{Base: container.NewBase("podman", s, opts...)}
}

// Technology runs containers through podman. Environment variables are
// written to the module environment file rather than the module file
// itself.
type Technology struct {
	*container.Base
}
