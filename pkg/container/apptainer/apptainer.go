// Package apptainer implements the apptainer container technology.
package apptainer

import (
	"github.com/hpcmod/hpcmod/pkg/container"
	"github.com/hpcmod/hpcmod/pkg/settings"
)

// features is the static capability table: apptainer supports GPU
// passthrough for the site values it knows, an X11 authority file, and a
// custom home either as a literal path or the site-provided string.
var features = container.FeatureSpec{
	"gpu": {
		"nvidia": "--nv",
		"amd":    "--rocm",
	},
	"x11": {
		true:                 "~/.Xauthority",
		container.KindString: container.UseSelf,
	},
	"home": {
		container.KindString: container.UseSelf,
	},
}

// New returns the apptainer technology configured with the given settings.
func New(s *settings.Settings, opts ...container.Option) *Technology {
	opts = append([]container.Option{container.WithFeatures(features)}, opts...)
	return &Technology{Base: container.NewBase("apptainer", s, opts...)}
}

// Technology runs containers through apptainer. Images are SIF files kept
// in the container directory; modules reference them by path.
type Technology struct {
	*container.Base
}
