// Package name parses container identifiers into named parts.
package name

import (
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/hpcmod/hpcmod/pkg/container/name/internal"
	"github.com/hpcmod/hpcmod/pkg/util/xregexp"
)

// Name is a container identifier parsed into named parts. The zero value of
// every optional field is the empty string, meaning the part was not present
// in the input. All fields are stored without leading or trailing slashes.
type Name struct {
	raw string

	// Registry is the registry host portion, e.g. "ghcr.io".
	Registry string `json:"registry,omitempty" yaml:"registry,omitempty"`
	// Repository is the namespace path portion, e.g. "autamus".
	Repository string `json:"repository,omitempty" yaml:"repository,omitempty"`
	// Tool is the image name, e.g. "clingo".
	Tool string `json:"tool" yaml:"tool"`
	// Version is the tag, absent when the identifier is digest-qualified.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Digest is the content digest, absent when the identifier is
	// tag-qualified.
	Digest string `json:"digest,omitempty" yaml:"digest,omitempty"`
}

// Parse parses a raw identifier of the form
// "[registry/]repository/.../tool[:version][@digest]". Inputs that do not
// match the grammar return an error wrapping ErrInvalidIdentifier; no
// partial Name is produced.
func Parse(raw string) (Name, error) {
	var zero Name

	captures, ok := xregexp.NamedCaptures(internal.ReferenceRegexp, raw)
	if !ok {
		return zero, newErrInvalidIdentifier("%s does not match a known identifier pattern", raw)
	}

	n := Name{raw: raw}
	for key, value := range captures {
		value = strings.Trim(value, "/")
		switch key {
		case "registry":
			n.Registry = value
		case "repository":
			n.Repository = value
		case "tool":
			n.Tool = value
		case "version":
			n.Version = value
		case "digest":
			n.Digest = value
		}
	}

	if n.Digest != "" {
		if _, err := digest.Parse(n.Digest); err != nil {
			return zero, newErrInvalidIdentifier("%s carries an invalid digest: %v", raw, err)
		}
	}
	return n, nil
}

// String returns the original raw identifier verbatim.
func (n Name) String() string {
	return n.raw
}
