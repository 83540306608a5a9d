// Package internal holds the identifier grammar used to parse container
// references into named parts.
package internal

import (
	"regexp"

	"github.com/hpcmod/hpcmod/pkg/util/xregexp"
)

var (
	re         = regexp.MustCompile
	literal    = xregexp.Literal
	expression = xregexp.Expression
	optional   = xregexp.Optional
	repeated   = xregexp.Repeated
	group      = xregexp.Group
	named      = xregexp.Named
	anchored   = xregexp.Anchored
)

const (
	// alphaNumeric defines the alpha numeric atom, typically a component of
	// names. This only allows lower case characters and digits.
	alphaNumeric = `[a-z0-9]+`

	// separator defines the separators allowed to be embedded in name
	// components. This allows one period, one or two underscore and multiple
	// dashes.
	separator = `(?:[._]|__|[-]+)`

	// domainComponent restricts the registry domain component to alphanumeric
	// labels, optionally with embedded dashes.
	domainComponent = `(?:[a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9])`

	// port defines the port number atom without port separator. (e.g. "80").
	port = `[0-9]+`

	// tag matches valid tag names.
	tag = `[\w][\w.-]{0,127}`

	// digestPat matches well-formed digests, including algorithm
	// (e.g. "sha256:<encoded>").
	digestPat = `[A-Za-z][A-Za-z0-9]*(?:[-_+.][A-Za-z][A-Za-z0-9]*)*[:][[:xdigit:]]{32,}`
)

var (
	// pathComponent restricts path-components to start with an alphanumeric
	// character, with following parts able to be separated by a separator.
	pathComponent = expression(
		alphaNumeric,
		optional(repeated(separator, alphaNumeric)),
	)

	// domainName requires at least one embedded period so that a registry
	// host can be told apart from a plain repository component.
	domainName = expression(
		domainComponent,
		repeated(literal(`.`), domainComponent),
	)

	// registryPat matches a registry host: either a dotted domain with an
	// optional port, or any single component with an explicit port
	// (e.g. "localhost:5000").
	registryPat = group(
		group(domainName, optional(literal(`:`), port)),
		`|`,
		group(domainComponent, literal(`:`), port),
	)

	// referencePat is the full supported identifier format:
	//
	//	[registry/]repository/.../tool[:version][@digest]
	referencePat = expression(
		optional(named("registry", registryPat), literal(`/`)),
		optional(named("repository", repeated(pathComponent, literal(`/`)))),
		named("tool", pathComponent),
		optional(literal(`:`), named("version", tag)),
		optional(literal(`@`), named("digest", digestPat)),
	)

	// ReferenceRegexp is used to check or match an identifier, anchored at
	// start and end of string, with named capture groups for the registry,
	// repository, tool, version and digest components.
	ReferenceRegexp = re(anchored(referencePat))
)
