package container

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/smallnest/deepcopy"
)

// UseSelf is the sentinel value in a FeatureSpec meaning "emit the raw site
// setting value unchanged".
const UseSelf = "[use-self]"

// Kind tags the type class of a site setting value, used as a FeatureValues
// selector when no concrete value matches.
type Kind string

// Kinds of site setting values a FeatureSpec can dispatch on.
const (
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
)

// KindOf returns the Kind of a site setting value.
func KindOf(value any) Kind {
	switch value.(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	}
	return Kind(fmt.Sprintf("%T", value))
}

// FeatureValues maps a selector to the value handed to the container
// runtime. A selector is either a concrete site setting value ("nvidia",
// true) or a Kind covering every value of that type class.
type FeatureValues map[any]any

// FeatureSpec is the static feature capability table of a container
// technology: feature name to the values the technology supports for it.
// It is attached to each technology variant at construction and never
// mutated at runtime.
type FeatureSpec map[string]FeatureValues

// ResolveFeatures reconciles container-declared features against the site
// settings. Extra flags are layered beneath the declared features as
// lower-cased boolean-true switches, so a container's own declaration always
// wins. Each surviving key is resolved with a two-tier lookup: an exact
// match on the site value first, then a match on the value's Kind, where
// the UseSelf sentinel passes the raw site value through. Keys unknown to
// the spec or absent from the site settings are dropped.
func ResolveFeatures(spec FeatureSpec, declared, site map[string]any, extra []string) map[string]any {
	working := map[string]any{}
	if declared != nil {
		working = deepcopy.Copy(declared)
	}
	for _, flag := range extra {
		key := strings.ToLower(flag)
		if _, ok := working[key]; !ok {
			working[key] = true
		}
	}

	resolved := map[string]any{}
	for key := range working {
		values, ok := spec[key]
		if !ok {
			continue
		}
		siteValue, ok := site[key]
		if !ok {
			continue
		}
		if out, ok := lookup(values, siteValue); ok {
			resolved[key] = out
			continue
		}
		out, ok := values[KindOf(siteValue)]
		if !ok {
			continue
		}
		if out == UseSelf {
			out = siteValue
		}
		resolved[key] = out
	}
	return resolved
}

// lookup indexes the values table with a site value, guarding against
// non-comparable values which cannot be map keys.
func lookup(values FeatureValues, siteValue any) (any, bool) {
	if siteValue == nil || !reflect.TypeOf(siteValue).Comparable() {
		return nil, false
	}
	out, ok := values[siteValue]
	return out, ok
}
