package container

import (
	"strings"

	imgspecv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/samber/lo"
)

// descriptionKeys are the label keys checked, in order, for a container
// description.
var descriptionKeys = []string{
	imgspecv1.AnnotationDescription,
	"org.label-schema.description",
}

// urlKeys are the label keys checked, in order, for a container homepage.
var urlKeys = []string{
	imgspecv1.AnnotationURL,
	imgspecv1.AnnotationSource,
	"org.label-schema.url",
}

// CleanLabels replaces every embedded newline in each label value with the
// configured label separator.
func (b *Base) CleanLabels(labels map[string]string) map[string]string {
	separator := b.settings.LabelSeparator
	return lo.MapValues(labels, func(value string, _ string) string {
		return strings.ReplaceAll(value, "\n", separator)
	})
}

// LabelsFromConfig returns a copy of the label map of an OCI image config,
// never nil.
func LabelsFromConfig(cfg imgspecv1.Image) map[string]string {
	labels := make(map[string]string, len(cfg.Config.Labels))
	for key, value := range cfg.Config.Labels {
		labels[key] = value
	}
	return labels
}

// Description returns the container description carried in the labels, or
// an empty string.
func Description(labels map[string]string) string {
	return firstLabel(labels, descriptionKeys)
}

// URL returns the container homepage carried in the labels, or an empty
// string.
func URL(labels map[string]string) string {
	return firstLabel(labels, urlKeys)
}

func firstLabel(labels map[string]string, keys []string) string {
	for _, key := range keys {
		if value := labels[key]; value != "" {
			return value
		}
	}
	return ""
}
