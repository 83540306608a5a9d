package container_test

import (
	"testing"

	imgspecv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"

	"github.com/hpcmod/hpcmod/pkg/container"
	"github.com/hpcmod/hpcmod/pkg/settings"
)

func TestCleanLabels(t *testing.T) {
	s := settings.New()
	s.LabelSeparator = ","
	base, _ := newTestBase(t, s)

	labels := map[string]string{
		"a": "line1\nline2",
		"b": "plain",
	}
	cleaned := base.CleanLabels(labels)

	assert.Equal(t, map[string]string{"a": "line1,line2", "b": "plain"}, cleaned)
	// the input map is left untouched
	assert.Equal(t, "line1\nline2", labels["a"])
}

func TestLabelsFromConfig(t *testing.T) {
	var cfg imgspecv1.Image
	assert.NotNil(t, container.LabelsFromConfig(cfg))

	cfg.Config.Labels = map[string]string{"key": "value"}
	labels := container.LabelsFromConfig(cfg)
	assert.Equal(t, "value", labels["key"])

	labels["key"] = "changed"
	assert.Equal(t, "value", cfg.Config.Labels["key"])
}

func TestDescriptionAndURL(t *testing.T) {
	labels := map[string]string{
		imgspecv1.AnnotationDescription: "a fine container",
		"org.label-schema.url":          "https://example.com",
	}
	assert.Equal(t, "a fine container", container.Description(labels))
	assert.Equal(t, "https://example.com", container.URL(labels))

	assert.Empty(t, container.Description(nil))
	assert.Empty(t, container.URL(nil))
}
