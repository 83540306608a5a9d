package container

import (
	"bytes"
	"path/filepath"
	"text/template"

	"github.com/hpcmod/hpcmod/pkg/util/xos"
)

// environmentTemplate renders exported environment variables, one per line.
// Map iteration in text/template is key-sorted, so output is deterministic.
var environmentTemplate = template.Must(template.New("environment").Parse(
	`{{ range $key, $value := . }}export {{ $key }}={{ $value }}
{{ end }}`))

// AddEnvironment renders the given environment variables and writes them
// atomically to dir/fileName.
func (b *Base) AddEnvironment(dir string, envars map[string]string, fileName string) error {
	var buf bytes.Buffer
	if err := environmentTemplate.Execute(&buf, envars); err != nil {
		return err
	}
	return xos.WriteFileAtomic(b.fs, filepath.Join(dir, fileName), buf.Bytes(), 0o644)
}
