// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/google/safehtml/template"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Parallel Poisson solver figures</title>
<style>
figure { display: inline-block; margin: 1em; }
img { max-width: 48em; }
</style>
</head>
<body>
{{- range .}}
<figure>
<img src="{{.Name}}" alt="{{.Title}}">
<figcaption>{{.Title}}</figcaption>
</figure>
{{- end}}
</body>
</html>
`))

// WriteIndex writes index.html to the figure folder, listing the
// figures written so far, and returns its path.
func (r *Report) WriteIndex() (string, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, r.figures); err != nil {
		return "", err
	}
	dir := r.Layout.Path(r.Layout.Figures)
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, buf.Bytes(), 0o666); err != nil {
		return "", err
	}
	return path, nil
}
