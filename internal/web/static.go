// Package web bundles the landing page's static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the asset tree rooted at static/.
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
