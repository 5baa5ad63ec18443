// Package static embeds the entry form and its script.
package static

import "embed"

// FS holds index.html and app.js
//
//go:embed index.html app.js
var FS embed.FS
