// Package static embeds the site's own assets for HTTP serving. Framework
// CSS and htmx load from their CDNs; product assets live here.
package static

import "embed"

// FS exposes web static assets for HTTP serving.
//
//go:embed site.css app.js favicon.svg previews
var FS embed.FS
