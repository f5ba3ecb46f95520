// Package web embeds the static checkout client served by the gateway.
package web

import "embed"

//go:embed index.html success.html cancel.html app.js styles.css
var Files embed.FS
