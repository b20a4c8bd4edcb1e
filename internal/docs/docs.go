// Package docs embeds the help topics shipped with netloc. The topics
// are served by the help command, so documentation travels with the
// binary instead of a share directory.
package docs

import "embed"

//go:embed help/*.md
var Topics embed.FS
