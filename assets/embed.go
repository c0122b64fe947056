package assets

import "embed"

// Embedded holds the art shipped with the binary. Files in the assets
// directory on disk shadow it.
//
//go:embed images fonts audio
var Embedded embed.FS
