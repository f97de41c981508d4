// The embedded tree must be declared next to assets/, since //go:embed only
// reaches files below the declaring package.
package main

import "embed"

//go:embed assets/config
var assetsFS embed.FS
