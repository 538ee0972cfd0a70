package constant

import _ "embed"

// AsciiArtLogo is the banner the root command prints, embedded from ascii.txt.
//
//go:embed ascii.txt
var AsciiArtLogo string
