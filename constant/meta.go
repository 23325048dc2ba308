// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// Bencyn is the canonical application identifier used for filesystem paths and CLI branding.
	Bencyn = "bencyn"

	// Brand is the display name of the business whose content the client renders.
	Brand = "B.C BENCYN SUSU"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the HTTP User-Agent sent to the content API.
	UserAgent = Bencyn + "/" + Version
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// AsciiArtLogo is the banner shown in the root command's help.
//
//go:embed ascii.txt
var AsciiArtLogo string

// runtime.GOOS values the application handles specially.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
