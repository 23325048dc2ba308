// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Content API - these keys locate the remote content backend and bound every request to it.
const (
	APIBaseURL = "api.base_url"
	APITimeout = "api.timeout"
)

// Video Thumbnails - these keys configure off-screen frame extraction for gallery videos.
const (
	ThumbnailEnable  = "thumbnail.enable"
	ThumbnailFFmpeg  = "thumbnail.ffmpeg"
	ThumbnailFFprobe = "thumbnail.ffprobe"
	ThumbnailQuality = "thumbnail.quality"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's styling.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURLs    = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
