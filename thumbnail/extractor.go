// Package thumbnail produces preview images for uploaded gallery videos
// that were published without one.
package thumbnail

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/key"
	"github.com/spf13/viper"
	"golang.org/x/image/draw"
)

const (
	// SeekOffset skips the usually black first frame.
	SeekOffset = 100 * time.Millisecond

	FallbackWidth  = 640
	FallbackHeight = 360

	DefaultQuality = 80

	// Placeholder labels a video that has no thumbnail.
	Placeholder = "Video"
)

// ErrNoFrame is returned when the decoder produced no image.
var ErrNoFrame = errors.New("no frame decoded")

// Extractor turns a video URL into an image data URI.
type Extractor interface {
	Extract(ctx context.Context, videoURL string) (string, error)
}

// Eligible reports whether item needs a generated thumbnail: an uploaded
// video with a file URL and no thumbnail of its own.
func Eligible(item content.GalleryItem) bool {
	if !item.IsVideo() || item.ThumbnailURL != "" || item.VideoFileURL == "" {
		return false
	}
	return item.VideoType == "upload" || item.EmbedURL == ""
}

type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// FFmpeg decodes a single frame off screen with the ffmpeg and ffprobe binaries.
type FFmpeg struct {
	FFmpegPath  string
	FFprobePath string
	Quality     int

	run runner
}

func NewFFmpeg(ffmpegPath, ffprobePath string, quality int) *FFmpeg {
	return &FFmpeg{
		FFmpegPath:  ffmpegPath,
		FFprobePath: ffprobePath,
		Quality:     quality,
		run:         execRunner,
	}
}

// FFmpegFromConfig reads the thumbnail.* keys.
func FFmpegFromConfig() *FFmpeg {
	return NewFFmpeg(
		viper.GetString(key.ThumbnailFFmpeg),
		viper.GetString(key.ThumbnailFFprobe),
		viper.GetInt(key.ThumbnailQuality),
	)
}

// Extract probes the native size of videoURL, decodes the frame at
// SeekOffset and returns it as a JPEG data URI.
func (f *FFmpeg) Extract(ctx context.Context, videoURL string) (string, error) {
	width, height, err := f.probe(ctx, videoURL)
	if err != nil {
		return "", fmt.Errorf("probe %s: %w", videoURL, err)
	}

	frame, err := f.frame(ctx, videoURL)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", videoURL, err)
	}

	return Encode(frame, width, height, f.Quality)
}

func (f *FFmpeg) probe(ctx context.Context, videoURL string) (width, height int, err error) {
	out, err := f.run(ctx, f.FFprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=p=0:s=x",
		videoURL,
	)
	if err != nil {
		return 0, 0, err
	}

	// Unknown dimensions are not an error, Encode falls back to 640x360.
	dims := strings.SplitN(strings.TrimSpace(string(out)), "x", 2)
	if len(dims) != 2 {
		return 0, 0, nil
	}
	width, _ = strconv.Atoi(strings.TrimSpace(dims[0]))
	height, _ = strconv.Atoi(strings.TrimSpace(dims[1]))
	return width, height, nil
}

func (f *FFmpeg) frame(ctx context.Context, videoURL string) (image.Image, error) {
	out, err := f.run(ctx, f.FFmpegPath,
		"-v", "error",
		"-ss", strconv.FormatFloat(SeekOffset.Seconds(), 'f', -1, 64),
		"-i", videoURL,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoFrame
	}

	return png.Decode(bytes.NewReader(out))
}

// Encode draws frame onto a width x height surface and returns it as a
// base64 JPEG data URI. Non-positive sizes use 640x360.
func Encode(frame image.Image, width, height, quality int) (string, error) {
	if frame == nil {
		return "", ErrNoFrame
	}
	if width <= 0 || height <= 0 {
		width, height = FallbackWidth, FallbackHeight
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	surface := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(surface, surface.Bounds(), frame, frame.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, surface, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
