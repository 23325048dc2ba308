package thumbnail

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bencyn-cli/bencyn/content"
	. "github.com/smartystreets/goconvey/convey"
)

type countingExtractor struct {
	calls atomic.Int32
	uri   string
	err   error
}

func (c *countingExtractor) Extract(context.Context, string) (string, error) {
	c.calls.Add(1)
	return c.uri, c.err
}

func uploadedVideo(id int) content.GalleryItem {
	return content.GalleryItem{
		ID:           id,
		Title:        "Annual meeting",
		MediaType:    "video",
		VideoType:    "upload",
		VideoFileURL: "http://localhost:8000/media/gallery/videos/agm.mp4",
	}
}

func decodeDataURI(uri string) (image.Image, error) {
	payload := strings.TrimPrefix(uri, "data:image/jpeg;base64,")
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	return jpeg.Decode(bytes.NewReader(raw))
}

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 255, G: 140, A: 255})
		}
	}
	return img
}

func TestEligible(t *testing.T) {
	Convey("Eligibility", t, func() {
		Convey("An uploaded video without a thumbnail is eligible", func() {
			So(Eligible(uploadedVideo(1)), ShouldBeTrue)
		})

		Convey("A video with its own thumbnail is not", func() {
			item := uploadedVideo(1)
			item.ThumbnailURL = "http://localhost:8000/media/t.jpg"
			So(Eligible(item), ShouldBeFalse)
		})

		Convey("An embedded video is not", func() {
			item := uploadedVideo(1)
			item.VideoType = "youtube"
			item.EmbedURL = "https://www.youtube.com/embed/abc"
			So(Eligible(item), ShouldBeFalse)
		})

		Convey("An image is not", func() {
			So(Eligible(content.GalleryItem{MediaType: "image"}), ShouldBeFalse)
		})
	})
}

func TestEncode(t *testing.T) {
	Convey("Given a decoded frame", t, func() {
		frame := solid(4, 4)

		Convey("It is drawn at the requested size", func() {
			uri, err := Encode(frame, 32, 18, 80)
			So(err, ShouldBeNil)
			So(uri, ShouldStartWith, "data:image/jpeg;base64,")

			img, err := decodeDataURI(uri)
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, 32)
			So(img.Bounds().Dy(), ShouldEqual, 18)
		})

		Convey("Unknown dimensions fall back to 640x360", func() {
			uri, err := Encode(frame, 0, 0, 80)
			So(err, ShouldBeNil)

			img, err := decodeDataURI(uri)
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, FallbackWidth)
			So(img.Bounds().Dy(), ShouldEqual, FallbackHeight)
		})

		Convey("A missing frame is an error", func() {
			_, err := Encode(nil, 10, 10, 80)
			So(err, ShouldEqual, ErrNoFrame)
		})
	})
}

func TestFFmpeg(t *testing.T) {
	Convey("Given stubbed ffprobe and ffmpeg binaries", t, func() {
		var frame bytes.Buffer
		So(png.Encode(&frame, solid(8, 8)), ShouldBeNil)

		var ffmpegArgs []string
		f := NewFFmpeg("ffmpeg", "ffprobe", 80)
		f.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
			switch name {
			case "ffprobe":
				return []byte("64x36\n"), nil
			case "ffmpeg":
				ffmpegArgs = args
				return frame.Bytes(), nil
			}
			return nil, errors.New("unexpected binary")
		}

		Convey("Extract seeks to 0.1s and keeps the native size", func() {
			uri, err := f.Extract(context.Background(), "http://x/agm.mp4")
			So(err, ShouldBeNil)
			So(strings.Join(ffmpegArgs, " "), ShouldContainSubstring, "-ss 0.1 -i http://x/agm.mp4 -frames:v 1")

			img, err := decodeDataURI(uri)
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, 64)
			So(img.Bounds().Dy(), ShouldEqual, 36)
		})

		Convey("A probe failure fails the extraction", func() {
			f.run = func(context.Context, string, ...string) ([]byte, error) {
				return nil, errors.New("exit status 1")
			}
			_, err := f.Extract(context.Background(), "http://x/broken.mp4")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCache(t *testing.T) {
	Convey("Given a cache whose extractor always fails", t, func() {
		extractor := &countingExtractor{err: errors.New("cannot decode")}
		cache := NewCache(extractor)

		Convey("The item renders the Video placeholder", func() {
			thumb := cache.Resolve(context.Background(), uploadedVideo(5))
			So(thumb.Source, ShouldEqual, SourcePlaceholder)
			So(thumb.Label, ShouldEqual, "Video")

			Convey("and is never attempted again", func() {
				cache.Resolve(context.Background(), uploadedVideo(5))
				cache.Resolve(context.Background(), uploadedVideo(5))
				So(extractor.calls.Load(), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a cache whose extractor succeeds", t, func() {
		extractor := &countingExtractor{uri: "data:image/jpeg;base64,AAAA"}
		cache := NewCache(extractor)

		Convey("Concurrent requests share one attempt", func() {
			var wg sync.WaitGroup
			results := make([]Thumbnail, 16)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					results[i] = cache.Resolve(context.Background(), uploadedVideo(9))
				}(i)
			}
			wg.Wait()

			So(extractor.calls.Load(), ShouldEqual, 1)
			for _, r := range results {
				So(r.Source, ShouldEqual, SourceExtracted)
				So(r.URL, ShouldEqual, extractor.uri)
			}

			peeked, ok := cache.Peek(9)
			So(ok, ShouldBeTrue)
			So(peeked.URL, ShouldEqual, extractor.uri)
		})

		Convey("Items with a thumbnail never reach the extractor", func() {
			item := uploadedVideo(2)
			item.ThumbnailURL = "http://x/t.jpg"
			So(cache.Resolve(context.Background(), item).URL, ShouldEqual, "http://x/t.jpg")
			So(extractor.calls.Load(), ShouldEqual, 0)
		})

		Convey("Reset forgets previous attempts", func() {
			cache.Resolve(context.Background(), uploadedVideo(1))
			So(cache.Len(), ShouldEqual, 1)
			cache.Reset()
			So(cache.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given a disabled cache", t, func() {
		cache := NewCache(nil)

		Convey("Eligible videos get the placeholder", func() {
			So(cache.Resolve(context.Background(), uploadedVideo(3)).Label, ShouldEqual, Placeholder)
		})
	})
}
