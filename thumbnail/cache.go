package thumbnail

import (
	"context"
	"sync"

	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/key"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/spf13/viper"
)

// Source tells where a thumbnail came from.
type Source int

const (
	SourceNone Source = iota
	SourceProvided
	SourceExtracted
	SourcePlaceholder
)

func (s Source) String() string {
	switch s {
	case SourceProvided:
		return "provided"
	case SourceExtracted:
		return "extracted"
	case SourcePlaceholder:
		return "placeholder"
	default:
		return "none"
	}
}

func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Thumbnail is what a gallery card shows for an item.
type Thumbnail struct {
	Source Source `json:"source"`
	URL    string `json:"url,omitempty"`
	Label  string `json:"label,omitempty"`
}

func placeholder() Thumbnail {
	return Thumbnail{Source: SourcePlaceholder, Label: Placeholder}
}

type entry struct {
	done chan struct{}
	uri  string
	err  error
}

// Cache memoizes extractions by gallery item id for the lifetime of a page.
// Each id is attempted at most once; failures are remembered too.
type Cache struct {
	extractor Extractor

	mu      sync.Mutex
	entries map[int]*entry
}

// NewCache wraps extractor. A nil extractor disables extraction and every
// eligible video gets the placeholder.
func NewCache(extractor Extractor) *Cache {
	return &Cache{
		extractor: extractor,
		entries:   make(map[int]*entry),
	}
}

// CacheFromConfig honours thumbnail.enable.
func CacheFromConfig() *Cache {
	if !viper.GetBool(key.ThumbnailEnable) {
		return NewCache(nil)
	}
	return NewCache(FFmpegFromConfig())
}

// Resolve returns the thumbnail for item, extracting one if needed.
// Concurrent calls for the same id share a single attempt.
func (c *Cache) Resolve(ctx context.Context, item content.GalleryItem) Thumbnail {
	if !item.IsVideo() {
		if item.ImageURL != "" {
			return Thumbnail{Source: SourceProvided, URL: item.ImageURL}
		}
		return Thumbnail{Source: SourceNone}
	}

	if item.ThumbnailURL != "" {
		return Thumbnail{Source: SourceProvided, URL: item.ThumbnailURL}
	}

	if !Eligible(item) || c.extractor == nil {
		return placeholder()
	}

	c.mu.Lock()
	e, found := c.entries[item.ID]
	if !found {
		e = &entry{done: make(chan struct{})}
		c.entries[item.ID] = e
	}
	c.mu.Unlock()

	if !found {
		e.uri, e.err = c.extractor.Extract(ctx, item.VideoFileURL)
		if e.err != nil {
			log.Warnf("thumbnail: item %d: %s", item.ID, e.err)
		}
		close(e.done)
	}

	select {
	case <-e.done:
	case <-ctx.Done():
		return placeholder()
	}

	if e.err != nil {
		return placeholder()
	}
	return Thumbnail{Source: SourceExtracted, URL: e.uri}
}

// Peek returns a settled thumbnail for id without triggering extraction.
func (c *Cache) Peek(id int) (Thumbnail, bool) {
	c.mu.Lock()
	e, ok := c.entries[id]
	c.mu.Unlock()
	if !ok {
		return Thumbnail{}, false
	}

	select {
	case <-e.done:
	default:
		return Thumbnail{}, false
	}

	if e.err != nil {
		return placeholder(), true
	}
	return Thumbnail{Source: SourceExtracted, URL: e.uri}, true
}

// Len is the number of ids attempted so far.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset forgets every entry. Pages call it when they are left.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[int]*entry)
	c.mu.Unlock()
}
