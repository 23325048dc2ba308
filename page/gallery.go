package page

import (
	"context"
	"net/url"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/thumbnail"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// thumbnailWorkers bounds concurrent extractions, each of which runs
// ffprobe and ffmpeg.
const thumbnailWorkers = 4

type GalleryQuery struct {
	EventType string `json:"event_type"`
	MediaType string `json:"media_type"`
}

// Params omits every filter set to "all".
func (q GalleryQuery) Params() url.Values {
	params := url.Values{}
	if q.EventType != "" && q.EventType != filterAll {
		params.Set("event_type", q.EventType)
	}
	if q.MediaType != "" && q.MediaType != filterAll {
		params.Set("media_type", q.MediaType)
	}
	return params
}

type GalleryCard struct {
	content.GalleryItem
	Thumbnail thumbnail.Thumbnail `json:"thumbnail"`
}

type GalleryView struct {
	Query      GalleryQuery  `json:"query"`
	EventTypes []Choice      `json:"event_types"`
	MediaTypes []Choice      `json:"media_types"`
	Featured   []GalleryCard `json:"featured"`
	Regular    []GalleryCard `json:"regular"`
	Message    string        `json:"message,omitempty"`
}

// Gallery lists items matching q, split into featured and regular.
// When thumbs is not nil every video card gets a thumbnail resolved through it.
func (a *Assembler) Gallery(ctx context.Context, q GalleryQuery, thumbs *thumbnail.Cache) (GalleryView, bool) {
	if q.EventType == "" {
		q.EventType = filterAll
	}
	if q.MediaType == "" {
		q.MediaType = filterAll
	}

	result := list[content.GalleryItem](ctx, a, api.Gallery, q.Params())
	items := result.OrElse([]content.GalleryItem{})

	cards := lo.Map(items, func(item content.GalleryItem, _ int) GalleryCard {
		return GalleryCard{GalleryItem: item}
	})
	if thumbs != nil {
		resolveThumbnails(ctx, cards, thumbs)
	}

	featured, regular := lo.FilterReject(cards, func(c GalleryCard, _ int) bool {
		return c.IsFeatured
	})

	view := GalleryView{
		Query:      q,
		EventTypes: EventTypes,
		MediaTypes: MediaTypes,
		Featured:   featured,
		Regular:    regular,
	}
	if len(cards) == 0 {
		view.Message = galleryEmpty
	}

	return view, result.IsOk()
}

func resolveThumbnails(ctx context.Context, cards []GalleryCard, thumbs *thumbnail.Cache) {
	var g errgroup.Group
	g.SetLimit(thumbnailWorkers)
	for i := range cards {
		card := &cards[i]
		g.Go(func() error {
			card.Thumbnail = thumbs.Resolve(ctx, card.GalleryItem)
			return nil
		})
	}
	_ = g.Wait()
}
