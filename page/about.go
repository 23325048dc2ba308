package page

import (
	"context"
	"sync"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"
)

type AboutView struct {
	StoryTitle       string                      `json:"story_title"`
	Story            []string                    `json:"story"`
	StoryImage       *content.PageImage          `json:"story_image,omitempty"`
	StoryCard        *Card                       `json:"story_card,omitempty"`
	MissionTitle     string                      `json:"mission_title"`
	Mission          string                      `json:"mission"`
	VisionTitle      string                      `json:"vision_title"`
	Vision           string                      `json:"vision"`
	ValuesTitle      string                      `json:"values_title"`
	ValuesSubtitle   string                      `json:"values_subtitle"`
	Values           []content.AboutValue        `json:"values"`
	TimelineTitle    string                      `json:"timeline_title"`
	TimelineSubtitle string                      `json:"timeline_subtitle"`
	Timeline         []content.AboutTimelineItem `json:"timeline"`
}

// About reads the seven section resources concurrently. If any of them
// fails, the legacy combined record is tried, and failing that the page is
// built from defaults. The story image is fetched independently and never
// affects that chain.
func (a *Assembler) About(ctx context.Context) (AboutView, bool) {
	var (
		wg     sync.WaitGroup
		record mo.Option[content.AboutPage]
		image  mo.Option[content.PageImage]
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		record = a.aboutRecord(ctx)
	}()
	go func() {
		defer wg.Done()
		image = firstOrNone[content.PageImage](ctx, a, api.PageImages, pageImageParams("about", "story"))
	}()
	wg.Wait()

	var view AboutView
	live := fill(&view, aboutFields, record)

	view.Values = defaultValues
	view.Timeline = defaultTimeline
	if r, ok := record.Get(); ok {
		if len(r.Values) > 0 {
			view.Values = r.Values
			live++
		}
		if len(r.TimelineItems) > 0 {
			view.Timeline = r.TimelineItems
			live++
		}
	}

	if img, ok := image.Get(); ok && img.ImageURL != "" {
		view.StoryImage = &img
	} else {
		card := storyCard
		view.StoryCard = &card
	}

	return view, live > 0
}

func (a *Assembler) aboutRecord(ctx context.Context) mo.Option[content.AboutPage] {
	r, err := a.aboutSections(ctx)
	if err == nil {
		return mo.Some(r)
	}

	log.Warnf("page: about sections unavailable, trying legacy record: %s", err)
	return firstOrNone[content.AboutPage](ctx, a, api.AboutPage, nil)
}

// aboutSections merges the per-section resources into one record.
// The first failure cancels the remaining fetches.
func (a *Assembler) aboutSections(ctx context.Context) (content.AboutPage, error) {
	var (
		story, mission, vision, valuesHeader, timelineHeader []content.AboutSection
		values                                               []content.AboutValue
		timeline                                             []content.AboutTimelineItem
	)

	g, gctx := errgroup.WithContext(ctx)
	section := func(name api.Name, dst *[]content.AboutSection) {
		g.Go(func() error {
			records, err := list[content.AboutSection](gctx, a, name, nil).Get()
			*dst = records
			return err
		})
	}

	section(api.AboutStory, &story)
	section(api.AboutMission, &mission)
	section(api.AboutVision, &vision)
	section(api.AboutValuesHeader, &valuesHeader)
	section(api.AboutTimelineHeader, &timelineHeader)
	g.Go(func() error {
		var err error
		values, err = list[content.AboutValue](gctx, a, api.AboutValues, nil).Get()
		return err
	})
	g.Go(func() error {
		var err error
		timeline, err = list[content.AboutTimelineItem](gctx, a, api.AboutTimelineItems, nil).Get()
		return err
	})

	if err := g.Wait(); err != nil {
		return content.AboutPage{}, err
	}

	head := func(sections []content.AboutSection) content.AboutSection {
		if len(sections) == 0 {
			return content.AboutSection{}
		}
		return sections[0]
	}

	return content.AboutPage{
		StoryTitle:       head(story).Title,
		StoryContent:     head(story).Content,
		MissionTitle:     head(mission).Title,
		MissionContent:   head(mission).Content,
		VisionTitle:      head(vision).Title,
		VisionContent:    head(vision).Content,
		ValuesTitle:      head(valuesHeader).Title,
		ValuesSubtitle:   head(valuesHeader).Subtitle,
		TimelineTitle:    head(timelineHeader).Title,
		TimelineSubtitle: head(timelineHeader).Subtitle,
		Values:           values,
		TimelineItems:    timeline,
	}, nil
}
