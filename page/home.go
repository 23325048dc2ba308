package page

import (
	"context"
	"sync"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/content"
	"github.com/samber/mo"
)

const (
	ColorOrange = "orange"
	ColorGreen  = "green"
)

type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// Card is a titled block shown where an image is missing.
type Card struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type Link struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Choice is one value of a list filter.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type HomeView struct {
	Headline     string                `json:"headline"`
	Intro        string                `json:"intro"`
	HeroImage    *content.HeroImage    `json:"hero_image,omitempty"`
	Stats        []Stat                `json:"stats"`
	Features     []Feature             `json:"features"`
	Testimonials []content.Testimonial `json:"testimonials"`
	Callout      string                `json:"callout"`
}

// Home fetches the hero image and testimonials side by side. Either may
// fail on its own: the hero falls back to none, testimonials to an empty list.
func (a *Assembler) Home(ctx context.Context) (HomeView, bool) {
	var (
		wg           sync.WaitGroup
		hero         mo.Option[content.HeroImage]
		testimonials mo.Result[[]content.Testimonial]
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		hero = firstOrNone[content.HeroImage](ctx, a, api.HeroImages, nil)
	}()
	go func() {
		defer wg.Done()
		testimonials = list[content.Testimonial](ctx, a, api.Testimonials, nil)
	}()
	wg.Wait()

	view := HomeView{
		Headline:     homeHeadline,
		Intro:        homeIntro,
		HeroImage:    ptr(hero),
		Stats:        homeStats,
		Features:     homeFeatures,
		Testimonials: testimonials.OrElse([]content.Testimonial{}),
		Callout:      homeCallout,
	}

	if view.HeroImage != nil && view.HeroImage.ImageURL == "" {
		view.HeroImage = nil
	}

	return view, view.HeroImage != nil || len(view.Testimonials) > 0
}
