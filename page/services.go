package page

import (
	"context"
	"sync"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/content"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type ServiceCard struct {
	ID          int      `json:"id,omitempty"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"service_type"`
	Color       string   `json:"color"`
	Features    []string `json:"features"`
}

type ServicesView struct {
	HeaderImage *content.PageImage `json:"header_image,omitempty"`
	Services    []ServiceCard      `json:"services"`
}

// Services lists the published services, decorated with a colour and a
// feature list by type. A failed or empty fetch shows the six defaults.
func (a *Assembler) Services(ctx context.Context) (ServicesView, bool) {
	var (
		wg       sync.WaitGroup
		services mo.Result[[]content.Service]
		header   mo.Option[content.PageImage]
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		services = list[content.Service](ctx, a, api.Services, nil)
	}()
	go func() {
		defer wg.Done()
		header = firstOrNone[content.PageImage](ctx, a, api.PageImages, pageImageParams("services", "header"))
	}()
	wg.Wait()

	view := ServicesView{HeaderImage: ptr(header)}
	if view.HeaderImage != nil && view.HeaderImage.ImageURL == "" {
		view.HeaderImage = nil
	}

	records := services.OrElse(nil)
	if len(records) == 0 {
		view.Services = defaultServiceCards()
		return view, false
	}

	view.Services = lo.Map(records, func(s content.Service, _ int) ServiceCard {
		return decorate(s)
	})
	return view, true
}

func decorate(s content.Service) ServiceCard {
	color, ok := serviceColors[s.ServiceType]
	if !ok {
		color = defaultServiceColor
	}

	return ServiceCard{
		ID:          s.ID,
		Icon:        s.Icon,
		Title:       s.Title,
		Description: s.Description,
		Type:        s.ServiceType,
		Color:       color,
		Features:    featuresOf(s.ServiceType),
	}
}

func featuresOf(serviceType string) []string {
	features, ok := serviceFeatures[serviceType]
	if !ok {
		return []string{}
	}
	return append([]string(nil), features...)
}

func defaultServiceCards() []ServiceCard {
	return lo.Map(defaultServices, func(c ServiceCard, _ int) ServiceCard {
		c.Features = featuresOf(c.Type)
		return c
	})
}
