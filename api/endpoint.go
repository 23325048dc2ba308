// Package api talks to the content backend.
//
// It knows where each resource lives (Registry), how to fetch it with a
// bounded timeout (Client), and how to turn whatever JSON comes back into a
// list of records (Normalize) regardless of whether the backend paginates.
package api

import (
	"net/url"
	"sort"
	"strings"

	"github.com/bencyn-cli/bencyn/key"
	"github.com/spf13/viper"
)

// Name identifies a content resource.
type Name string

const (
	Contact             Name = "contact"
	ContactInformation  Name = "contact-information"
	Services            Name = "services"
	Testimonials        Name = "testimonials"
	HeroImages          Name = "hero-images"
	PageImages          Name = "page-images"
	BlogPosts           Name = "blog-posts"
	Updates             Name = "updates"
	Gallery             Name = "gallery"
	AboutPage           Name = "about-page"
	AboutStory          Name = "about-story"
	AboutMission        Name = "about-mission"
	AboutVision         Name = "about-vision"
	AboutValuesHeader   Name = "about-values-header"
	AboutTimelineHeader Name = "about-timeline-header"
	AboutValues         Name = "about-values"
	AboutTimelineItems  Name = "about-timeline-items"
)

// paths lists every resource relative to the base URL.
var paths = map[Name]string{
	Contact:             "/api/contact/",
	ContactInformation:  "/api/contact-information/",
	Services:            "/api/services/",
	Testimonials:        "/api/testimonials/",
	HeroImages:          "/api/hero-images/",
	PageImages:          "/api/page-images/",
	BlogPosts:           "/api/blog-posts/",
	Updates:             "/api/updates/",
	Gallery:             "/api/gallery/",
	AboutPage:           "/api/about-page/",
	AboutStory:          "/api/about-story/",
	AboutMission:        "/api/about-mission/",
	AboutVision:         "/api/about-vision/",
	AboutValuesHeader:   "/api/about-values-header/",
	AboutTimelineHeader: "/api/about-timeline-header/",
	AboutValues:         "/api/about-values/",
	AboutTimelineItems:  "/api/about-timeline-items/",
}

// Endpoint is an immutable resource location.
type Endpoint struct {
	name Name
	url  string
}

func (e Endpoint) Name() Name {
	return e.name
}

func (e Endpoint) URL() string {
	return e.url
}

func (e Endpoint) String() string {
	return e.url
}

// Registry resolves resource names against a base URL.
// The base is not validated: a bad base makes every request fail the same way.
type Registry struct {
	base      string
	endpoints map[Name]Endpoint
}

// NewRegistry builds every endpoint for base once.
func NewRegistry(base string) *Registry {
	base = strings.TrimRight(base, "/")
	endpoints := make(map[Name]Endpoint, len(paths))
	for name, path := range paths {
		endpoints[name] = Endpoint{name: name, url: base + path}
	}

	return &Registry{base: base, endpoints: endpoints}
}

// RegistryFromConfig uses api.base_url.
func RegistryFromConfig() *Registry {
	return NewRegistry(viper.GetString(key.APIBaseURL))
}

func (r *Registry) Base() string {
	return r.base
}

// Get returns the endpoint for name. Unknown names yield an endpoint with
// an empty URL, which fails at request time like any unreachable resource.
func (r *Registry) Get(name Name) Endpoint {
	if e, ok := r.endpoints[name]; ok {
		return e
	}
	return Endpoint{name: name}
}

// BlogPost is the single-item endpoint blog-posts/{id}/.
func (r *Registry) BlogPost(id string) Endpoint {
	return Endpoint{
		name: BlogPosts,
		url:  r.endpoints[BlogPosts].url + url.PathEscape(id) + "/",
	}
}

// All lists the endpoints ordered by name.
func (r *Registry) All() []Endpoint {
	all := make([]Endpoint, 0, len(r.endpoints))
	for _, e := range r.endpoints {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].name < all[j].name })
	return all
}
