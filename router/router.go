// Package router maps site paths to pages.
package router

import (
	"net/url"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Page names a screen of the site.
type Page string

const (
	Home     Page = "home"
	About    Page = "about"
	Services Page = "services"
	Contact  Page = "contact"
	Blog     Page = "blog"
	BlogPost Page = "blog-post"
	Updates  Page = "updates"
	Gallery  Page = "gallery"
	NotFound Page = "not-found"
)

type Route struct {
	Pattern string
	Page    Page
	Title   string
}

// Routes is the route table in menu order. Anything else is NotFound.
var Routes = []Route{
	{Pattern: "/", Page: Home, Title: "Home"},
	{Pattern: "/about", Page: About, Title: "About Us"},
	{Pattern: "/services", Page: Services, Title: "Services"},
	{Pattern: "/blog", Page: Blog, Title: "Blog"},
	{Pattern: "/blog/:id", Page: BlogPost, Title: "Article"},
	{Pattern: "/gallery", Page: Gallery, Title: "Gallery"},
	{Pattern: "/updates", Page: Updates, Title: "Updates"},
	{Pattern: "/contact", Page: Contact, Title: "Contact"},
}

// Menu lists the routes that need no parameters.
func Menu() []Route {
	return lo.Filter(Routes, func(r Route, _ int) bool {
		return !strings.Contains(r.Pattern, ":")
	})
}

type Match struct {
	Page   Page
	Path   string
	Params map[string]string
}

func (m Match) Param(name string) string {
	return m.Params[name]
}

// Resolve matches path against the route table. Trailing slashes, query
// strings and letter case of the static segments are ignored.
func Resolve(path string) Match {
	path = clean(path)
	segments := split(path)

	for _, r := range Routes {
		if params, ok := match(split(r.Pattern), segments); ok {
			return Match{Page: r.Page, Path: path, Params: params}
		}
	}

	return Match{Page: NotFound, Path: path, Params: map[string]string{}}
}

// Path builds the path of page, filling :name segments from params.
func Path(page Page, params map[string]string) string {
	r, ok := lo.Find(Routes, func(r Route) bool { return r.Page == page })
	if !ok {
		return "/"
	}

	segments := lo.Map(split(r.Pattern), func(s string, _ int) string {
		if name, isParam := strings.CutPrefix(s, ":"); isParam {
			return url.PathEscape(params[name])
		}
		return s
	})
	return "/" + strings.Join(segments, "/")
}

// Title of page as shown in the menu.
func Title(page Page) string {
	if r, ok := lo.Find(Routes, func(r Route) bool { return r.Page == page }); ok {
		return r.Title
	}
	return "Page Not Found"
}

// Suggest finds menu routes whose path or title fuzzily matches input, best first.
func Suggest(input string) []Route {
	input = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(input, "/")))
	if input == "" {
		return Menu()
	}

	type ranked struct {
		route    Route
		distance int
	}

	var found []ranked
	for _, r := range Menu() {
		best := -1
		for _, target := range []string{strings.TrimPrefix(r.Pattern, "/"), strings.ToLower(r.Title)} {
			if d := fuzzy.RankMatchFold(input, target); d >= 0 && (best < 0 || d < best) {
				best = d
			}
		}
		if best >= 0 {
			found = append(found, ranked{route: r, distance: best})
		}
	}

	slices.SortStableFunc(found, func(a, b ranked) int {
		return a.distance - b.distance
	})

	return lo.Map(found, func(r ranked, _ int) Route { return r.route })
}

// Closest is the menu route nearest to path by edit distance, for
// "did you mean" hints on the not found page.
func Closest(path string) mo.Option[Route] {
	path = clean(path)
	if path == "/" {
		return mo.None[Route]()
	}

	best := lo.MinBy(Menu(), func(a, b Route) bool {
		return levenshtein.Distance(path, a.Pattern) < levenshtein.Distance(path, b.Pattern)
	})
	if levenshtein.Distance(path, best.Pattern) > len(best.Pattern) {
		return mo.None[Route]()
	}
	return mo.Some(best)
}

func clean(path string) string {
	path, _, _ = strings.Cut(path, "?")
	path, _, _ = strings.Cut(path, "#")
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

func split(path string) []string {
	return lo.Compact(strings.Split(path, "/"))
}

func match(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	params := make(map[string]string)
	for i, p := range pattern {
		if name, isParam := strings.CutPrefix(p, ":"); isParam {
			value, err := url.PathUnescape(segments[i])
			if err != nil {
				return nil, false
			}
			params[name] = value
			continue
		}
		if !strings.EqualFold(p, segments[i]) {
			return nil, false
		}
	}
	return params, true
}
