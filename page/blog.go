package page

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/log"
)

// BlogQuery filters the blog list. "all" and the empty string mean no filter.
type BlogQuery struct {
	Category string `json:"category"`
	Search   string `json:"search"`
}

// Params omits category when it is "all" and search when it is blank.
func (q BlogQuery) Params() url.Values {
	params := url.Values{}
	if q.Category != "" && q.Category != filterAll {
		params.Set("category", q.Category)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		params.Set("search", search)
	}
	return params
}

type BlogView struct {
	Query      BlogQuery          `json:"query"`
	Categories []string           `json:"categories"`
	Posts      []content.BlogPost `json:"posts"`
	Message    string             `json:"message,omitempty"`
}

// Blog lists posts matching q. Failures yield an empty list; an empty list
// carries the empty-state message.
func (a *Assembler) Blog(ctx context.Context, q BlogQuery) (BlogView, bool) {
	if q.Category == "" {
		q.Category = filterAll
	}

	result := list[content.BlogPost](ctx, a, api.BlogPosts, q.Params())
	view := BlogView{
		Query:      q,
		Categories: BlogCategories,
		Posts:      result.OrElse([]content.BlogPost{}),
	}
	if len(view.Posts) == 0 {
		view.Message = blogEmpty
	}

	return view, result.IsOk()
}

type BlogPostView struct {
	Post       *content.BlogPost `json:"post,omitempty"`
	Paragraphs []string          `json:"paragraphs,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// BlogPost reads a single post. The response is one object, not a list.
func (a *Assembler) BlogPost(ctx context.Context, id string) (BlogPostView, bool) {
	notFound := BlogPostView{Error: postNotFound}

	raw, err := a.fetcher.Get(ctx, a.registry.BlogPost(id), nil)
	if err != nil {
		log.Warnf("page: blog post %s: %s", id, err)
		return notFound, false
	}

	var post content.BlogPost
	if err := json.Unmarshal(raw, &post); err != nil {
		log.Warnf("page: blog post %s: %s", id, err)
		return notFound, false
	}

	return BlogPostView{
		Post:       &post,
		Paragraphs: content.Paragraphs(content.PlainText(post.Content)),
	}, true
}
