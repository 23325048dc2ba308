package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/samber/lo"
)

// text accumulates a plain rendition of a page, one block per paragraph.
type text struct {
	sb strings.Builder
}

func (t *text) heading(s string) {
	if t.sb.Len() > 0 {
		t.sb.WriteString("\n")
	}
	t.sb.WriteString("# " + s + "\n\n")
}

func (t *text) line(format string, args ...any) {
	t.sb.WriteString(fmt.Sprintf(format, args...) + "\n")
}

func (t *text) para(s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	t.sb.WriteString(s + "\n\n")
}

func (t *text) bullets(items []string) {
	for _, item := range items {
		t.line("- %s", item)
	}
	if len(items) > 0 {
		t.sb.WriteString("\n")
	}
}

func writeText(out io.Writer, o *Output) error {
	var t text

	switch {
	case o.Home != nil:
		homeText(&t, o.Home)
	case o.About != nil:
		aboutText(&t, o.About)
	case o.Services != nil:
		t.heading("Our Services")
		for _, s := range o.Services.Services {
			t.line("%s %s", s.Icon, s.Title)
			t.para(s.Description)
			t.bullets(s.Features)
		}
	case o.Blog != nil:
		t.heading("Blog")
		if len(o.Blog.Posts) == 0 {
			t.para(o.Blog.Message)
		}
		for _, p := range o.Blog.Posts {
			t.line("[%d] %s", p.ID, p.Title)
			t.line("%s", strings.Join(lo.Compact([]string{p.Category, p.Author, p.CreatedDate}), " | "))
			t.para(content.PlainText(p.Excerpt))
		}
	case o.Post != nil:
		postText(&t, o.Post)
	case o.Gallery != nil:
		galleryText(&t, o.Gallery)
	case o.Updates != nil:
		t.heading("Latest Updates")
		if len(o.Updates.Updates) == 0 {
			t.para(o.Updates.Message)
			t.para(o.Updates.Hint)
		}
		for _, u := range o.Updates.Updates {
			t.line("[%s/%s] %s", u.Type, u.Priority, u.Title)
			t.line("%s", u.CreatedDate)
			t.para(u.Content)
		}
	case o.Contact != nil:
		t.heading("Get In Touch")
		for _, c := range o.Contact.Cards {
			t.line("%s %s", c.Icon, c.Title)
			t.bullets(c.Details)
		}
	case o.NotFound != nil:
		t.heading("Page Not Found")
		t.para("Nothing lives at " + o.NotFound.Path + ".")
		if o.NotFound.Suggestion != "" {
			t.para("Did you mean " + o.NotFound.Suggestion + "?")
		}
	}

	if o.Footer != nil {
		footerText(&t, o.Footer)
	}

	_, err := io.WriteString(out, t.sb.String())
	return err
}

func homeText(t *text, v *page.HomeView) {
	t.heading(v.Headline)
	t.para(v.Intro)
	if v.HeroImage != nil {
		t.line("Image: %s %s", v.HeroImage.Title, v.HeroImage.ImageURL)
		t.line("")
	}
	t.bullets(lo.Map(v.Stats, func(s page.Stat, _ int) string { return s.Number + " " + s.Label }))
	for _, f := range v.Features {
		t.line("%s %s: %s", f.Icon, f.Title, f.Description)
	}
	if len(v.Testimonials) > 0 {
		t.heading("What Our Members Say")
		for _, m := range v.Testimonials {
			t.para(fmt.Sprintf("%q %s, %d/5", m.Message, strings.Join(lo.Compact([]string{m.Name, m.Role}), ", "), m.Rating))
		}
	}
	t.para(v.Callout)
}

func aboutText(t *text, v *page.AboutView) {
	t.heading(v.StoryTitle)
	for _, p := range v.Story {
		t.para(p)
	}
	t.heading(v.MissionTitle)
	t.para(v.Mission)
	t.heading(v.VisionTitle)
	t.para(v.Vision)
	t.heading(v.ValuesTitle)
	t.para(v.ValuesSubtitle)
	t.bullets(lo.Map(v.Values, func(val content.AboutValue, _ int) string {
		return val.Title + ": " + val.Description
	}))
	t.heading(v.TimelineTitle)
	t.para(v.TimelineSubtitle)
	t.bullets(lo.Map(v.Timeline, func(item content.AboutTimelineItem, _ int) string {
		return item.Year + " " + item.Title + ": " + item.Description
	}))
}

func postText(t *text, v *page.BlogPostView) {
	if v.Post == nil {
		t.heading(v.Error)
		return
	}
	t.heading(v.Post.Title)
	t.line("%s", strings.Join(lo.Compact([]string{v.Post.Category, v.Post.Author, v.Post.CreatedDate}), " | "))
	t.line("")
	for _, p := range v.Paragraphs {
		t.para(p)
	}
	t.bullets(lo.Map(v.Post.Images, func(img content.BlogImage, _ int) string {
		return "Image: " + lo.CoalesceOrEmpty(img.Caption, img.AltText) + " " + img.ImageURL
	}))
	t.bullets(lo.Map(v.Post.Videos, func(vid content.BlogVideo, _ int) string {
		return "Video: " + vid.Title + " " + lo.CoalesceOrEmpty(vid.EmbedURL, vid.VideoURL, vid.VideoFileURL)
	}))
}

func galleryText(t *text, v *page.GalleryView) {
	t.heading("Gallery")
	if v.Message != "" {
		t.para(v.Message)
	}
	card := func(c page.GalleryCard) string {
		media := c.ImageURL
		if c.IsVideo() {
			media = lo.CoalesceOrEmpty(c.EmbedURL, c.VideoURL, c.VideoFileURL)
		}
		return fmt.Sprintf("[%s] %s (%s, %s) %s", c.MediaType, c.Title, c.EventType, c.EventDate, media)
	}
	if len(v.Featured) > 0 {
		t.line("Featured:")
		t.bullets(lo.Map(v.Featured, func(c page.GalleryCard, _ int) string { return card(c) }))
	}
	t.bullets(lo.Map(v.Regular, func(c page.GalleryCard, _ int) string { return card(c) }))
}

func footerText(t *text, v *page.FooterView) {
	t.heading(v.Brand)
	t.bullets(lo.Compact([]string{v.Address, v.Phone, v.Email, v.Hours}))
	t.bullets(lo.Map(v.Socials, func(s page.Social, _ int) string { return s.Network + ": " + s.URL }))
	t.para(v.Copyright)
}
