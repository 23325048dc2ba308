package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/icon"
	"github.com/bencyn-cli/bencyn/key"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/router"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/bencyn-cli/bencyn/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// renderPage renders the current viewport page followed by the footer.
func (b *statefulBubble) renderPage() string {
	width := util.Max(b.width, 20)

	var body string
	switch b.current.Page {
	case router.Home:
		view, _ := b.home.View()
		body = renderHome(view, width)
	case router.About:
		view, _ := b.about.View()
		body = renderAbout(view, width)
	case router.Services:
		view, _ := b.services.View()
		body = renderServices(view, width)
	case router.BlogPost:
		view, _ := b.post.View()
		body = renderBlogPost(view, width)
	case router.Updates:
		view, _ := b.updates.View()
		body = renderUpdates(view, width)
	default:
		body = renderNotFound(b.current.Path, width)
	}

	if b.footer.Status() != page.Ready {
		return body
	}
	footer, _ := b.footer.View()
	return body + "\n\n" + renderFooter(footer, width)
}

func wrap(s string, width int) string {
	return wordwrap.String(s, width)
}

func blocks(parts ...string) string {
	return strings.Join(lo.Compact(parts), "\n\n")
}

func accent(name string) lipgloss.Color {
	if name == page.ColorGreen {
		return style.Green
	}
	return style.Orange
}

func showURLs() bool {
	return viper.GetBool(key.TUIShowURLs)
}

func link(url string) string {
	if url == "" || !showURLs() {
		return ""
	}
	return style.Faint(icon.Get(icon.Link) + " " + url)
}

// cardWidth leaves room for the border and padding of style.Card.
func cardWidth(width int) int {
	return util.Max(width-4, 10)
}

// formatDate prints ISO dates long form and anything else unchanged.
func formatDate(s string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return s
}

func renderHome(v page.HomeView, width int) string {
	stats := lo.Map(v.Stats, func(s page.Stat, _ int) string {
		return style.Bold(style.Fg(style.Orange)(s.Number)) + " " + style.Faint(s.Label)
	})

	var hero string
	if v.HeroImage != nil {
		hero = lines(style.Fg(style.Green)(icon.Get(icon.Image)+" "+v.HeroImage.Title), link(v.HeroImage.ImageURL))
	}

	features := lo.Map(v.Features, func(f page.Feature, _ int) string {
		return style.Card(cardWidth(width), style.Orange)(lines(f.Icon+" "+style.Bold(f.Title), wrap(f.Description, cardWidth(width)-2)))
	})

	var testimonials string
	if len(v.Testimonials) > 0 {
		testimonials = blocks(append(
			[]string{style.Title("What Our Members Say")},
			lo.Map(v.Testimonials, func(t content.Testimonial, _ int) string {
				return renderTestimonial(t, width)
			})...,
		)...)
	}

	return blocks(
		style.Title(v.Headline),
		wrap(v.Intro, width),
		hero,
		strings.Join(stats, "   "),
		strings.Join(features, "\n"),
		testimonials,
		style.Fg(style.Green)(wrap(v.Callout, width)),
	)
}

func renderTestimonial(t content.Testimonial, width int) string {
	stars := strings.Repeat(icon.Get(icon.Star), util.Max(util.Min(t.Rating, 5), 0))
	who := style.Bold(t.Name)
	if t.Role != "" {
		who += style.Faint(", " + t.Role)
	}
	return style.Card(cardWidth(width), style.Green)(lines(
		style.Fg(style.Yellow)(stars),
		style.Italic(wrap("“"+t.Message+"”", cardWidth(width)-2)),
		who,
	))
}

func renderAbout(v page.AboutView, width int) string {
	story := blocks(lo.Map(v.Story, func(p string, _ int) string { return wrap(p, width) })...)

	var image string
	switch {
	case v.StoryImage != nil:
		image = lines(style.Fg(style.Green)(icon.Get(icon.Image)+" "+v.StoryImage.Title), link(v.StoryImage.ImageURL))
	case v.StoryCard != nil:
		image = style.Card(cardWidth(width), style.Orange)(lines(style.Bold(v.StoryCard.Title), style.Faint(v.StoryCard.Subtitle)))
	}

	values := lo.Map(v.Values, func(val content.AboutValue, _ int) string {
		return style.Card(cardWidth(width), style.Green)(lines(val.Icon+" "+style.Bold(val.Title), wrap(val.Description, cardWidth(width)-2)))
	})

	timeline := lo.Map(v.Timeline, func(t content.AboutTimelineItem, _ int) string {
		return lines(
			style.Fg(style.Orange)(style.Bold(t.Year))+"  "+style.Bold(t.Title),
			wrap(t.Description, width),
		)
	})

	return blocks(
		style.Title(v.StoryTitle),
		story,
		image,
		style.Title(v.MissionTitle),
		wrap(v.Mission, width),
		style.Title(v.VisionTitle),
		wrap(v.Vision, width),
		lines(style.Title(v.ValuesTitle), style.Faint(wrap(v.ValuesSubtitle, width))),
		strings.Join(values, "\n"),
		lines(style.Title(v.TimelineTitle), style.Faint(wrap(v.TimelineSubtitle, width))),
		strings.Join(timeline, "\n\n"),
	)
}

func renderServices(v page.ServicesView, width int) string {
	var header string
	if v.HeaderImage != nil {
		header = lines(style.Fg(style.Green)(icon.Get(icon.Image)+" "+v.HeaderImage.Title), link(v.HeaderImage.ImageURL))
	}

	cards := lo.Map(v.Services, func(s page.ServiceCard, _ int) string {
		features := lo.Map(s.Features, func(f string, _ int) string {
			return style.Fg(accent(s.Color))(icon.Get(icon.Success)) + " " + f
		})
		return style.Card(cardWidth(width), accent(s.Color))(lines(
			s.Icon+" "+style.Bold(s.Title),
			wrap(s.Description, cardWidth(width)-2),
			strings.Join(features, "\n"),
		))
	})

	return blocks(
		style.Title("Our Services"),
		header,
		strings.Join(cards, "\n"),
	)
}

func renderBlogPost(v page.BlogPostView, width int) string {
	if v.Post == nil {
		return blocks(
			style.ErrorTitle(lo.Ternary(v.Error != "", v.Error, "Post not found")),
			style.Faint("Press esc to return to the blog."),
		)
	}

	p := v.Post
	meta := joinParts([]string{
		style.Fg(style.Orange)(p.Category),
		p.Author,
		formatDate(p.CreatedDate),
		lo.Ternary(p.Views > 0, util.Quantify(p.Views, "view", "views"), ""),
	})

	images := lo.Map(p.Images, func(img content.BlogImage, _ int) string {
		caption := lo.Ternary(img.Caption != "", img.Caption, img.AltText)
		return lines(style.Fg(style.Green)(icon.Get(icon.Image)+" "+caption), link(img.ImageURL))
	})

	videos := lo.Map(p.Videos, func(vid content.BlogVideo, _ int) string {
		return lines(style.Fg(style.Green)(icon.Get(icon.Video)+" "+vid.Title), link(videoURL(vid.EmbedURL, vid.VideoURL, vid.VideoFileURL)))
	})

	return blocks(
		style.Title(p.Title),
		meta,
		link(p.FeaturedImageURL),
		blocks(lo.Map(v.Paragraphs, func(s string, _ int) string { return wrap(s, width) })...),
		strings.Join(images, "\n"),
		strings.Join(videos, "\n"),
	)
}

var priorityColors = map[string]lipgloss.Color{
	"high":   style.Red,
	"medium": style.Yellow,
	"low":    style.Mint,
}

func renderUpdates(v page.UpdatesView, width int) string {
	if len(v.Updates) == 0 {
		return blocks(
			style.Title("Latest Updates"),
			style.Bold(v.Message),
			style.Faint(v.Hint),
		)
	}

	items := lo.Map(v.Updates, func(u content.Update, _ int) string {
		c, ok := priorityColors[u.Priority]
		if !ok {
			c = style.Subtext
		}
		return style.Card(cardWidth(width), c)(lines(
			style.Tag(style.Base, c)(util.Capitalize(u.Type))+" "+style.Bold(u.Title),
			style.Faint(formatDate(u.CreatedDate)),
			wrap(u.Content, cardWidth(width)-2),
		))
	})

	return blocks(style.Title("Latest Updates"), strings.Join(items, "\n"))
}

func renderNotFound(path string, width int) string {
	hint := "Press m to open the menu."
	if r, ok := router.Closest(path).Get(); ok {
		hint = fmt.Sprintf("Did you mean %s? Press m to open the menu.", style.Fg(style.Orange)(r.Pattern))
	}
	return blocks(
		style.ErrorTitle("Page Not Found"),
		wrap(fmt.Sprintf("Nothing lives at %s.", path), width),
		hint,
	)
}

func renderContactCards(v page.ContactView, width int) string {
	cards := lo.Map(v.Cards, func(c page.InfoCard, _ int) string {
		return style.Card(cardWidth(width), style.Orange)(lines(c.Icon+" "+style.Bold(c.Title), strings.Join(c.Details, "\n")))
	})
	return strings.Join(cards, "\n")
}

func renderFooter(v page.FooterView, width int) string {
	contact := lines(
		style.Bold(style.Fg(style.Orange)(v.Brand)),
		icon.Get(icon.Address)+" "+v.Address,
		icon.Get(icon.Phone)+" "+v.Phone,
		icon.Get(icon.Email)+" "+v.Email,
		lo.Ternary(v.Hours != "", icon.Get(icon.Clock)+" "+v.Hours, ""),
	)

	links := func(title string, ls []page.Link) string {
		return style.Bold(title) + "\n" + strings.Join(lo.Map(ls, func(l page.Link, _ int) string {
			return style.Faint(l.Label)
		}), " • ")
	}

	var socials string
	if len(v.Socials) > 0 {
		socials = strings.Join(lo.Map(v.Socials, func(s page.Social, _ int) string {
			return lo.Ternary(showURLs(), s.Network+" "+style.Faint(s.URL), s.Network)
		}), "\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(style.BorderColor).
		Width(width).
		Render(blocks(
			contact,
			links("Quick Links", v.QuickLinks),
			links("Our Services", v.ServiceLinks),
			socials,
			style.Faint(v.Copyright),
		))
}

// renderLightbox shows one gallery card in full.
func renderLightbox(card page.GalleryCard, index, total, width int) string {
	kind := lo.Ternary(card.IsVideo(), icon.Get(icon.Video)+" Video", icon.Get(icon.Image)+" Photo")

	var media string
	switch {
	case card.IsVideo():
		media = lines(
			style.Faint("Thumbnail: "+card.Thumbnail.Source.String()+lo.Ternary(card.Thumbnail.Label != "", " ("+card.Thumbnail.Label+")", "")),
			link(videoURL(card.EmbedURL, card.VideoURL, card.VideoFileURL)),
		)
	default:
		media = link(card.ImageURL)
	}

	return style.Card(cardWidth(width), style.Orange)(blocks(
		style.Title(card.Title),
		joinParts([]string{kind, util.Capitalize(card.EventType), formatDate(card.EventDate)}),
		wrap(card.Description, cardWidth(width)-2),
		media,
		style.Faint(fmt.Sprintf("%d / %d", index+1, total)),
	))
}

func videoURL(embed, url, file string) string {
	return lo.CoalesceOrEmpty(embed, url, file)
}

func categoryLabel(category string) string {
	if category == "" || category == "all" {
		return style.Faint("(all categories)")
	}
	return style.Faint("(" + category + ")")
}

func galleryLabel(q page.GalleryQuery) string {
	label := func(choices []page.Choice, value string) string {
		c, ok := lo.Find(choices, func(c page.Choice) bool { return c.Value == value })
		if !ok {
			return choices[0].Label
		}
		return c.Label
	}
	return style.Faint("(" + label(page.EventTypes, q.EventType) + ", " + label(page.MediaTypes, q.MediaType) + ")")
}

func lines(parts ...string) string {
	return strings.Join(lo.Compact(parts), "\n")
}
