package tui

import (
	"fmt"
	"strings"

	"github.com/bencyn-cli/bencyn/color"
	"github.com/bencyn-cli/bencyn/icon"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/router"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/charmbracelet/lipgloss"
	reflowwrap "github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

const (
	errorHeadline = "Oops! Something went wrong"
	errorBody     = "We encountered an error while loading this page. Please try again."
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case pageState:
		output = b.viewPage()
	case blogState:
		output = b.viewBlog()
	case galleryState:
		output = b.viewGallery()
	case lightboxState:
		output = b.viewLightbox()
	case formState:
		output = b.viewForm()
	case menuState:
		output = b.viewMenu()
	case gotoState:
		output = b.viewGoto()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title(router.Title(b.current.Page)),
			"",
			b.spinnerC.View() + " Loading...",
		},
	)
}

func (b *statefulBubble) viewPage() string {
	if b.isLoading(b.current.Page) && !b.hasView(b.current.Page) {
		return b.viewLoading()
	}

	return paddingStyle.Render(b.viewportC.View() + "\n" + b.helpC.View(b.keymap))
}

// hasView reports whether p settled at least once, so a reload keeps
// showing the old content instead of the spinner.
func (b *statefulBubble) hasView(p router.Page) bool {
	switch p {
	case router.Home:
		return b.home.Settled()
	case router.About:
		return b.about.Settled()
	case router.Services:
		return b.services.Settled()
	case router.Updates:
		return b.updates.Settled()
	case router.BlogPost:
		// one loader serves every post
		return false
	default:
		return true
	}
}

func (b *statefulBubble) viewBlog() string {
	return listExtraPaddingStyle.Render(b.searchC.View() + "\n\n" + b.blogC.View())
}

func (b *statefulBubble) viewGallery() string {
	return listExtraPaddingStyle.Render(b.galleryC.View())
}

func (b *statefulBubble) viewLightbox() string {
	cards := b.galleryCards()
	if b.lightboxAt >= len(cards) {
		return b.viewGallery()
	}

	return b.renderLines(true, []string{
		renderLightbox(cards[b.lightboxAt], b.lightboxAt, len(cards), b.width),
	})
}

func (b *statefulBubble) viewForm() string {
	info, _ := b.contact.View()
	errs := b.form.Errors()
	status, message := b.form.Status()

	field := func(label, name, input string) []string {
		out := []string{style.Bold(label), input}
		if e, ok := errs[name]; ok {
			out = append(out, style.Fg(style.ErrorColor)(e))
		}
		return append(out, "")
	}

	lines := []string{style.Title("Get In Touch"), ""}
	if b.isLoading(router.Contact) && len(info.Cards) == 0 {
		lines = append(lines, b.spinnerC.View()+" Loading...", "")
	} else {
		lines = append(lines, renderContactCards(info, b.width), "")
	}

	lines = append(lines, style.Title("Send Us a Message"), "")
	lines = append(lines, field("Full Name *", page.FieldName, b.fieldsC[0].View())...)
	lines = append(lines, field("Email Address *", page.FieldEmail, b.fieldsC[1].View())...)
	lines = append(lines, field("Phone Number", page.FieldPhone, b.fieldsC[2].View())...)
	lines = append(lines, field("Subject *", page.FieldSubject, b.fieldsC[3].View())...)
	lines = append(lines, field("Message *", page.FieldMessage, b.messageC.View())...)

	switch {
	case b.submitting:
		lines = append(lines, b.spinnerC.View()+" Sending...")
	case status == page.FormSucceeded:
		lines = append(lines, style.Fg(style.SuccessColor)(icon.Get(icon.Success)+" "+message))
	case status == page.FormFailed || status == page.FormInvalid:
		lines = append(lines, style.Fg(style.ErrorColor)(icon.Get(icon.Fail)+" "+message))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewMenu() string {
	return listExtraPaddingStyle.Render(b.menuC.View())
}

func (b *statefulBubble) viewGoto() string {
	lines := []string{
		style.Title("Go To"),
		"",
		b.gotoC.View(),
	}

	if r, ok := b.suggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s (%s)", icon.Get(icon.Search), r.Title, r.Pattern)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	var detail string
	if b.lastError != nil {
		detail = reflowwrap.String(style.Faint(b.lastError.Error()), b.width)
	}

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle(errorHeadline),
			"",
			icon.Get(icon.Fail) + " " + errorBody,
			"",
			detail,
			"",
			style.Fg(color.Orange)("Press r to try again"),
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
