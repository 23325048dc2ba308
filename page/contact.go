package page

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/constant"
	"github.com/bencyn-cli/bencyn/content"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type InfoCard struct {
	Icon    string   `json:"icon"`
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

type ContactView struct {
	Cards []InfoCard `json:"cards"`
}

// ContactInfo builds the information cards from the first contact record.
// Only cards with at least one populated line are kept; when none are, or
// the record is missing, all four default cards are shown.
func (a *Assembler) ContactInfo(ctx context.Context) (ContactView, bool) {
	record := firstOrNone[content.ContactInformation](ctx, a, api.ContactInformation, nil)

	if r, ok := record.Get(); ok {
		var cards []InfoCard
		for _, f := range contactCards {
			details := lo.Compact(lo.Map(f.extract(r), func(s string, _ int) string {
				return strings.TrimSpace(s)
			}))
			if len(details) > 0 {
				cards = append(cards, InfoCard{Icon: f.icon, Title: f.title, Details: details})
			}
		}
		if len(cards) > 0 {
			return ContactView{Cards: cards}, true
		}
	}

	return ContactView{Cards: defaultContactCards()}, false
}

func defaultContactCards() []InfoCard {
	return lo.Map(contactCards, func(f cardField, _ int) InfoCard {
		return InfoCard{Icon: f.icon, Title: f.title, Details: append([]string(nil), f.fallback...)}
	})
}

type Social struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

type FooterView struct {
	Brand        string   `json:"brand"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Hours        string   `json:"hours,omitempty"`
	Socials      []Social `json:"socials"`
	QuickLinks   []Link   `json:"quick_links"`
	ServiceLinks []Link   `json:"service_links"`
	Copyright    string   `json:"copyright"`
}

// Footer is shown under every page and reads the same record as ContactInfo.
func (a *Assembler) Footer(ctx context.Context) (FooterView, bool) {
	record := firstOrNone[content.ContactInformation](ctx, a, api.ContactInformation, nil)
	return footerFrom(record, time.Now())
}

func footerFrom(record mo.Option[content.ContactInformation], now time.Time) (FooterView, bool) {
	view := FooterView{
		Brand:        constant.Brand,
		QuickLinks:   footerQuickLinks,
		ServiceLinks: footerServiceLinks,
		Socials:      []Social{},
		Copyright:    fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), constant.Brand),
	}

	live := fill(&view, footerFields, record)
	if r, ok := record.Get(); ok {
		for _, s := range []Social{
			{Network: "Facebook", URL: r.FacebookURL},
			{Network: "Twitter", URL: r.TwitterURL},
			{Network: "Instagram", URL: r.InstagramURL},
			{Network: "LinkedIn", URL: r.LinkedinURL},
		} {
			if s.URL != "" {
				view.Socials = append(view.Socials, s)
			}
		}
	}

	return view, live > 0
}
