package page

import (
	"strings"

	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// textField maps one view field to its source in a live record R and to
// the value shown when that source is missing or blank.
type textField[R, V any] struct {
	name     string
	fallback string
	extract  func(R) string
	assign   func(*V, string)
}

// fill assigns every field of view from record, falling back per field.
// It returns how many fields came from the record.
func fill[R, V any](view *V, fields []textField[R, V], record mo.Option[R]) (live int) {
	r, present := record.Get()
	for _, f := range fields {
		value := ""
		if present {
			value = strings.TrimSpace(f.extract(r))
		}
		if value == "" {
			log.Debugf("page: %s: using default", f.name)
			value = f.fallback
		} else {
			live++
		}
		f.assign(view, value)
	}
	return live
}

// Home

var homeFeatures = []Feature{
	{Icon: "💰", Title: "Secure Savings", Description: "Safe and reliable susu collection services with transparent processes."},
	{Icon: "📈", Title: "Financial Growth", Description: "Build your financial future with our structured savings plans."},
	{Icon: "🤝", Title: "Trusted Partner", Description: "Years of experience serving our community with integrity."},
	{Icon: "⚡", Title: "Quick Access", Description: "Fast and easy access to your funds when you need them most."},
}

var homeStats = []Stat{
	{Number: "10+", Label: "Years Experience"},
	{Number: "5000+", Label: "Happy Clients"},
	{Number: "₵50M+", Label: "Assets Managed"},
	{Number: "98%", Label: "Satisfaction Rate"},
}

const (
	homeHeadline = "Your Trusted Financial Partner"
	homeIntro    = "B.C BENCYN SUSU provides secure, reliable susu collection services to help you achieve your financial goals. Join thousands of satisfied customers building wealth through our trusted platform."
	homeCallout  = "Ready to Start Your Savings Journey?"
)

// About

var defaultStory = []string{
	"B.C BENCYN SUSU was founded with a simple yet powerful mission: to make financial services accessible to everyone. We recognized the need for reliable, transparent susu collection services that honor traditional values while embracing modern financial practices.",
	"Over the years, we have grown from a small community-focused organization to a trusted financial partner serving thousands of clients. Our commitment to integrity, transparency, and customer satisfaction has been the cornerstone of our success.",
	"Today, we continue to innovate and expand our services, always keeping our clients' financial well-being at the heart of everything we do.",
}

var aboutFields = []textField[content.AboutPage, AboutView]{
	{
		name:     "story_title",
		fallback: "Our Story",
		extract:  func(r content.AboutPage) string { return lo.CoalesceOrEmpty(r.StoryTitle, r.Title) },
		assign:   func(v *AboutView, s string) { v.StoryTitle = s },
	},
	{
		name:     "story_content",
		fallback: strings.Join(defaultStory, "\n\n"),
		extract:  func(r content.AboutPage) string { return lo.CoalesceOrEmpty(r.StoryContent, r.Content) },
		assign:   func(v *AboutView, s string) { v.Story = content.Paragraphs(content.PlainText(s)) },
	},
	{
		name:     "mission_title",
		fallback: "Our Mission",
		extract:  func(r content.AboutPage) string { return r.MissionTitle },
		assign:   func(v *AboutView, s string) { v.MissionTitle = s },
	},
	{
		name:     "mission_content",
		fallback: "To provide accessible, reliable, and transparent financial services that empower individuals and communities to achieve their financial goals and build lasting wealth through trusted susu collection practices.",
		extract:  func(r content.AboutPage) string { return r.MissionContent },
		assign:   func(v *AboutView, s string) { v.Mission = s },
	},
	{
		name:     "vision_title",
		fallback: "Our Vision",
		extract:  func(r content.AboutPage) string { return r.VisionTitle },
		assign:   func(v *AboutView, s string) { v.VisionTitle = s },
	},
	{
		name:     "vision_content",
		fallback: "To become the leading susu financial institution, recognized for our integrity, innovation, and commitment to transforming lives through accessible financial services across the region.",
		extract:  func(r content.AboutPage) string { return r.VisionContent },
		assign:   func(v *AboutView, s string) { v.Vision = s },
	},
	{
		name:     "values_title",
		fallback: "Our Core Values",
		extract:  func(r content.AboutPage) string { return r.ValuesTitle },
		assign:   func(v *AboutView, s string) { v.ValuesTitle = s },
	},
	{
		name:     "values_subtitle",
		fallback: "The principles that guide everything we do at B.C BENCYN SUSU.",
		extract:  func(r content.AboutPage) string { return r.ValuesSubtitle },
		assign:   func(v *AboutView, s string) { v.ValuesSubtitle = s },
	},
	{
		name:     "timeline_title",
		fallback: "Our Journey",
		extract:  func(r content.AboutPage) string { return r.TimelineTitle },
		assign:   func(v *AboutView, s string) { v.TimelineTitle = s },
	},
	{
		name:     "timeline_subtitle",
		fallback: "Key milestones in our growth and development.",
		extract:  func(r content.AboutPage) string { return r.TimelineSubtitle },
		assign:   func(v *AboutView, s string) { v.TimelineSubtitle = s },
	},
}

var defaultValues = []content.AboutValue{
	{Icon: "🎯", Title: "Integrity", Description: "We operate with the highest standards of honesty and transparency in all our dealings."},
	{Icon: "🤝", Title: "Trust", Description: "Building lasting relationships based on reliability and mutual respect."},
	{Icon: "💪", Title: "Excellence", Description: "Committed to delivering exceptional service and exceeding expectations."},
	{Icon: "🌱", Title: "Growth", Description: "Empowering our clients to achieve their financial goals and build wealth."},
}

var defaultTimeline = []content.AboutTimelineItem{
	{Year: "2014", Title: "Foundation", Description: "B.C BENCYN SUSU was established with a vision to provide accessible financial services."},
	{Year: "2017", Title: "Expansion", Description: "Expanded our services to reach more communities across the region."},
	{Year: "2020", Title: "Digital Transformation", Description: "Launched digital platforms to enhance customer experience and accessibility."},
	{Year: "2024", Title: "Innovation", Description: "Continuing to innovate and serve thousands of satisfied customers."},
}

// storyCard stands in for the story image when none is published.
var storyCard = Card{Title: "Trusted Financial Partner", Subtitle: "Over 10 years of dedicated service"}

// Services

const defaultServiceColor = ColorOrange

var serviceColors = map[string]string{
	"susu":     ColorOrange,
	"savings":  ColorGreen,
	"advisory": ColorOrange,
	"loans":    ColorGreen,
	"group":    ColorOrange,
	"digital":  ColorGreen,
}

var serviceFeatures = map[string][]string{
	"susu":     {"Flexible payment schedules", "Secure collection process", "Transparent record keeping", "Multiple contribution options"},
	"savings":  {"Goal-oriented savings", "Competitive interest rates", "Flexible withdrawal options", "Personalized plans"},
	"advisory": {"Personalized consultations", "Investment guidance", "Budget planning", "Financial education"},
	"loans":    {"Quick approval process", "Flexible repayment terms", "Competitive interest rates", "No hidden fees"},
	"group":    {"Group management tools", "Automated collections", "Transparent reporting", "Dedicated support"},
	"digital":  {"24/7 account access", "Mobile app available", "Secure transactions", "Real-time updates"},
}

var defaultServices = []ServiceCard{
	{Icon: "💵", Title: "Susu Collection", Type: "susu", Color: ColorOrange, Description: "Regular collection services with flexible payment schedules. Choose from daily, weekly, or monthly contributions."},
	{Icon: "💰", Title: "Savings Plans", Type: "savings", Color: ColorGreen, Description: "Structured savings plans designed to help you achieve your financial goals with competitive returns."},
	{Icon: "📊", Title: "Financial Advisory", Type: "advisory", Color: ColorOrange, Description: "Expert financial advice to help you make informed decisions about your money and investments."},
	{Icon: "🏦", Title: "Loan Services", Type: "loans", Color: ColorGreen, Description: "Accessible loan services with flexible repayment terms to meet your immediate financial needs."},
	{Icon: "👥", Title: "Group Susu", Type: "group", Color: ColorOrange, Description: "Organize group susu schemes for your community, workplace, or organization with our support."},
	{Icon: "📱", Title: "Digital Services", Type: "digital", Color: ColorGreen, Description: "Manage your susu account online with our secure digital platform. Access your account anytime, anywhere."},
}

// Blog, gallery and updates have no item defaults, only empty states.

var BlogCategories = []string{"all", "Financial Tips", "Company News", "Savings Guide", "Investment", "Community"}

const (
	blogEmpty     = "No articles found. Check back soon!"
	postNotFound  = "Post not found"
	galleryEmpty  = "No gallery items found. Check back soon!"
	updatesEmpty  = "No updates yet"
	updatesHint   = "Check back soon for the latest news and announcements"
	filterAll     = "all"
	addressJoiner = ", "
)

var EventTypes = []Choice{
	{Value: "all", Label: "All Events"},
	{Value: "meeting", Label: "Meetings"},
	{Value: "celebration", Label: "Celebrations"},
	{Value: "workshop", Label: "Workshops"},
	{Value: "community", Label: "Community"},
	{Value: "award", Label: "Awards"},
	{Value: "other", Label: "Other"},
}

var MediaTypes = []Choice{
	{Value: "all", Label: "All Media"},
	{Value: "image", Label: "Images"},
	{Value: "video", Label: "Videos"},
}

// Contact

type cardField struct {
	icon     string
	title    string
	fallback []string
	extract  func(content.ContactInformation) []string
}

var contactCards = []cardField{
	{
		icon:     "📍",
		title:    "Address",
		fallback: []string{"Your Business Address", "City, Country"},
		extract:  func(r content.ContactInformation) []string { return []string{r.AddressLine1, r.AddressLine2} },
	},
	{
		icon:     "📞",
		title:    "Phone",
		fallback: []string{"+233 XX XXX XXXX", "+233 XX XXX XXXX"},
		extract:  func(r content.ContactInformation) []string { return []string{r.PhonePrimary, r.PhoneSecondary} },
	},
	{
		icon:     "✉️",
		title:    "Email",
		fallback: []string{"info@bencynsusu.com", "support@bencynsusu.com"},
		extract:  func(r content.ContactInformation) []string { return []string{r.EmailPrimary, r.EmailSecondary} },
	},
	{
		icon:     "🕒",
		title:    "Business Hours",
		fallback: []string{"Monday - Friday: 8:00 AM - 6:00 PM", "Saturday: 9:00 AM - 2:00 PM"},
		extract:  func(r content.ContactInformation) []string { return []string{r.HoursWeekdays, r.HoursWeekend} },
	},
}

var footerFields = []textField[content.ContactInformation, FooterView]{
	{
		name:     "address",
		fallback: "Your Business Address, City, Country",
		extract:  func(r content.ContactInformation) string { return joinNonEmpty(addressJoiner, r.AddressLine1, r.AddressLine2) },
		assign:   func(v *FooterView, s string) { v.Address = s },
	},
	{
		name:     "phone",
		fallback: "+233 XX XXX XXXX",
		extract:  func(r content.ContactInformation) string { return r.PhonePrimary },
		assign:   func(v *FooterView, s string) { v.Phone = s },
	},
	{
		name:     "email",
		fallback: "info@bencynsusu.com",
		extract:  func(r content.ContactInformation) string { return r.EmailPrimary },
		assign:   func(v *FooterView, s string) { v.Email = s },
	},
	{
		name:    "hours",
		extract: func(r content.ContactInformation) string { return r.HoursWeekdays },
		assign:  func(v *FooterView, s string) { v.Hours = s },
	},
}

var footerQuickLinks = []Link{
	{Label: "Home", Path: "/"},
	{Label: "About Us", Path: "/about"},
	{Label: "Services", Path: "/services"},
	{Label: "Blog", Path: "/blog"},
	{Label: "Contact", Path: "/contact"},
}

var footerServiceLinks = []Link{
	{Label: "Susu Collection", Path: "/services"},
	{Label: "Savings Plans", Path: "/services"},
	{Label: "Financial Advisory", Path: "/services"},
	{Label: "Loan Services", Path: "/services"},
	{Label: "Digital Services", Path: "/services"},
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
