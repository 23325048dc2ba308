// Package content holds the records served by the content API.
package content

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

type HeroImage struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// PageImage is an image attached to a section of a page, e.g. page=about, section=story.
type PageImage struct {
	ID       int    `json:"id"`
	Page     string `json:"page"`
	Section  string `json:"section"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ServiceType string `json:"service_type"`
	Icon        string `json:"icon"`
}

type BlogImage struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
	AltText  string `json:"alt_text"`
	Order    int    `json:"order"`
}

type BlogVideo struct {
	ID           int    `json:"id"`
	VideoType    string `json:"video_type"`
	VideoURL     string `json:"video_url"`
	VideoFileURL string `json:"video_file_url"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	EmbedURL     string `json:"embed_url"`
	Order        int    `json:"order"`
}

// BlogPost is a published article. Content is sanitized HTML.
type BlogPost struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	Excerpt          string      `json:"excerpt"`
	Content          string      `json:"content"`
	Category         string      `json:"category"`
	Author           string      `json:"author"`
	FeaturedImageURL string      `json:"featured_image_url"`
	CreatedDate      string      `json:"created_date"`
	UpdatedDate      string      `json:"updated_date"`
	Views            int         `json:"views"`
	Images           []BlogImage `json:"images"`
	Videos           []BlogVideo `json:"videos"`
}

// Update is a short announcement. Type is one of announcement, alert,
// news or event and Priority one of high, medium or low.
type Update struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	CreatedDate string `json:"created_date"`
}

// GalleryItem is an image or a video from a company event.
// VideoType is youtube, vimeo or upload.
type GalleryItem struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	MediaType    string `json:"media_type"`
	EventType    string `json:"event_type"`
	EventDate    string `json:"event_date"`
	ImageURL     string `json:"image_url"`
	VideoType    string `json:"video_type"`
	VideoURL     string `json:"video_url"`
	VideoFileURL string `json:"video_file_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	EmbedURL     string `json:"embed_url"`
	IsFeatured   bool   `json:"is_featured"`
	Order        int    `json:"order"`
}

func (g GalleryItem) IsVideo() bool {
	return g.MediaType == "video"
}

type ContactInformation struct {
	AddressLine1   string `json:"address_line1"`
	AddressLine2   string `json:"address_line2"`
	PhonePrimary   string `json:"phone_primary"`
	PhoneSecondary string `json:"phone_secondary"`
	EmailPrimary   string `json:"email_primary"`
	EmailSecondary string `json:"email_secondary"`
	HoursWeekdays  string `json:"hours_weekdays"`
	HoursWeekend   string `json:"hours_weekend"`
	FacebookURL    string `json:"facebook_url"`
	TwitterURL     string `json:"twitter_url"`
	InstagramURL   string `json:"instagram_url"`
	LinkedinURL    string `json:"linkedin_url"`
}

// AboutSection covers story, mission, vision and the two section headers.
// Headers carry a subtitle, the others carry content.
type AboutSection struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Subtitle string `json:"subtitle"`
}

type AboutValue struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type AboutTimelineItem struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// AboutPage is the combined record served by the legacy about-page endpoint.
// Older deployments name the story fields plainly as title and content.
type AboutPage struct {
	StoryTitle       string              `json:"story_title"`
	StoryContent     string              `json:"story_content"`
	Title            string              `json:"title"`
	Content          string              `json:"content"`
	MissionTitle     string              `json:"mission_title"`
	MissionContent   string              `json:"mission_content"`
	VisionTitle      string              `json:"vision_title"`
	VisionContent    string              `json:"vision_content"`
	ValuesTitle      string              `json:"values_title"`
	ValuesSubtitle   string              `json:"values_subtitle"`
	TimelineTitle    string              `json:"timeline_title"`
	TimelineSubtitle string              `json:"timeline_subtitle"`
	Values           []AboutValue        `json:"values"`
	TimelineItems    []AboutTimelineItem `json:"timeline_items"`
}

// ContactMessage is the body of a contact form submission.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email_address"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
