// Package content holds the hard-coded copy and portfolio of the landing page.
package content

type NavItem struct {
	Label string
	Href  string
}

// NavItems are the navbar links. The "Book a Call" button is separate.
var NavItems = []NavItem{
	{"Home", "#"},
	{"About", "#about"},
	{"Works", "#works"},
	{"Contact", "#booking"},
}

var FooterLinks = []NavItem{
	{"Home", "#"},
	{"About", "#about"},
	{"Works", "#works"},
	{"Book a Call", "#booking"},
	{"Privacy Policy", "#"},
}

type SocialLink struct {
	Label string
	Href  string
	Icon  string
}

var SocialLinks = []SocialLink{
	{"Facebook", "#", "facebook"},
	{"Instagram", "#", "instagram"},
	{"LinkedIn", "#", "linkedin"},
	{"WhatsApp", "#", "message-circle"},
}

type Pillar struct {
	Icon        string
	Title       string
	Description string
}

var Pillars = []Pillar{
	{"target", "Strategy-Driven Design", "Every design decision is rooted in data and aligned with your business objectives."},
	{"zap", "Conversion-Focused UX", "User experiences crafted to guide visitors naturally toward action."},
	{"rocket", "High-Performance Development", "Lightning-fast websites built with modern technology that scales with you."},
}

type Project struct {
	ID          int
	Name        string
	Category    string
	BeforeImage string
	AfterImage  string
}

func (p Project) Key() int { return p.ID }

const unsplash = "https://images.unsplash.com/"
const imageParams = "?w=600&h=400&fit=crop&auto=format"

func img(id string) string { return unsplash + id + imageParams }

var Projects = []Project{
	{1, "Luxe Finance", "Fintech", img("photo-1557821552-17105176677c"), img("photo-1551288049-bebda4e38f71")},
	{2, "Artisan Coffee", "E-commerce", img("photo-1495474472287-4d71bcdd2085"), img("photo-1501339847302-ac426a4a7cbb")},
	{3, "Nova Tech", "SaaS", img("photo-1460925895917-afdab827c52f"), img("photo-1551434678-e076c223a692")},
	{4, "Verde Studio", "Agency", img("photo-1467232004584-a241de8bcf5d"), img("photo-1542744094-24638eff58bb")},
	{5, "Wellness Hub", "Health", img("photo-1571019613454-1cb2f99b2d8b"), img("photo-1540497077202-7c8a3999166f")},
	{6, "Primo Real Estate", "Property", img("photo-1560518883-ce09059eeffa"), img("photo-1600596542815-ffad4c1539a9")},
}

const (
	SiteName    = "Quwa Studio"
	Tagline     = "Web Design · Branding · Growth"
	Copyright   = "© 2026 Quwa Studio. All rights reserved."
	Description = "Quwa Studio designs high-performance websites for brands that want growth, clarity, and authority."
	AboutText   = "Quwa Studio is a creative web design agency focused on building digital experiences that feel simple, elegant, and powerful. We combine strategy, design, and technology to help brands communicate clearly and grow faster."
)
