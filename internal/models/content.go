package models

// HomeContent is the homepage single-type record as the page renders it
type HomeContent struct {
	Title             string        `json:"title"`
	Subtitle          string        `json:"subtitle"`
	Description       string        `json:"description"`
	Bullets           []string      `json:"bullets"`
	Image             *Image        `json:"image,omitempty"`
	BrandCount        int           `json:"brand_count"`
	BrandsTitle       string        `json:"brands_title"`
	BrandsDescription string        `json:"brands_description"`
	ServicesHeading   string        `json:"services_heading"`
	Services          []ServiceCard `json:"services"`
	FooterText        string        `json:"footer_text"`
}

// ServiceCard is one entry of the services grid
type ServiceCard struct {
	Title        string   `json:"title"`
	Descriptions []string `json:"descriptions"`
	Image        *Image   `json:"image,omitempty"`
}

// BrandLogoSet holds the logos of the "trusted by" marquee
type BrandLogoSet struct {
	Logos []Image `json:"logos"`
}

// Stat is one label/value cell of a case study card
type Stat struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// CaseStudyEntry is one case study card
type CaseStudyEntry struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       *Image `json:"image,omitempty"`
	Stats       []Stat `json:"stats"`
	Link        string `json:"link"`
}

// Renderable reports whether the card has the title and main image it needs
func (c CaseStudyEntry) Renderable() bool {
	return c.Title != "" && c.Image != nil && c.Image.URL != ""
}
