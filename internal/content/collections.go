package content

import (
	"context"
	"net/url"
)

// Collection paths, relative to /api.
const (
	PathHomepage    = "/homepage"
	PathBrands      = "/brands"
	PathProjects    = "/projects"
	PathCaseStudies = "/case-studies"
)

// Media is an uploaded file reference. URL is usually relative to the CMS host.
type Media struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// ServiceRecord is one entry of the homepage services_list component.
type ServiceRecord struct {
	Title       string   `json:"service_title"`
	Description []string `json:"service_description"`
	Image       *Media   `json:"service_image"`
}

// HomepageRecord is the homepage single-type record.
type HomepageRecord struct {
	HeroTitle           string          `json:"hero_title"`
	HeroSubtitle        string          `json:"hero_subtitle"`
	HeroDescription     string          `json:"hero_description"`
	HeroBullets         []string        `json:"hero_bullets"`
	HeroImage           *Media          `json:"hero_image"`
	BrandsCount         int             `json:"brands_count"`
	BrandsTitle         string          `json:"brands_title"`
	BrandsDescription   string          `json:"brands_description"`
	Service             string          `json:"service"`
	ServicesList        []ServiceRecord `json:"services_list"`
	FooterCopyrightText string          `json:"footer_copyright_text"`
}

// BrandRecord is one record of the brands collection.
type BrandRecord struct {
	Logo []Media `json:"logo"`
}

// ProjectRecord is one record of the projects collection.
type ProjectRecord struct {
	Title       string  `json:"project_title"`
	Description string  `json:"project_description"`
	Images      []Media `json:"project_images"`
}

// StatRecord is one stat pair attached to a case study.
type StatRecord struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// CaseStudyRecord is one record of the case-studies collection.
type CaseStudyRecord struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	MainImage   *Media       `json:"main_image"`
	Stat        []StatRecord `json:"stat"`
	Link        string       `json:"case_study_link"`
}

type singleEnvelope[T any] struct {
	Data *T `json:"data"`
}

type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// HomepageQuery expands the hero image and every service image.
func HomepageQuery() url.Values {
	q := url.Values{}
	q.Set("populate[hero_image]", "true")
	q.Set("populate[services_list][populate]", "service_image")
	return q
}

// PopulateAll expands every first-level relation.
func PopulateAll() url.Values {
	return url.Values{"populate": {"*"}}
}

// Homepage returns the homepage record, or nil when none is published.
func (c *Client) Homepage(ctx context.Context) (*HomepageRecord, error) {
	var env singleEnvelope[HomepageRecord]
	if err := c.Get(ctx, PathHomepage, HomepageQuery(), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Brands returns every brand record.
func (c *Client) Brands(ctx context.Context) ([]BrandRecord, error) {
	var env listEnvelope[BrandRecord]
	if err := c.Get(ctx, PathBrands, PopulateAll(), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Projects returns every project record in CMS order.
func (c *Client) Projects(ctx context.Context) ([]ProjectRecord, error) {
	var env listEnvelope[ProjectRecord]
	if err := c.Get(ctx, PathProjects, PopulateAll(), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CaseStudies returns every case-study record in CMS order.
func (c *Client) CaseStudies(ctx context.Context) ([]CaseStudyRecord, error) {
	var env listEnvelope[CaseStudyRecord]
	if err := c.Get(ctx, PathCaseStudies, PopulateAll(), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
