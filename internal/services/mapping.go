package services

import (
	"fmt"
	"net/url"
	"strings"

	"boco.agency/internal/content"
	"boco.agency/internal/models"
)

// AssetResolver turns the relative upload paths the CMS returns into absolute URLs.
// API and asset host are the same configured content URL.
type AssetResolver struct {
	base string
}

// NewAssetResolver creates an AssetResolver rooted at baseURL
func NewAssetResolver(baseURL string) (AssetResolver, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return AssetResolver{}, fmt.Errorf("invalid asset base url: %q", baseURL)
	}
	return AssetResolver{base: strings.TrimRight(u.String(), "/")}, nil
}

// Resolve returns ref joined onto the base, absolute refs unchanged, "" for empty refs
func (r AssetResolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	if strings.HasPrefix(ref, "//") {
		return ref
	}
	return r.base + "/" + strings.TrimLeft(ref, "/")
}

func (r AssetResolver) image(m *content.Media) *models.Image {
	if m == nil {
		return nil
	}
	resolved := r.Resolve(m.URL)
	if resolved == "" {
		return nil
	}
	return &models.Image{ID: m.ID, URL: resolved}
}

func (r AssetResolver) images(ms []content.Media) []models.Image {
	out := make([]models.Image, 0, len(ms))
	for i := range ms {
		if img := r.image(&ms[i]); img != nil {
			out = append(out, *img)
		}
	}
	return out
}

// MapHome projects the homepage record. A nil record maps to nil.
func MapHome(rec *content.HomepageRecord, assets AssetResolver) *models.HomeContent {
	if rec == nil {
		return nil
	}

	services := make([]models.ServiceCard, 0, len(rec.ServicesList))
	for i := range rec.ServicesList {
		svc := &rec.ServicesList[i]
		services = append(services, models.ServiceCard{
			Title:        svc.Title,
			Descriptions: nonNilStrings(svc.Description),
			Image:        assets.image(svc.Image),
		})
	}

	return &models.HomeContent{
		Title:             rec.HeroTitle,
		Subtitle:          rec.HeroSubtitle,
		Description:       rec.HeroDescription,
		Bullets:           nonNilStrings(rec.HeroBullets),
		Image:             assets.image(rec.HeroImage),
		BrandCount:        rec.BrandsCount,
		BrandsTitle:       rec.BrandsTitle,
		BrandsDescription: rec.BrandsDescription,
		ServicesHeading:   rec.Service,
		Services:          services,
		FooterText:        rec.FooterCopyrightText,
	}
}

// MapBrands takes the logo list of the first brand record.
// Zero records map to nil, not to an empty set.
func MapBrands(recs []content.BrandRecord, assets AssetResolver) *models.BrandLogoSet {
	if len(recs) == 0 {
		return nil
	}
	return &models.BrandLogoSet{Logos: assets.images(recs[0].Logo)}
}

// MapProjects projects the project list. An empty list maps to nil.
func MapProjects(recs []content.ProjectRecord, assets AssetResolver) []models.ProjectEntry {
	if len(recs) == 0 {
		return nil
	}
	out := make([]models.ProjectEntry, 0, len(recs))
	for i := range recs {
		out = append(out, models.ProjectEntry{
			Title:       recs[i].Title,
			Description: recs[i].Description,
			Images:      assets.images(recs[i].Images),
		})
	}
	return out
}

// MapCaseStudies renames case-study fields and defaults missing stats to an empty list
func MapCaseStudies(recs []content.CaseStudyRecord, assets AssetResolver) []models.CaseStudyEntry {
	out := make([]models.CaseStudyEntry, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		stats := make([]models.Stat, 0, len(rec.Stat))
		for _, s := range rec.Stat {
			stats = append(stats, models.Stat{ID: s.ID, Label: s.Label, Value: s.Value})
		}
		out = append(out, models.CaseStudyEntry{
			ID:          rec.ID,
			Title:       rec.Title,
			Category:    rec.Category,
			Description: rec.Description,
			Image:       assets.image(rec.MainImage),
			Stats:       stats,
			Link:        rec.Link,
		})
	}
	return out
}

// VisibleCaseStudies drops cards without a title or main image
func VisibleCaseStudies(in []models.CaseStudyEntry) []models.CaseStudyEntry {
	out := make([]models.CaseStudyEntry, 0, len(in))
	for _, cs := range in {
		if cs.Renderable() {
			out = append(out, cs)
		}
	}
	return out
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
