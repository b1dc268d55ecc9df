package models

import "fmt"

// ViewState is the top-level render state of the landing page
type ViewState int

const (
	ViewLoading ViewState = iota
	ViewEmpty
	ViewReady
)

func (s ViewState) String() string {
	switch s {
	case ViewLoading:
		return "loading"
	case ViewEmpty:
		return "empty"
	case ViewReady:
		return "ready"
	default:
		return fmt.Sprintf("ViewState(%d)", int(s))
	}
}

// MarshalText encodes the state by name
func (s ViewState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PageView is everything the landing page renders, captured after a load
type PageView struct {
	State       ViewState        `json:"state"`
	Home        *HomeContent     `json:"home,omitempty"`
	Brands      *BrandLogoSet    `json:"brands,omitempty"`
	Projects    []ProjectEntry   `json:"projects,omitempty"`
	CaseStudies []CaseStudyEntry `json:"case_studies"`
	Carousel    CarouselPosition `json:"carousel"`
}

// CurrentProject returns the project under the carousel index, or nil
func (v PageView) CurrentProject() *ProjectEntry {
	if v.Carousel.Index < 0 || v.Carousel.Index >= len(v.Projects) {
		return nil
	}
	return &v.Projects[v.Carousel.Index]
}

// HasBrands reports whether the brand marquee has anything to show
func (v PageView) HasBrands() bool {
	return v.Brands != nil && len(v.Brands.Logos) > 0
}
