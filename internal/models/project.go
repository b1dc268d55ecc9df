package models

// Image is a resolved, absolute image reference
type Image struct {
	ID  int    `json:"id,omitempty"`
	URL string `json:"url"`
}

// ProjectEntry is one slide of the projects carousel
type ProjectEntry struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Images      []Image `json:"images"`
}

// CarouselPosition describes the selected project and its neighbours
type CarouselPosition struct {
	Index    int  `json:"index"`
	Count    int  `json:"count"`
	Previous int  `json:"previous"`
	Next     int  `json:"next"`
	Controls bool `json:"controls"` // false when there is nothing to step through
}
