package services

import (
	"fmt"
	"strings"

	"boco.agency/internal/models"
)

// Direction is a carousel step
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

// ParseDirection accepts the names and arrow-key aliases the page controls send
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "next", "right", "d":
		return DirectionNext, nil
	case "previous", "prev", "left", "a":
		return DirectionPrevious, nil
	default:
		return "", fmt.Errorf("invalid direction: %s", raw)
	}
}

// Carousel is the bounded index over the projects list.
// The index always stays in [0, max(0, count-1)].
type Carousel struct {
	index int
	count int
}

// NewCarousel creates a Carousel over count projects, starting at the first one
func NewCarousel(count int) *Carousel {
	c := &Carousel{}
	c.Reset(count)
	return c
}

// Reset points the carousel at a new project list and rewinds to 0
func (c *Carousel) Reset(count int) {
	if count < 0 {
		count = 0
	}
	c.count = count
	c.index = 0
}

// Index returns the current position
func (c *Carousel) Index() int {
	return c.index
}

// Len returns the number of projects
func (c *Carousel) Len() int {
	return c.count
}

// Seek jumps to i. Anything outside the list falls back to the first project.
func (c *Carousel) Seek(i int) {
	if i < 0 || i >= c.count {
		c.index = 0
		return
	}
	c.index = i
}

// Next moves forward, wrapping from the last project to the first
func (c *Carousel) Next() int {
	c.index = nextIndex(c.index, c.count)
	return c.index
}

// Previous moves back, wrapping from the first project to the last
func (c *Carousel) Previous() int {
	c.index = previousIndex(c.index, c.count)
	return c.index
}

// Step moves the carousel in a direction.
// Returns the new index and any error.
func (c *Carousel) Step(d Direction) (int, error) {
	switch d {
	case DirectionNext:
		return c.Next(), nil
	case DirectionPrevious:
		return c.Previous(), nil
	default:
		return c.index, fmt.Errorf("invalid direction: %s", d)
	}
}

// Position reports the current index and both neighbours without moving
func (c *Carousel) Position() models.CarouselPosition {
	return models.CarouselPosition{
		Index:    c.index,
		Count:    c.count,
		Previous: previousIndex(c.index, c.count),
		Next:     nextIndex(c.index, c.count),
		Controls: c.count > 0,
	}
}

func nextIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i == n-1 {
		return 0
	}
	return i + 1
}

func previousIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i == 0 {
		return n - 1
	}
	return i - 1
}
