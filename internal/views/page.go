// Package views renders the landing page with templ components.
package views

import (
	"fmt"

	"github.com/a-h/templ"

	"boco.agency/internal/models"
)

const (
	siteName       = "boco"
	bulletIconURL  = "https://cdn.prod.website-files.com/653b9d5d88756f8574352cb0/6707981d6373cf86d09d4db5_Vector.svg"
	stylesheetURL  = "https://cdn.tailwindcss.com"
	EmptyTitle     = "No Homepage Data Found"
	EmptyMessage   = "Please make sure you have created and published an entry for 'Homepage' in the content manager."
	LoadingMessage = "Loading..."
)

const marqueeCSS = `.marquee-container{overflow:hidden}` +
	`.marquee{width:max-content;animation:marquee 30s linear infinite}` +
	`@keyframes marquee{from{transform:translateX(0)}to{transform:translateX(-50%)}}`

// Options tunes links that differ between the live server and the static export
type Options struct {
	// ProjectHref returns the link that shows carousel slide i
	ProjectHref func(i int) string
}

// ServerProjectHref links slides through the ?project query of the root page
func ServerProjectHref(i int) string {
	return fmt.Sprintf("/?project=%d", i)
}

func (o Options) projectHref(i int) string {
	if o.ProjectHref == nil {
		return ServerProjectHref(i)
	}
	return o.ProjectHref(i)
}

// Page renders the whole document for a view state
func Page(view models.PageView, opts Options) templ.Component {
	switch view.State {
	case models.ViewLoading:
		return Layout(siteName, LoadingState())
	case models.ViewEmpty:
		return Layout(siteName, EmptyState())
	default:
		title := siteName
		if view.Home != nil && view.Home.Title != "" {
			title = view.Home.Title + " | " + siteName
		}
		return Layout(title, Landing(view, opts))
	}
}

// Layout wraps body in the HTML document shell
func Layout(title string, body templ.Component) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>`)
		hw.text(title)
		hw.raw(`</title><script src="`)
		hw.url(stylesheetURL)
		hw.raw(`"></script><style>`)
		hw.raw(marqueeCSS)
		hw.raw(`</style></head><body>`)
		hw.render(body)
		hw.raw(`</body></html>`)
	})
}

// LoadingState is shown until the homepage request resolves
func LoadingState() templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<div class="flex items-center justify-center min-h-screen bg-gray-900 text-white">`)
		hw.raw(`<div class="text-xl font-medium">`)
		hw.text(LoadingMessage)
		hw.raw(`</div></div>`)
	})
}

// EmptyState is the generic screen for a missing or unreachable homepage
func EmptyState() templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<div class="flex items-center justify-center min-h-screen bg-gray-900 text-white p-6">`)
		hw.raw(`<div class="text-center bg-gray-800 p-8 rounded-lg shadow-xl">`)
		hw.raw(`<h1 class="text-3xl font-bold mb-4">`)
		hw.text(EmptyTitle)
		hw.raw(`</h1><p class="text-gray-400">`)
		hw.text(EmptyMessage)
		hw.raw(`</p></div></div>`)
	})
}

// Landing renders every section of a Ready page
func Landing(view models.PageView, opts Options) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<div class="px-14 min-h-screen font-inter text-gray-300">`)
		hw.render(Header())
		if view.Home != nil {
			hw.render(Hero(*view.Home))
		}
		hw.render(Brands(view.Brands))
		hw.raw(`<hr>`)
		hw.render(ProjectCarousel(view, opts))
		if view.Home != nil {
			hw.render(Services(*view.Home))
		}
		hw.render(CaseStudies(view.CaseStudies))
		if view.Home != nil {
			hw.render(BrandCounter(*view.Home))
		}
		hw.raw(`<div class="text-center mt-20"><h2 class="text-4xl md:text-5xl font-bold text-blue-950">`)
		hw.raw(`Faster Websites. Higher Conversion. More Revenue.</h2>`)
		hw.raw(`<p class="mt-4 text-lg md:text-xl text-blue-950 font-medium">`)
		hw.raw(`Check out how our solutions have transformed businesses across different industries.</p></div>`)
		hw.raw(`<hr class="flex-grow mt-20">`)
		if view.Home != nil {
			hw.render(Footer(*view.Home))
		}
		hw.raw(`</div>`)
	})
}

// Header renders the brand mark and in-page navigation
func Header() templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<header class="p-4 md:p-6 flex justify-between items-center top-0 z-50">`)
		hw.raw(`<div class="lg:text-4xl text-2xl pl-4 font-bold text-blue-950">`)
		hw.text(siteName)
		hw.raw(`</div><nav class="hidden md:flex rounded-full border-purple-200 border justify-center p-4 space-x-10">`)
		for _, link := range []struct{ href, label string }{
			{"#hero", "Home"},
			{"#services", "Services"},
			{"#about", "About"},
			{"#contact", "Contact"},
		} {
			hw.raw(`<a href="`)
			hw.url(link.href)
			hw.raw(`" class="text-lg font-medium text-blue-950">`)
			hw.text(link.label)
			hw.raw(`</a>`)
		}
		hw.raw(`</nav><a href="#contact" class="bg-blue-950 text-white font-medium py-3 px-8 rounded-full">Talk to Us</a>`)
		hw.raw(`</header>`)
	})
}

// Hero renders the headline, bullets and hero image
func Hero(home models.HomeContent) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<section id="hero" class="flex flex-col-reverse md:flex-row p-4 md:p-12 lg:p-24 relative overflow-hidden">`)
		hw.raw(`<div class="md:w-1/2 flex flex-col items-center md:items-start text-center md:text-left z-10">`)
		hw.raw(`<h1 class="text-4xl md:text-6xl lg:text-5xl font-bold text-blue-950 mb-4">`)
		hw.text(home.Title)
		hw.raw(`</h1>`)
		if home.Subtitle != "" {
			hw.raw(`<p class="text-2xl font-semibold text-blue-950 mb-4">`)
			hw.text(home.Subtitle)
			hw.raw(`</p>`)
		}
		hw.raw(`<p class="lg:text-xl font-medium text-blue-950 mb-8">`)
		hw.text(home.Description)
		hw.raw(`</p>`)
		hw.render(bulletList("hero-bullets", "list-none lg:text-xl text-blue-950 font-bold mb-8 space-y-2", home.Bullets))
		hw.raw(`<div class="flex flex-col sm:flex-row gap-4">`)
		hw.raw(`<a href="#contact" class="text-blue-950 font-bold py-3 px-8 rounded-full border-blue-950 border">Audit My Website</a>`)
		hw.raw(`<a href="#contact" class="bg-blue-950 text-white font-medium py-3 px-8 rounded-full">Talk to Us</a>`)
		hw.raw(`</div></div>`)
		hw.raw(`<div class="md:w-1/2 flex justify-center md:justify-end z-10">`)
		if home.Image != nil {
			hw.raw(`<img src="`)
			hw.url(home.Image.URL)
			hw.raw(`" alt="Hero" class="w-full max-w-md lg:max-w-4xl rounded-2xl">`)
		} else {
			hw.raw(`<div class="w-full max-w-md h-64 bg-gray-200 rounded-2xl flex items-center justify-center text-gray-500">No Image</div>`)
		}
		hw.raw(`</div></section>`)
	})
}

// Brands renders the logo marquee. The set is written twice so the loop is seamless.
func Brands(set *models.BrandLogoSet) templ.Component {
	return component(func(hw *htmlWriter) {
		if set == nil || len(set.Logos) == 0 {
			return
		}
		hw.raw(`<div class="flex items-center my-2"><hr class="flex-grow border-gray-300">`)
		hw.raw(`<span class="mx-4 text-lg font-semibold text-blue-950 whitespace-nowrap">Trusted by Leading Brands</span>`)
		hw.raw(`<hr class="flex-grow border-gray-300"></div>`)
		hw.raw(`<section id="brands" class="py-8 overflow-hidden"><div class="marquee-container w-full">`)
		hw.raw(`<div class="marquee flex space-x-12 px-6">`)
		for _, altPrefix := range []string{"Brand Logo ", "Brand Logo Duplicate "} {
			for i, logo := range set.Logos {
				hw.raw(`<img src="`)
				hw.url(logo.URL)
				hw.raw(`" alt="`)
				hw.text(altPrefix)
				hw.int(i)
				hw.raw(`" class="h-16 w-auto">`)
			}
		}
		hw.raw(`</div></div></section>`)
	})
}

// ProjectCarousel renders the current project and its screenshots.
// Nothing is rendered when there are no projects.
func ProjectCarousel(view models.PageView, opts Options) templ.Component {
	return component(func(hw *htmlWriter) {
		current := view.CurrentProject()
		if current == nil {
			return
		}
		pos := view.Carousel
		hw.raw(`<section id="projects" class="py-16 flex flex-col items-center">`)
		hw.raw(`<div class="w-full max-w-5xl flex flex-col items-center py-6"><div class="text-center mb-8">`)
		hw.raw(`<h3 class="text-4xl md:text-6xl lg:text-5xl font-bold text-blue-950 mb-4">`)
		hw.text(current.Title)
		hw.raw(`</h3><p class="lg:text-xl font-medium text-blue-950 mb-8">`)
		hw.text(current.Description)
		hw.raw(`</p></div><div class="flex items-center justify-center w-full">`)
		if pos.Controls {
			hw.raw(`<a href="`)
			hw.url(opts.projectHref(pos.Previous))
			hw.raw(`" class="flex items-center justify-center w-12 h-12 bg-blue-950 text-white rounded-full mr-4" aria-label="Previous Project">&lsaquo;</a>`)
		}
		hw.raw(`<div class="flex space-x-4 overflow-x-auto py-8">`)
		for i, img := range current.Images {
			hw.raw(`<div class="rounded-3xl border-4 flex-shrink-0" data-image-id="`)
			hw.int(img.ID)
			hw.raw(`" style="width:220px;height:440px;display:flex;align-items:center;justify-content:center">`)
			hw.raw(`<img src="`)
			hw.url(img.URL)
			hw.raw(`" alt="Screenshot `)
			hw.int(i + 1)
			hw.raw(`" class="rounded-2xl object-cover"></div>`)
		}
		hw.raw(`</div>`)
		if pos.Controls {
			hw.raw(`<a href="`)
			hw.url(opts.projectHref(pos.Next))
			hw.raw(`" class="flex items-center justify-center w-12 h-12 bg-blue-950 text-white rounded-full ml-4" aria-label="Next Project">&rsaquo;</a>`)
		}
		hw.raw(`</div></div></section>`)
	})
}

// Services renders the services heading and card grid
func Services(home models.HomeContent) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<section id="services" class="py-16 md:py-24 lg:py-32 px-4 md:px-12 lg:px-24">`)
		hw.raw(`<div class="text-center mb-12"><h2 class="text-4xl md:text-5xl font-bold text-blue-950 mb-4">`)
		hw.text(home.ServicesHeading)
		hw.raw(`</h2></div><div class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-10">`)
		for _, svc := range home.Services {
			hw.raw(`<div class="service-card p-12 rounded-2xl border-purple-300 border bg-purple-50 flex flex-col items-center">`)
			if svc.Image != nil {
				hw.raw(`<img src="`)
				hw.url(svc.Image.URL)
				hw.raw(`" alt="`)
				hw.text(svc.Title)
				hw.raw(`" class="w-20 h-20 object-cover rounded-full mb-4 border-2 border-purple-200">`)
			}
			hw.raw(`<h3 class="text-2xl font-semibold text-blue-950 mb-2 text-center">`)
			hw.text(svc.Title)
			hw.raw(`</h3>`)
			hw.render(bulletList("", "text-blue-950 text-left list-inside space-y-1 mt-4", svc.Descriptions))
			hw.raw(`</div>`)
		}
		hw.raw(`</div></section>`)
	})
}

// CaseStudies renders the case-study cards. Cards are expected to be filtered already.
func CaseStudies(studies []models.CaseStudyEntry) templ.Component {
	return component(func(hw *htmlWriter) {
		if len(studies) == 0 {
			return
		}
		hw.raw(`<div class="text-center mb-8"><h2 class="text-4xl md:text-5xl font-bold text-blue-950">Check out my use cases</h2></div>`)
		hw.raw(`<section id="case-studies" class="flex flex-col md:flex-row gap-12 justify-center items-stretch py-12">`)
		for _, cs := range studies {
			if !cs.Renderable() {
				continue
			}
			hw.raw(`<div class="case-study bg-purple-50 rounded-2xl border-purple-300 border p-2 flex-1 max-w-xl flex flex-col" data-id="`)
			hw.int(cs.ID)
			hw.raw(`"><div class="flex justify-center -mt-8 mb-4">`)
			hw.raw(`<span class="bg-purple-200 text-black font-bold px-6 py-2 rounded-full text-lg">`)
			hw.text(cs.Category)
			hw.raw(`</span></div><img src="`)
			hw.url(cs.Image.URL)
			hw.raw(`" alt="`)
			hw.text(cs.Title)
			hw.raw(`" class="rounded-xl mb-4 w-full h-64 object-cover"><div class="mb-4">`)
			hw.raw(`<span class="font-bold text-xl text-blue-950">`)
			hw.text(cs.Title)
			hw.raw(`</span><span class="text-blue-950 block">`)
			hw.text(cs.Description)
			hw.raw(`</span></div>`)
			hw.raw(`<div class="flex justify-between text-center border-t border-b border-purple-200 py-4 mb-4">`)
			for _, stat := range cs.Stats {
				hw.raw(`<div class="stat flex-1"><div class="font-bold text-blue-950 text-lg">`)
				hw.text(stat.Value)
				hw.raw(`</div><div class="text-gray-500 text-xs">`)
				hw.text(stat.Label)
				hw.raw(`</div></div>`)
			}
			hw.raw(`</div><a href="`)
			hw.url(cs.Link)
			hw.raw(`" class="mt-auto text-blue-950 font-semibold underline text-center block">Read Full Case Study &rarr;</a></div>`)
		}
		hw.raw(`</section>`)
	})
}

// BrandCounter renders the "N+" brands block
func BrandCounter(home models.HomeContent) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<section id="about" class="py-16 md:py-24 px-4 md:px-12 lg:px-24 text-center bg-purple-50 border-purple-300 border">`)
		hw.raw(`<h2 class="text-6xl md:text-7xl font-extrabold text-blue-950 mb-4">`)
		hw.int(home.BrandCount)
		hw.raw(`+</h2><p class="text-2xl font-bold text-blue-950 mb-2">`)
		hw.text(home.BrandsTitle)
		hw.raw(`</p><p class="text-lg text-blue-950 max-w-3xl mx-auto">`)
		hw.text(home.BrandsDescription)
		hw.raw(`</p></section>`)
	})
}

// Footer renders the copyright line
func Footer(home models.HomeContent) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<footer id="contact" class="py-8 text-center text-gray-500 text-sm"><p>`)
		hw.text(home.FooterText)
		hw.raw(`</p></footer>`)
	})
}

func bulletList(id string, class string, items []string) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<ul`)
		if id != "" {
			hw.raw(` id="`)
			hw.text(id)
			hw.raw(`"`)
		}
		hw.raw(` class="`)
		hw.text(class)
		hw.raw(`">`)
		for _, item := range items {
			hw.raw(`<li class="flex items-center space-x-2"><img src="`)
			hw.url(bulletIconURL)
			hw.raw(`" loading="lazy" alt=""><span class="pl-2">`)
			hw.text(item)
			hw.raw(`</span></li>`)
		}
		hw.raw(`</ul>`)
	})
}
