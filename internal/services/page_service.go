package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"boco.agency/internal/config"
	"boco.agency/internal/content"
	"boco.agency/internal/models"
)

// ContentSource is the subset of the content client a page load needs
type ContentSource interface {
	Homepage(ctx context.Context) (*content.HomepageRecord, error)
	Brands(ctx context.Context) ([]content.BrandRecord, error)
	Projects(ctx context.Context) ([]content.ProjectRecord, error)
	CaseStudies(ctx context.Context) ([]content.CaseStudyRecord, error)
}

// LoadObserver receives the outcome of each finished page load
type LoadObserver interface {
	ObservePageLoad(state string, elapsed time.Duration)
}

// PageOption configures a PageService
type PageOption func(*PageService)

// WithFetchMode selects independent or gated fetching
func WithFetchMode(mode config.FetchMode) PageOption {
	return func(s *PageService) {
		s.mode = mode
	}
}

// WithTimeout bounds a whole page load
func WithTimeout(d time.Duration) PageOption {
	return func(s *PageService) {
		s.timeout = d
	}
}

// WithLogger sets the logger used for fetch failures
func WithLogger(l *zap.Logger) PageOption {
	return func(s *PageService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoadObserver reports page load outcomes to o
func WithLoadObserver(o LoadObserver) PageOption {
	return func(s *PageService) {
		s.observer = o
	}
}

// PageService runs the fetch sequence behind every page load
type PageService struct {
	source   ContentSource
	assets   AssetResolver
	mode     config.FetchMode
	timeout  time.Duration
	logger   *zap.Logger
	observer LoadObserver
}

// NewPageService creates a new PageService
func NewPageService(source ContentSource, assets AssetResolver, opts ...PageOption) *PageService {
	s := &PageService{
		source: source,
		assets: assets,
		mode:   config.FetchIndependent,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load runs a full page load and returns the page once every chain has resolved
func (s *PageService) Load(ctx context.Context) *Page {
	page := s.Start(ctx)
	<-page.Done()
	return page
}

// Start begins a page load and returns the page immediately in the Loading state.
// Chains write into the page as they resolve; Done is closed when all of them have.
func (s *PageService) Start(ctx context.Context) *Page {
	page := newPage()
	start := time.Now()

	cancel := func() {}
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}

	// Chains report failures through page state only, so the group context
	// is never cancelled by a sibling.
	g, gctx := errgroup.WithContext(ctx)
	switch s.mode {
	case config.FetchGated:
		g.Go(func() error {
			s.loadGatedChain(gctx, page)
			return nil
		})
	default:
		g.Go(func() error {
			s.loadHome(gctx, page)
			return nil
		})
		g.Go(func() error {
			s.loadBrands(gctx, page)
			return nil
		})
		g.Go(func() error {
			s.loadProjects(gctx, page)
			return nil
		})
	}
	g.Go(func() error {
		s.loadCaseStudies(gctx, page)
		return nil
	})

	go func() {
		_ = g.Wait()
		page.finishLoading()
		state := page.State()
		if s.observer != nil {
			s.observer.ObservePageLoad(state.String(), time.Since(start))
		}
		s.logger.Debug("page load finished",
			zap.String("state", state.String()),
			zap.String("mode", string(s.mode)),
			zap.Duration("elapsed", time.Since(start)))
		cancel()
		close(page.done)
	}()

	return page
}

func (s *PageService) loadHome(ctx context.Context, page *Page) {
	defer page.finishLoading()

	rec, err := s.source.Homepage(ctx)
	if err != nil {
		s.logFailure(content.PathHomepage, err)
		return
	}
	if rec == nil {
		s.logger.Info("no homepage record published")
		return
	}
	home := MapHome(rec, s.assets)
	page.commit(ctx, func(p *Page) {
		p.home = home
	})
}

func (s *PageService) loadBrands(ctx context.Context, page *Page) {
	recs, err := s.source.Brands(ctx)
	if err != nil {
		s.logFailure(content.PathBrands, err)
		return
	}
	brands := MapBrands(recs, s.assets)
	page.commit(ctx, func(p *Page) {
		p.brands = brands
	})
}

func (s *PageService) loadProjects(ctx context.Context, page *Page) {
	recs, err := s.source.Projects(ctx)
	if err != nil {
		s.logFailure(content.PathProjects, err)
		return
	}
	projects := MapProjects(recs, s.assets)
	page.commit(ctx, func(p *Page) {
		p.setProjects(projects)
	})
}

// loadGatedChain only asks for brands and projects once a homepage exists.
// Any failure along the chain leaves the homepage absent.
func (s *PageService) loadGatedChain(ctx context.Context, page *Page) {
	defer page.finishLoading()

	rec, err := s.source.Homepage(ctx)
	if err != nil {
		s.logFailure(content.PathHomepage, err)
		return
	}
	if rec == nil {
		s.logger.Info("no homepage record published, skipping brands and projects")
		return
	}

	brandRecs, err := s.source.Brands(ctx)
	if err != nil {
		s.logFailure(content.PathBrands, err)
		return
	}
	projectRecs, err := s.source.Projects(ctx)
	if err != nil {
		s.logFailure(content.PathProjects, err)
		return
	}

	home := MapHome(rec, s.assets)
	brands := MapBrands(brandRecs, s.assets)
	projects := MapProjects(projectRecs, s.assets)
	page.commit(ctx, func(p *Page) {
		p.home = home
		p.brands = brands
		p.setProjects(projects)
	})
}

func (s *PageService) loadCaseStudies(ctx context.Context, page *Page) {
	recs, err := s.source.CaseStudies(ctx)
	if err != nil {
		s.logFailure(content.PathCaseStudies, err)
		return
	}
	studies := MapCaseStudies(recs, s.assets)
	page.commit(ctx, func(p *Page) {
		p.caseStudies = studies
	})
}

func (s *PageService) logFailure(path string, err error) {
	s.logger.Warn("content fetch failed",
		zap.String("path", path),
		zap.String("kind", string(content.KindOf(err))),
		zap.Error(err))
}

// Page is the view state of one page load. Each slot has exactly one writer chain.
type Page struct {
	mu          sync.RWMutex
	loading     bool
	home        *models.HomeContent
	brands      *models.BrandLogoSet
	projects    []models.ProjectEntry
	caseStudies []models.CaseStudyEntry
	carousel    *Carousel
	done        chan struct{}
}

func newPage() *Page {
	return &Page{
		loading:     true,
		caseStudies: []models.CaseStudyEntry{},
		carousel:    NewCarousel(0),
		done:        make(chan struct{}),
	}
}

// commit applies a state write unless the load was cancelled first.
func (p *Page) commit(ctx context.Context, write func(*Page)) {
	if ctx.Err() != nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	write(p)
}

func (p *Page) setProjects(projects []models.ProjectEntry) {
	p.projects = projects
	p.carousel.Reset(len(projects))
}

func (p *Page) finishLoading() {
	p.mu.Lock()
	p.loading = false
	p.mu.Unlock()
}

// Done is closed once every fetch chain has resolved
func (p *Page) Done() <-chan struct{} {
	return p.done
}

// State returns Loading until the homepage chain resolves, then Empty or Ready
func (p *Page) State() models.ViewState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stateLocked()
}

func (p *Page) stateLocked() models.ViewState {
	switch {
	case p.loading:
		return models.ViewLoading
	case p.home == nil:
		return models.ViewEmpty
	default:
		return models.ViewReady
	}
}

// Home returns the homepage snapshot, nil when absent
func (p *Page) Home() *models.HomeContent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.home
}

// Brands returns the brand logos, nil when absent
func (p *Page) Brands() *models.BrandLogoSet {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.brands
}

// Projects returns the project list, nil when absent
func (p *Page) Projects() []models.ProjectEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.projects
}

// CaseStudies returns every mapped case study, including ones that will not render
func (p *Page) CaseStudies() []models.CaseStudyEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.caseStudies
}

// SelectProject moves the carousel to i, falling back to 0 when out of range
func (p *Page) SelectProject(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.carousel.Seek(i)
}

// StepProject moves the carousel one slide in d
func (p *Page) StepProject(d Direction) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.carousel.Step(d)
}

// View captures the page for rendering
func (p *Page) View() models.PageView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return models.PageView{
		State:       p.stateLocked(),
		Home:        p.home,
		Brands:      p.brands,
		Projects:    p.projects,
		CaseStudies: VisibleCaseStudies(p.caseStudies),
		Carousel:    p.carousel.Position(),
	}
}
