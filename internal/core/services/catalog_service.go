package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
)

type CabinDetail struct {
	Cabin        *domain.Cabin    `json:"cabana"`
	Slug         string           `json:"slug"`
	CoverURL     string           `json:"portada,omitempty"`
	GuestOptions []int            `json:"opciones_huespedes"`
	Guests       int              `json:"huespedes"`
	From         string           `json:"desde,omitempty"`
	To           string           `json:"hasta,omitempty"`
	Estimate     *domain.Estimate `json:"estimado,omitempty"`
}

type SearchRequest struct {
	From   string `json:"desde"`
	To     string `json:"hasta"`
	Guests int    `json:"huespedes"`
}

type SearchResult struct {
	From   string         `json:"desde"`
	To     string         `json:"hasta"`
	Nights int            `json:"noches"`
	Guests int            `json:"huespedes"`
	Cabins []domain.Cabin `json:"cabanas"`
}

type CatalogService struct {
	cabins   ports.CabinAPI
	services ports.ServiceAPI
	cache    ports.CatalogCache
	prefs    ports.SearchPrefsRepository
}

func NewCatalogService(cabins ports.CabinAPI, services ports.ServiceAPI, cache ports.CatalogCache, prefs ports.SearchPrefsRepository) *CatalogService {
	return &CatalogService{
		cabins:   cabins,
		services: services,
		cache:    cache,
		prefs:    prefs,
	}
}

func (s *CatalogService) Cabins(ctx context.Context) ([]domain.Cabin, error) {
	cached, ok, err := s.cache.GetCabins(ctx)
	if err != nil {
		log.Printf("Catalog cache read failed: %v", err)
	}

	if ok {
		return cached, nil
	}

	return s.load(ctx)
}

func (s *CatalogService) load(ctx context.Context) ([]domain.Cabin, error) {
	cabins, err := s.cabins.ListCabins(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cabins: %w", err)
	}

	if err := s.cache.SetCabins(ctx, cabins); err != nil {
		log.Printf("Catalog cache write failed: %v", err)
	}

	return cabins, nil
}

// Cabin serves from the cached list when possible and falls back to the detail endpoint.
func (s *CatalogService) Cabin(ctx context.Context, id int64) (*domain.Cabin, error) {
	if cached, ok, err := s.cache.GetCabins(ctx); err == nil && ok {
		for i := range cached {
			if cached[i].ID == id {
				c := cached[i]
				return &c, nil
			}
		}
	}

	cabin, err := s.cabins.GetCabin(ctx, id)
	if err != nil {
		var apiErr *ports.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return nil, ports.ErrNotFound
		}

		return nil, fmt.Errorf("get cabin %d: %w", id, err)
	}

	if cabin == nil || cabin.ID == 0 {
		return nil, ports.ErrNotFound
	}

	return cabin, nil
}

// Detail prices the stay only when both dates form a valid range.
func (s *CatalogService) Detail(ctx context.Context, id int64, q SearchRequest) (*CabinDetail, error) {
	cabin, err := s.Cabin(ctx, id)
	if err != nil {
		return nil, err
	}

	opts := cabin.GuestOptions()
	guests := min(max(q.Guests, 1), len(opts))

	detail := &CabinDetail{
		Cabin:        cabin,
		Slug:         cabin.Slug(),
		CoverURL:     cabin.CoverURL(),
		GuestOptions: opts,
		Guests:       guests,
		From:         q.From,
		To:           q.To,
	}

	if _, _, nights, err := parseStay(q.From, q.To); err == nil {
		est := domain.EstimateStay(nights, cabin.NightlyRate.Float(), nil)
		detail.Estimate = &est
	}

	return detail, nil
}

func (s *CatalogService) Search(ctx context.Context, sessionID string, req SearchRequest) (*SearchResult, error) {
	from, to, nights, err := parseStay(req.From, req.To)
	if err != nil {
		return nil, err
	}

	if req.Guests < 1 {
		return nil, invalid("huespedes", "Indica al menos un huésped.")
	}

	if sessionID != "" {
		prefs := domain.SearchPrefs{From: from, To: to, Guests: req.Guests}
		if err := s.prefs.Save(ctx, sessionID, prefs); err != nil {
			log.Printf("Failed to save search prefs for session %s: %v", sessionID, err)
		}
	}

	cabins, err := s.cabins.SearchAvailability(ctx, domain.AvailabilityQuery{From: from, To: to, Guests: req.Guests})
	if err != nil {
		return nil, rejection(err)
	}

	return &SearchResult{
		From:   from.String(),
		To:     to.String(),
		Nights: nights,
		Guests: req.Guests,
		Cabins: cabins,
	}, nil
}

// Prefill returns the last search of the session, nil when there is none.
func (s *CatalogService) Prefill(ctx context.Context, sessionID string) (*domain.SearchPrefs, error) {
	if sessionID == "" {
		return nil, nil
	}

	prefs, err := s.prefs.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("load search prefs: %w", err)
	}

	return prefs, nil
}

// Services lists the active add-ons offered during booking.
func (s *CatalogService) Services(ctx context.Context) ([]domain.Service, error) {
	all, err := s.services.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	active := make([]domain.Service, 0, len(all))
	for _, svc := range all {
		if svc.Active {
			active = append(active, svc)
		}
	}

	return active, nil
}

func (s *CatalogService) Invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("Catalog cache invalidation failed: %v", err)
	}
}

func (s *CatalogService) RunCacheRefresher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Background Worker started: refreshing cabin catalog every %s...", interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Background Worker stopped.")
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *CatalogService) refresh(ctx context.Context) {
	cabins, err := s.load(ctx)
	if err != nil {
		log.Printf("Error refreshing cabin catalog: %v", err)
		return
	}

	log.Printf("Cabin catalog refreshed with %d cabins.", len(cabins))
}

func (s *CatalogService) ForgetSearch(ctx context.Context, sessionID string) error {
	if err := s.prefs.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete search prefs: %w", err)
	}

	return nil
}

// RunPrefsCleanup drops search preferences of sessions idle for longer than maxAge.
func (s *CatalogService) RunPrefsCleanup(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Background Worker started: purging search preferences older than %s...", maxAge)

	for {
		select {
		case <-ctx.Done():
			log.Println("Search preferences cleanup stopped.")
			return
		case <-ticker.C:
			s.purgeStalePrefs(ctx, time.Now().Add(-maxAge))
		}
	}
}

func (s *CatalogService) purgeStalePrefs(ctx context.Context, before time.Time) {
	n, err := s.prefs.PurgeStale(ctx, before)
	if err != nil {
		log.Printf("Error purging search preferences: %v", err)
		return
	}

	if n > 0 {
		log.Printf("Purged %d stale search preferences.", n)
	}
}
