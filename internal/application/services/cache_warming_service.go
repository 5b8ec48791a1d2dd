package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/medilinkx/benefits-backend/internal/domain/providers"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
)

// CacheWarmingService pre-populates the cache with the hospital catalog
// and scheme list, the two reads every screen hits
type CacheWarmingService struct {
	hospitalRepo repositories.HospitalRepository
	schemeRepo   repositories.SchemeRepository
	cache        providers.CacheProvider
}

// NewCacheWarmingService creates a new cache warming service
func NewCacheWarmingService(
	hospitalRepo repositories.HospitalRepository,
	schemeRepo repositories.SchemeRepository,
	cache providers.CacheProvider,
) *CacheWarmingService {
	return &CacheWarmingService{
		hospitalRepo: hospitalRepo,
		schemeRepo:   schemeRepo,
		cache:        cache,
	}
}

// WarmCache warms the cache with frequently accessed data
func (s *CacheWarmingService) WarmCache(ctx context.Context) error {
	log.Println("Starting cache warming...")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.warmHospitals(gctx) })
	g.Go(func() error { return s.warmSchemes(gctx) })

	if err := g.Wait(); err != nil {
		log.Printf("Cache warming finished with errors: %v", err)
		return err
	}

	log.Println("Cache warming completed")
	return nil
}

func (s *CacheWarmingService) warmHospitals(ctx context.Context) error {
	active := true
	hospitals, err := s.hospitalRepo.List(ctx, repositories.HospitalFilter{
		IsActive: &active,
		Limit:    50,
		Offset:   0,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch hospitals: %w", err)
	}

	items := make(map[string][]byte)
	for _, hospital := range hospitals {
		data, err := json.Marshal(hospital)
		if err != nil {
			log.Printf("Failed to marshal hospital %s: %v", hospital.ID, err)
			continue
		}
		items[fmt.Sprintf("hospital:%s", hospital.ID)] = data
	}

	if len(items) > 0 {
		if err := s.cache.SetMulti(ctx, items, 300); err != nil {
			return fmt.Errorf("failed to cache hospitals: %w", err)
		}
		log.Printf("Warmed cache with %d hospitals", len(items))
	}

	return nil
}

func (s *CacheWarmingService) warmSchemes(ctx context.Context) error {
	schemes, err := s.schemeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch schemes: %w", err)
	}

	data, err := json.Marshal(schemes)
	if err != nil {
		return fmt.Errorf("failed to marshal schemes: %w", err)
	}

	if err := s.cache.Set(ctx, "schemes:list", data, 1800); err != nil {
		return fmt.Errorf("failed to cache schemes: %w", err)
	}

	log.Printf("Warmed cache with %d schemes", len(schemes))
	return nil
}

// StartPeriodicWarming runs WarmCache immediately and then on a ticker
// until the context is cancelled
func (s *CacheWarmingService) StartPeriodicWarming(ctx context.Context, interval time.Duration) {
	if err := s.WarmCache(ctx); err != nil {
		log.Printf("Initial cache warming failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.WarmCache(ctx); err != nil {
					log.Printf("Periodic cache warming failed: %v", err)
				}
			}
		}
	}()
}
