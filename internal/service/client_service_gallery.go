package service

import (
	"context"

	"github.com/lumapix/lumapix-client/internal/adapter"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/store"
	"github.com/lumapix/lumapix-client/models"
)

type clientGalleryService struct {
	serverAdapter adapter.ServerAdapter
	cache         store.GalleryCacheRepository
	logger        *logger.Logger
}

func NewClientGalleryService(serverAdapter adapter.ServerAdapter, cache store.GalleryCacheRepository, logger *logger.Logger) ClientGalleryService {
	return &clientGalleryService{
		serverAdapter: serverAdapter,
		cache:         cache,
		logger:        logger,
	}
}

// Galleries implements [ClientGalleryService]. A successful backend read
// refreshes the cache; an unreachable backend serves the cached copy with
// offline set to true.
func (s *clientGalleryService) Galleries(ctx context.Context) ([]models.Gallery, bool, error) {
	galleries, err := s.serverAdapter.GetGalleries(ctx)
	if err == nil {
		if cacheErr := s.cache.ReplaceGalleries(ctx, galleries); cacheErr != nil {
			// Cache write failures degrade offline browsing, nothing else.
			s.logger.Warn().Err(cacheErr).Msg("failed to refresh gallery cache")
		}
		return galleries, false, nil
	}

	if !isOffline(err) {
		return nil, false, mapAdapterError(err)
	}

	s.logger.Info().Err(err).Msg("backend unreachable, serving cached galleries")
	cached, cacheErr := s.cache.GetGalleries(ctx)
	if cacheErr != nil {
		return nil, true, ErrOffline
	}

	return cached, true, nil
}

// Photos implements [ClientGalleryService].
func (s *clientGalleryService) Photos(ctx context.Context, galleryID int64) ([]models.Photo, bool, error) {
	photos, err := s.serverAdapter.GetPhotos(ctx, galleryID)
	if err == nil {
		if cacheErr := s.cache.ReplacePhotos(ctx, galleryID, photos); cacheErr != nil {
			s.logger.Warn().Err(cacheErr).Int64("gallery_id", galleryID).Msg("failed to refresh photo cache")
		}
		return photos, false, nil
	}

	if !isOffline(err) {
		return nil, false, mapAdapterError(err)
	}

	s.logger.Info().Err(err).Int64("gallery_id", galleryID).Msg("backend unreachable, serving cached photos")
	cached, cacheErr := s.cache.GetPhotos(ctx, galleryID)
	if cacheErr != nil {
		return nil, true, ErrOffline
	}

	return cached, true, nil
}

// Create implements [ClientGalleryService].
func (s *clientGalleryService) Create(ctx context.Context, req models.CreateGalleryRequest) (models.Gallery, error) {
	gallery, err := s.serverAdapter.CreateGallery(ctx, req)
	if err != nil {
		return models.Gallery{}, mapAdapterError(err)
	}

	s.logger.Info().Int64("gallery_id", gallery.GalleryID).Msg("gallery created")
	return gallery, nil
}

// Update implements [ClientGalleryService].
func (s *clientGalleryService) Update(ctx context.Context, galleryID int64, req models.UpdateGalleryRequest) (models.Gallery, error) {
	gallery, err := s.serverAdapter.UpdateGallery(ctx, galleryID, req)
	if err != nil {
		return models.Gallery{}, mapAdapterError(err)
	}

	return gallery, nil
}

// Delete implements [ClientGalleryService]. The cache entry goes regardless
// of whether it existed.
func (s *clientGalleryService) Delete(ctx context.Context, galleryID int64) error {
	if err := s.serverAdapter.DeleteGallery(ctx, galleryID); err != nil {
		return mapAdapterError(err)
	}

	if err := s.cache.DeleteGallery(ctx, galleryID); err != nil {
		s.logger.Warn().Err(err).Int64("gallery_id", galleryID).Msg("failed to evict deleted gallery from cache")
	}

	s.logger.Info().Int64("gallery_id", galleryID).Msg("gallery deleted")
	return nil
}

// Publish implements [ClientGalleryService].
func (s *clientGalleryService) Publish(ctx context.Context, galleryID int64) (models.ShareLink, error) {
	link, err := s.serverAdapter.PublishGallery(ctx, galleryID)
	if err != nil {
		return models.ShareLink{}, mapAdapterError(err)
	}

	s.logger.Info().Int64("gallery_id", galleryID).Str("slug", link.Slug).Msg("gallery published")
	return link, nil
}

// Public implements [ClientGalleryService].
func (s *clientGalleryService) Public(ctx context.Context, slug, accessCode string) (models.PublicGallery, error) {
	gallery, err := s.serverAdapter.GetPublicGallery(ctx, slug, accessCode)
	if err != nil {
		return models.PublicGallery{}, mapAdapterError(err)
	}

	return gallery, nil
}
