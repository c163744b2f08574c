package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lumapix/lumapix-client/internal/adapter"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/store"
	"github.com/lumapix/lumapix-client/internal/utils"
	"github.com/lumapix/lumapix-client/models"
)

const defaultDownloadConcurrency = 4

type clientDownloadService struct {
	serverAdapter adapter.ServerAdapter
	ledger        store.DownloadRepository
	ids           *utils.UUIDGenerator

	dir         string
	concurrency int

	logger *logger.Logger
}

func NewClientDownloadService(serverAdapter adapter.ServerAdapter, ledger store.DownloadRepository, dir string, concurrency int, logger *logger.Logger) ClientDownloadService {
	if concurrency <= 0 {
		concurrency = defaultDownloadConcurrency
	}

	return &clientDownloadService{
		serverAdapter: serverAdapter,
		ledger:        ledger,
		ids:           utils.NewUUIDGenerator(),
		dir:           dir,
		concurrency:   concurrency,
		logger:        logger,
	}
}

// DownloadPhoto implements [ClientDownloadService]. The file lands in
// <downloads dir>/gallery-<id>/<file name>.
func (s *clientDownloadService) DownloadPhoto(ctx context.Context, photo models.Photo) (models.DownloadEntry, error) {
	data, err := s.serverAdapter.DownloadPhoto(ctx, photo.PhotoID)
	if err != nil {
		return models.DownloadEntry{}, mapAdapterError(err)
	}

	galleryDir := filepath.Join(s.dir, fmt.Sprintf("gallery-%d", photo.GalleryID))
	if err = os.MkdirAll(galleryDir, 0o755); err != nil {
		return models.DownloadEntry{}, fmt.Errorf("create download dir: %w", err)
	}

	// Base strips any path separators a hostile file name could carry.
	path := filepath.Join(galleryDir, filepath.Base(photo.FileName))
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return models.DownloadEntry{}, fmt.Errorf("write photo file: %w", err)
	}

	entry := models.DownloadEntry{
		EntryID:      s.ids.Generate(),
		GalleryID:    photo.GalleryID,
		PhotoID:      photo.PhotoID,
		FileName:     photo.FileName,
		Path:         path,
		SizeBytes:    int64(len(data)),
		DownloadedAt: time.Now().UTC(),
	}
	if err = s.ledger.RecordDownload(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Int64("photo_id", photo.PhotoID).Msg("downloaded photo not recorded in ledger")
	}

	s.logger.Debug().Int64("photo_id", photo.PhotoID).Str("path", path).Msg("photo saved")
	return entry, nil
}

// DownloadGallery implements [ClientDownloadService]. Photos are fetched by a
// bounded pool of workers; one failed photo is reported in the result but
// does not abort the rest of the batch.
func (s *clientDownloadService) DownloadGallery(ctx context.Context, gallery models.Gallery, photos []models.Photo, progress func(models.BatchProgress)) (models.BatchResult, error) {
	result := models.BatchResult{
		GalleryID: gallery.GalleryID,
		Dir:       filepath.Join(s.dir, fmt.Sprintf("gallery-%d", gallery.GalleryID)),
	}
	if len(photos) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	report := func(failed error) {
		mu.Lock()
		if failed != nil {
			result.Failed = append(result.Failed, failed)
		} else {
			result.Completed++
		}
		snapshot := models.BatchProgress{
			GalleryID: gallery.GalleryID,
			Done:      result.Completed,
			Failed:    len(result.Failed),
			Total:     len(photos),
		}
		mu.Unlock()

		if progress != nil {
			progress(snapshot)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, photo := range photos {
		photo := photo
		g.Go(func() error {
			if _, err := s.DownloadPhoto(gctx, photo); err != nil {
				report(fmt.Errorf("%s: %w", photo.FileName, err))
				return nil
			}
			report(nil)
			return nil
		})
	}

	// Workers never return errors; Wait only orders the goroutines.
	_ = g.Wait()

	s.logger.Info().
		Int64("gallery_id", gallery.GalleryID).
		Int("completed", result.Completed).
		Int("failed", len(result.Failed)).
		Msg("batch download finished")

	return result, nil
}

// Downloads implements [ClientDownloadService].
func (s *clientDownloadService) Downloads(ctx context.Context, galleryID int64) ([]models.DownloadEntry, error) {
	return s.ledger.ListDownloads(ctx, galleryID)
}
