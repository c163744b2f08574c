package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/models"
)

type galleryCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewGalleryCacheRepository(db *DB, logger *logger.Logger) GalleryCacheRepository {
	return &galleryCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (g *galleryCacheRepository) ReplaceGalleries(ctx context.Context, galleries []models.Gallery) error {
	log := logger.FromContext(ctx)

	tx, err := g.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "galleryCacheRepository.ReplaceGalleries").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %s", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM galleries`); err != nil {
		log.Err(err).Str("func", "galleryCacheRepository.ReplaceGalleries").Msg("failed to clear cached galleries")
		return fmt.Errorf("failed to clear cached galleries: %w", err)
	}

	for _, gallery := range galleries {
		query, args, buildErr := sq.Insert("galleries").
			Columns("gallery_id", "title", "description", "slug", "published",
				"photo_count", "cover_photo_id", "created_at", "updated_at").
			Values(gallery.GalleryID, gallery.Title, gallery.Description, gallery.Slug,
				gallery.Published, gallery.PhotoCount, gallery.CoverPhotoID,
				gallery.CreatedAt, gallery.UpdatedAt).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "galleryCacheRepository.ReplaceGalleries").
				Int64("gallery_id", gallery.GalleryID).
				Msg("failed to insert cached gallery")
			return fmt.Errorf("failed to insert cached gallery (gallery_id=%d): %w", gallery.GalleryID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s", ErrCommitingTransaction, err)
	}

	return nil
}

func (g *galleryCacheRepository) GetGalleries(ctx context.Context) ([]models.Gallery, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("gallery_id", "title", "description", "slug", "published",
		"photo_count", "cover_photo_id", "created_at", "updated_at").
		From("galleries").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	rows, err := g.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "galleryCacheRepository.GetGalleries").Msg("failed to query cached galleries")
		return nil, fmt.Errorf("failed to query cached galleries: %w", err)
	}
	defer rows.Close()

	var galleries []models.Gallery
	for rows.Next() {
		var gallery models.Gallery
		if err = rows.Scan(
			&gallery.GalleryID,
			&gallery.Title,
			&gallery.Description,
			&gallery.Slug,
			&gallery.Published,
			&gallery.PhotoCount,
			&gallery.CoverPhotoID,
			&gallery.CreatedAt,
			&gallery.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "galleryCacheRepository.GetGalleries").Msg("failed to scan gallery row")
			return nil, fmt.Errorf("failed to scan gallery row: %w", err)
		}
		galleries = append(galleries, gallery)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gallery rows: %w", err)
	}

	return galleries, nil
}

func (g *galleryCacheRepository) DeleteGallery(ctx context.Context, galleryID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("galleries").Where(sq.Eq{"gallery_id": galleryID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = g.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "galleryCacheRepository.DeleteGallery").
			Int64("gallery_id", galleryID).
			Msg("failed to delete cached gallery")
		return fmt.Errorf("failed to delete cached gallery (gallery_id=%d): %w", galleryID, err)
	}

	return nil
}

func (g *galleryCacheRepository) ReplacePhotos(ctx context.Context, galleryID int64, photos []models.Photo) error {
	log := logger.FromContext(ctx)

	tx, err := g.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "galleryCacheRepository.ReplacePhotos").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %s", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := sq.Delete("photos").Where(sq.Eq{"gallery_id": galleryID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "galleryCacheRepository.ReplacePhotos").
			Int64("gallery_id", galleryID).
			Msg("failed to clear cached photos")
		return fmt.Errorf("failed to clear cached photos: %w", err)
	}

	for _, photo := range photos {
		query, args, buildErr := sq.Insert("photos").
			Columns("photo_id", "gallery_id", "file_name", "content_type",
				"size_bytes", "position", "created_at").
			Values(photo.PhotoID, galleryID, photo.FileName, photo.ContentType,
				photo.SizeBytes, photo.Position, photo.CreatedAt).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "galleryCacheRepository.ReplacePhotos").
				Int64("photo_id", photo.PhotoID).
				Msg("failed to insert cached photo")
			return fmt.Errorf("failed to insert cached photo (photo_id=%d): %w", photo.PhotoID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s", ErrCommitingTransaction, err)
	}

	return nil
}

func (g *galleryCacheRepository) GetPhotos(ctx context.Context, galleryID int64) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	existsQuery, existsArgs, err := sq.Select("COUNT(*)").
		From("galleries").
		Where(sq.Eq{"gallery_id": galleryID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	var cached int
	if err = g.DB.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&cached); err != nil {
		log.Err(err).
			Str("func", "galleryCacheRepository.GetPhotos").
			Int64("gallery_id", galleryID).
			Msg("failed to check gallery cache presence")
		return nil, fmt.Errorf("failed to check gallery cache presence: %w", err)
	}
	if cached == 0 {
		return nil, fmt.Errorf("%w (gallery_id=%d)", ErrGalleryNotInCache, galleryID)
	}

	query, args, err := sq.Select("photo_id", "gallery_id", "file_name", "content_type",
		"size_bytes", "position", "created_at").
		From("photos").
		Where(sq.Eq{"gallery_id": galleryID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	rows, err := g.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "galleryCacheRepository.GetPhotos").
			Int64("gallery_id", galleryID).
			Msg("failed to query cached photos")
		return nil, fmt.Errorf("failed to query cached photos: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var photo models.Photo
		if err = rows.Scan(
			&photo.PhotoID,
			&photo.GalleryID,
			&photo.FileName,
			&photo.ContentType,
			&photo.SizeBytes,
			&photo.Position,
			&photo.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "galleryCacheRepository.GetPhotos").Msg("failed to scan photo row")
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		photos = append(photos, photo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate photo rows: %w", err)
	}

	return photos, nil
}
