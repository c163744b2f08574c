package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/models"
)

type downloadRepository struct {
	*DB
	logger *logger.Logger
}

func NewDownloadRepository(db *DB, logger *logger.Logger) DownloadRepository {
	return &downloadRepository{
		DB:     db,
		logger: logger,
	}
}

func (d *downloadRepository) RecordDownload(ctx context.Context, entry models.DownloadEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("downloads").
		Columns("entry_id", "gallery_id", "photo_id", "file_name", "path",
			"size_bytes", "downloaded_at").
		Values(entry.EntryID, entry.GalleryID, entry.PhotoID, entry.FileName,
			entry.Path, entry.SizeBytes, entry.DownloadedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = d.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "downloadRepository.RecordDownload").
			Int64("photo_id", entry.PhotoID).
			Msg("failed to record download")
		return fmt.Errorf("failed to record download (photo_id=%d): %w", entry.PhotoID, err)
	}

	return nil
}

func (d *downloadRepository) ListDownloads(ctx context.Context, galleryID int64) ([]models.DownloadEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("entry_id", "gallery_id", "photo_id", "file_name",
		"path", "size_bytes", "downloaded_at").
		From("downloads").
		Where(sq.Eq{"gallery_id": galleryID}).
		OrderBy("downloaded_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "downloadRepository.ListDownloads").
			Int64("gallery_id", galleryID).
			Msg("failed to query download ledger")
		return nil, fmt.Errorf("failed to query download ledger: %w", err)
	}
	defer rows.Close()

	var entries []models.DownloadEntry
	for rows.Next() {
		var entry models.DownloadEntry
		if err = rows.Scan(
			&entry.EntryID,
			&entry.GalleryID,
			&entry.PhotoID,
			&entry.FileName,
			&entry.Path,
			&entry.SizeBytes,
			&entry.DownloadedAt,
		); err != nil {
			log.Err(err).Str("func", "downloadRepository.ListDownloads").Msg("failed to scan download row")
			return nil, fmt.Errorf("failed to scan download row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate download rows: %w", err)
	}

	return entries, nil
}
