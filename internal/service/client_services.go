package service

import (
	"github.com/lumapix/lumapix-client/internal/adapter"
	"github.com/lumapix/lumapix-client/internal/config"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/session"
	"github.com/lumapix/lumapix-client/internal/store"
)

type ClientServices struct {
	AuthService     ClientAuthService
	GalleryService  ClientGalleryService
	DownloadService ClientDownloadService
	TokenJob        ClientTokenJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, sessions session.Store, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter, sessions, logger),
		GalleryService:  NewClientGalleryService(serverAdapter, storages.GalleryCache, logger),
		DownloadService: NewClientDownloadService(serverAdapter, storages.Downloads, cfg.Storage.DownloadsDir, cfg.Workers.DownloadConcurrency, logger),
		TokenJob:        NewClientTokenJob(serverAdapter, sessions, logger),
	}
}
