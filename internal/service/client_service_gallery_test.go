package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumapix/lumapix-client/internal/adapter"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/mock"
	"github.com/lumapix/lumapix-client/models"
)

func newTestGallerySvc(t *testing.T, ctrl *gomock.Controller) (ClientGalleryService, *mock.MockServerAdapter, *mock.MockGalleryCacheRepository) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockGalleryCacheRepository(ctrl)

	return NewClientGalleryService(mockAdapter, mockCache, logger.Nop()), mockAdapter, mockCache
}

// ── Galleries ────────────────────────────────────────────────────────────────

func TestClientGalleryService_Galleries_OnlineRefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	fresh := []models.Gallery{{GalleryID: 1, Title: "Summer"}, {GalleryID: 2, Title: "Winter"}}
	mockAdapter.EXPECT().GetGalleries(ctx).Return(fresh, nil)
	mockCache.EXPECT().ReplaceGalleries(ctx, fresh).Return(nil)

	galleries, offline, err := svc.Galleries(ctx)
	require.NoError(t, err)
	assert.False(t, offline)
	assert.Equal(t, fresh, galleries)
}

func TestClientGalleryService_Galleries_OfflineFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	cached := []models.Gallery{{GalleryID: 1, Title: "Summer"}}
	mockAdapter.EXPECT().GetGalleries(ctx).Return(nil, adapter.ErrNetworkUnavailable)
	mockCache.EXPECT().GetGalleries(ctx).Return(cached, nil)

	galleries, offline, err := svc.Galleries(ctx)
	require.NoError(t, err)
	assert.True(t, offline, "cached data must be flagged as possibly stale")
	assert.Equal(t, cached, galleries)
}

func TestClientGalleryService_Galleries_OfflineWithEmptyCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetGalleries(ctx).Return(nil, adapter.ErrRequestTimeout)
	mockCache.EXPECT().GetGalleries(ctx).Return(nil, assert.AnError)

	_, offline, err := svc.Galleries(ctx)
	assert.True(t, offline)
	assert.ErrorIs(t, err, ErrOffline)
}

func TestClientGalleryService_Galleries_SessionExpiredPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetGalleries(ctx).Return(nil, adapter.ErrAuthFailed)

	_, offline, err := svc.Galleries(ctx)
	assert.False(t, offline)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientGalleryService_Galleries_CacheWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	fresh := []models.Gallery{{GalleryID: 1}}
	mockAdapter.EXPECT().GetGalleries(ctx).Return(fresh, nil)
	mockCache.EXPECT().ReplaceGalleries(ctx, fresh).Return(assert.AnError)

	galleries, offline, err := svc.Galleries(ctx)
	require.NoError(t, err, "a broken cache must not break online browsing")
	assert.False(t, offline)
	assert.Equal(t, fresh, galleries)
}

// ── Photos ───────────────────────────────────────────────────────────────────

func TestClientGalleryService_Photos_OfflineFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	cached := []models.Photo{{PhotoID: 10, GalleryID: 1, FileName: "beach.jpg"}}
	mockAdapter.EXPECT().GetPhotos(ctx, int64(1)).Return(nil, adapter.ErrNetworkUnavailable)
	mockCache.EXPECT().GetPhotos(ctx, int64(1)).Return(cached, nil)

	photos, offline, err := svc.Photos(ctx, 1)
	require.NoError(t, err)
	assert.True(t, offline)
	assert.Equal(t, cached, photos)
}

func TestClientGalleryService_Photos_OnlineRefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	fresh := []models.Photo{{PhotoID: 10, GalleryID: 1, FileName: "beach.jpg", Position: 0}}
	mockAdapter.EXPECT().GetPhotos(ctx, int64(1)).Return(fresh, nil)
	mockCache.EXPECT().ReplacePhotos(ctx, int64(1), fresh).Return(nil)

	photos, offline, err := svc.Photos(ctx, 1)
	require.NoError(t, err)
	assert.False(t, offline)
	assert.Equal(t, fresh, photos)
}

// ── Mutations ────────────────────────────────────────────────────────────────

func TestClientGalleryService_Delete_EvictsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteGallery(ctx, int64(5)).Return(nil),
		mockCache.EXPECT().DeleteGallery(ctx, int64(5)).Return(nil),
	)

	require.NoError(t, svc.Delete(ctx, 5))
}

func TestClientGalleryService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteGallery(ctx, int64(404)).Return(adapter.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 404), ErrGalleryNotFound)
}

func TestClientGalleryService_Publish_ReturnsShareLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	link := models.ShareLink{Slug: "summer-2026", ShareURL: "https://lumapix.example.com/g/summer-2026"}
	mockAdapter.EXPECT().PublishGallery(ctx, int64(1)).Return(link, nil)

	got, err := svc.Publish(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, link, got)
}

func TestClientGalleryService_Public_WrongAccessCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestGallerySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetPublicGallery(ctx, "summer-2026", "0000").Return(models.PublicGallery{}, adapter.ErrForbidden)

	_, err := svc.Public(ctx, "summer-2026", "0000")
	assert.ErrorIs(t, err, ErrWrongAccessCode)
}
