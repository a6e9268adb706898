package impl

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"playtube/dao"
	"playtube/pkg"
	"playtube/service"
)

type VideoServiceImpl struct {
	videos  service.VideoStore
	channel service.ChannelStore
	media   service.MediaStore
	cleanup service.CleanupQueue
}

func NewVideoService(videos service.VideoStore, channel service.ChannelStore,
	media service.MediaStore, cleanup service.CleanupQueue) *VideoServiceImpl {
	return &VideoServiceImpl{
		videos:  videos,
		channel: channel,
		media:   media,
		cleanup: cleanup,
	}
}

func (s *VideoServiceImpl) Publish(ctx context.Context, ownerId, title, description string, media, thumbnail io.Reader) (*dao.Video, error) {
	owner, err := pkg.ParseId(ownerId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, pkg.NewMsgError(pkg.ErrMissingField, "all fields are required", nil)
	}

	// uploads to object storage, keyed by a fresh uuid
	key := uuid.New().String()
	mediaUrl, err := s.media.UploadMedia(key, media)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}
	thumbUrl, err := s.media.UploadThumbnail(key, thumbnail)
	if err != nil {
		// the media object is already stored, reclaim it
		s.reclaim(mediaUrl)
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	video := dao.Video{
		OwnerId:      owner,
		Title:        title,
		Description:  description,
		MediaUrl:     mediaUrl,
		ThumbnailUrl: thumbUrl,
		Likes:        []string{},
		IsPublished:  false,
		CreatedAt:    time.Now(),
	}
	if err := s.videos.Insert(ctx, &video); err != nil {
		s.reclaim(mediaUrl, thumbUrl)
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}
	return &video, nil
}

func (s *VideoServiceImpl) reclaim(urls ...string) {
	if err := s.cleanup.EnqueueRemoval(urls...); err != nil {
		log.Printf("failed to enqueue object cleanup for %v, detail: %v\n", urls, err)
	}
}

func (s *VideoServiceImpl) ListChannel(ctx context.Context, req service.ListingRequest) (*service.VideoPage, error) {
	params, err := normalizeListing(req)
	if err != nil {
		return nil, err
	}

	items, total, err := s.channel.RunChannelListing(ctx, buildListingPipeline(params))
	if err != nil {
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}

	// an empty page past the data is a valid result
	return &service.VideoPage{
		Items: items,
		Page:  params.page,
		Limit: params.limit,
		Total: total,
	}, nil
}

func (s *VideoServiceImpl) GetById(ctx context.Context, videoId string) (*dao.Video, error) {
	oid, err := pkg.ParseId(videoId)
	if err != nil {
		return nil, err
	}
	video, err := s.videos.FindById(ctx, oid)
	if err != nil {
		return nil, videoStoreError(err)
	}
	return &video, nil
}

func (s *VideoServiceImpl) Update(ctx context.Context, videoId string, upd service.VideoUpdate) (*dao.Video, error) {
	oid, err := pkg.ParseId(videoId)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	for name, val := range map[string]*string{
		"title":        upd.Title,
		"description":  upd.Description,
		"thumbnailUrl": upd.ThumbnailUrl,
	} {
		if val == nil {
			continue
		}
		if strings.TrimSpace(*val) == "" {
			return nil, pkg.NewMsgError(pkg.ErrValidation, "fields cannot be empty", nil)
		}
		fields[name] = *val
	}

	if len(fields) == 0 {
		video, err := s.videos.FindById(ctx, oid)
		if err != nil {
			return nil, videoStoreError(err)
		}
		return &video, nil
	}

	video, err := s.videos.UpdateFields(ctx, oid, fields)
	if err != nil {
		return nil, videoStoreError(err)
	}
	return &video, nil
}

func (s *VideoServiceImpl) Delete(ctx context.Context, videoId string) error {
	oid, err := pkg.ParseId(videoId)
	if err != nil {
		return err
	}
	video, err := s.videos.Delete(ctx, oid)
	if err != nil {
		return videoStoreError(err)
	}

	// stored objects are reclaimed asynchronously; a queue hiccup must
	// not undo the deletion
	s.reclaim(video.MediaUrl, video.ThumbnailUrl)
	return nil
}

func (s *VideoServiceImpl) TogglePublish(ctx context.Context, videoId string) (*dao.Video, error) {
	oid, err := pkg.ParseId(videoId)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxToggleAttempts; attempt++ {
		video, err := s.videos.FindById(ctx, oid)
		if err != nil {
			return nil, videoStoreError(err)
		}

		video.IsPublished = !video.IsPublished

		updated, err := s.videos.ReplaceVersioned(ctx, video)
		if err == nil {
			return &updated, nil
		}
		if !errors.Is(err, dao.ErrVersionConflict) {
			return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
		}
		log.Printf("stale video-%s on publish toggle, attempt %d\n", videoId, attempt)
	}
	return nil, pkg.NewError(pkg.ErrConflict, nil)
}

func videoStoreError(err error) error {
	if errors.Is(err, dao.ErrNotFound) {
		return pkg.NewMsgError(pkg.ErrNotFound, "Video not found", nil)
	}
	return pkg.NewError(pkg.ErrStoreUnavailable, err)
}
