package service

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"playtube/dao"
)

type VideoStore interface {
	Insert(ctx context.Context, v *dao.Video) error
	FindById(ctx context.Context, id primitive.ObjectID) (dao.Video, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (dao.Video, error)
	Delete(ctx context.Context, id primitive.ObjectID) (dao.Video, error)
	ReplaceVersioned(ctx context.Context, v dao.Video) (dao.Video, error)
	ListLikedBy(ctx context.Context, userId string) ([]dao.Video, error)
}

// ChannelStore runs the channel-listing aggregation. It lives on the
// users collection because the pipeline's first stage matches the owner.
type ChannelStore interface {
	RunChannelListing(ctx context.Context, pipeline mongo.Pipeline) ([]dao.Video, int64, error)
}

// MediaStore uploads video payloads to external object storage and
// yields the public URL.
type MediaStore interface {
	UploadMedia(name string, data io.Reader) (string, error)
	UploadThumbnail(name string, data io.Reader) (string, error)
}

// CleanupQueue accepts stored-object URLs whose objects should be
// reclaimed asynchronously after a video is deleted.
type CleanupQueue interface {
	EnqueueRemoval(urls ...string) error
}

// ListingRequest carries the raw, still-untyped query input of the
// listing endpoint. Normalization happens in the service.
type ListingRequest struct {
	Username string
	Email    string
	Page     string
	Limit    string
	Query    string
	SortBy   string
	SortType string
	OwnerId  string
}

type VideoPage struct {
	Items []dao.Video `json:"items"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int64       `json:"total"`
}

// VideoUpdate distinguishes absent fields (nil) from provided ones;
// provided-but-blank fields are rejected.
type VideoUpdate struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ThumbnailUrl *string `json:"thumbnail"`
}

type VideoService interface {
	Publish(ctx context.Context, ownerId, title, description string, media, thumbnail io.Reader) (*dao.Video, error)
	ListChannel(ctx context.Context, req ListingRequest) (*VideoPage, error)
	GetById(ctx context.Context, videoId string) (*dao.Video, error)
	Update(ctx context.Context, videoId string, upd VideoUpdate) (*dao.Video, error)
	Delete(ctx context.Context, videoId string) error
	TogglePublish(ctx context.Context, videoId string) (*dao.Video, error)
}
