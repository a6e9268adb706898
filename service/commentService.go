package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"playtube/dao"
)

type CommentStore interface {
	Insert(ctx context.Context, c *dao.Comment) error
	ListByVideo(ctx context.Context, videoId primitive.ObjectID, page, limit int) ([]dao.Comment, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (dao.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CommentService interface {
	ListByVideo(ctx context.Context, videoId, page, limit string) ([]dao.Comment, error)
	Add(ctx context.Context, videoId, ownerId, content string) (*dao.Comment, error)
	Update(ctx context.Context, commentId, content string) (*dao.Comment, error)
	Delete(ctx context.Context, commentId string) error
}
