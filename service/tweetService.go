package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"playtube/dao"
)

type TweetStore interface {
	Insert(ctx context.Context, t *dao.Tweet) error
	ListByOwner(ctx context.Context, ownerId primitive.ObjectID) ([]dao.Tweet, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (dao.Tweet, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TweetService interface {
	Create(ctx context.Context, ownerId, content string) (*dao.Tweet, error)
	ListByUser(ctx context.Context, userId string) ([]dao.Tweet, error)
	Update(ctx context.Context, tweetId, content string) (*dao.Tweet, error)
	Delete(ctx context.Context, tweetId string) error
}
