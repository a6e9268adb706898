package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"playtube/dao"
)

// The three like-able kinds. Kind names double as route segments.
const (
	KindVideo   = "video"
	KindComment = "comment"
	KindTweet   = "tweet"
)

// LikeableStore is the per-kind storage capability the toggle engine is
// parameterized over. One implementation per collection.
type LikeableStore interface {
	Kind() string
	FindById(ctx context.Context, id primitive.ObjectID) (dao.Likeable, error)
	ReplaceVersioned(ctx context.Context, doc dao.Likeable) (dao.Likeable, error)
}

type LikeService interface {
	// Toggle flips the user's membership in the entity's likes set and
	// returns the updated entity.
	Toggle(ctx context.Context, kind, entityId, userId string) (dao.Likeable, error)
	// ListLikedVideos returns every video the user currently likes.
	ListLikedVideos(ctx context.Context, userId string) ([]dao.Video, error)
}
