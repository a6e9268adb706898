package dao

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Video struct {
	Id           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerId      primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	MediaUrl     string             `bson:"mediaUrl" json:"mediaUrl"`
	ThumbnailUrl string             `bson:"thumbnailUrl" json:"thumbnailUrl"`
	Likes        []string           `bson:"likes" json:"likes"`
	IsPublished  bool               `bson:"isPublished" json:"isPublished"`
	Version      int64              `bson:"version" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type VideoDao struct {
	coll *mongo.Collection
}

func NewVideoDao(coll *mongo.Collection) *VideoDao {
	return &VideoDao{coll: coll}
}

func (d *VideoDao) Insert(ctx context.Context, v *Video) error {
	if v.Likes == nil {
		v.Likes = []string{}
	}
	res, err := d.coll.InsertOne(ctx, v)
	if err != nil {
		return err
	}
	v.Id = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (d *VideoDao) FindById(ctx context.Context, id primitive.ObjectID) (Video, error) {
	var v Video
	err := d.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Video{}, ErrNotFound
		}
		return Video{}, err
	}
	return v, nil
}

// UpdateFields patches the given fields and returns the fresh document.
func (d *VideoDao) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (Video, error) {
	var v Video
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := d.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)}, opts).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Video{}, ErrNotFound
		}
		return Video{}, err
	}
	return v, nil
}

// Delete removes the video and hands back the removed document so the
// caller can reclaim its stored objects.
func (d *VideoDao) Delete(ctx context.Context, id primitive.ObjectID) (Video, error) {
	var v Video
	err := d.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Video{}, ErrNotFound
		}
		return Video{}, err
	}
	return v, nil
}

// ReplaceVersioned works like LikeableDao.ReplaceVersioned but keeps the
// typed Video document, used by the publish-status toggle.
func (d *VideoDao) ReplaceVersioned(ctx context.Context, v Video) (Video, error) {
	filter := bson.M{"_id": v.Id, "version": v.Version}
	v.Version++

	res, err := d.coll.ReplaceOne(ctx, filter, v)
	if err != nil {
		return Video{}, err
	}
	if res.MatchedCount == 0 {
		return Video{}, ErrVersionConflict
	}
	return v, nil
}

// ListLikedBy returns the videos whose likes set contains the user.
func (d *VideoDao) ListLikedBy(ctx context.Context, userId string) ([]Video, error) {
	cur, err := d.coll.Find(ctx, bson.M{"likes": userId})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	videos := []Video{}
	if err := cur.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
