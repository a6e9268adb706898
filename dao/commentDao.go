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

type Comment struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VideoId   primitive.ObjectID `bson:"videoId" json:"videoId"`
	OwnerId   primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Content   string             `bson:"content" json:"content"`
	Likes     []string           `bson:"likes" json:"likes"`
	Version   int64              `bson:"version" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type CommentDao struct {
	coll *mongo.Collection
}

func NewCommentDao(coll *mongo.Collection) *CommentDao {
	return &CommentDao{coll: coll}
}

func (d *CommentDao) Insert(ctx context.Context, c *Comment) error {
	if c.Likes == nil {
		c.Likes = []string{}
	}
	res, err := d.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.Id = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListByVideo pages through a video's comments, newest first.
func (d *CommentDao) ListByVideo(ctx context.Context, videoId primitive.ObjectID, page, limit int) ([]Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := d.coll.Find(ctx, bson.M{"videoId": videoId}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	comments := []Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (d *CommentDao) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (Comment, error) {
	var c Comment
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := d.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"content": content}}, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Comment{}, ErrNotFound
		}
		return Comment{}, err
	}
	return c, nil
}

func (d *CommentDao) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := d.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
