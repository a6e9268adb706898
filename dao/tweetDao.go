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

type Tweet struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerId   primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Content   string             `bson:"content" json:"content"`
	Likes     []string           `bson:"likes" json:"likes"`
	Version   int64              `bson:"version" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type TweetDao struct {
	coll *mongo.Collection
}

func NewTweetDao(coll *mongo.Collection) *TweetDao {
	return &TweetDao{coll: coll}
}

func (d *TweetDao) Insert(ctx context.Context, t *Tweet) error {
	if t.Likes == nil {
		t.Likes = []string{}
	}
	res, err := d.coll.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.Id = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (d *TweetDao) ListByOwner(ctx context.Context, ownerId primitive.ObjectID) ([]Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := d.coll.Find(ctx, bson.M{"ownerId": ownerId}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tweets := []Tweet{}
	if err := cur.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (d *TweetDao) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (Tweet, error) {
	var t Tweet
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := d.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"content": content}}, opts).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Tweet{}, ErrNotFound
		}
		return Tweet{}, err
	}
	return t, nil
}

func (d *TweetDao) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := d.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
