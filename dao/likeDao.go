package dao

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Likeable is the shared document view of the three like-able kinds.
// Only the fields the toggle engine touches are typed; everything else
// a variant carries rides along in the inline map and is written back
// untouched on replace.
type Likeable struct {
	Id      primitive.ObjectID `bson:"_id"`
	Likes   []string           `bson:"likes"`
	Version int64              `bson:"version"`
	Rest    bson.M             `bson:",inline"`
}

// Document flattens the entity for the response envelope, variant
// fields included.
func (e Likeable) Document() map[string]any {
	doc := make(map[string]any, len(e.Rest)+2)
	for k, v := range e.Rest {
		doc[k] = v
	}
	doc["id"] = e.Id.Hex()
	if e.Likes == nil {
		doc["likes"] = []string{}
	} else {
		doc["likes"] = e.Likes
	}
	return doc
}

type LikeableDao struct {
	coll *mongo.Collection
	kind string
}

func NewLikeableDao(coll *mongo.Collection, kind string) *LikeableDao {
	return &LikeableDao{coll: coll, kind: kind}
}

func (d *LikeableDao) Kind() string {
	return d.kind
}

func (d *LikeableDao) FindById(ctx context.Context, id primitive.ObjectID) (Likeable, error) {
	var doc Likeable
	err := d.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Likeable{}, ErrNotFound
		}
		return Likeable{}, err
	}
	return doc, nil
}

// ReplaceVersioned persists the whole document, guarded by the version
// read with it. A zero match means another writer got there first.
func (d *LikeableDao) ReplaceVersioned(ctx context.Context, doc Likeable) (Likeable, error) {
	filter := bson.M{"_id": doc.Id, "version": doc.Version}
	doc.Version++

	res, err := d.coll.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return Likeable{}, err
	}
	if res.MatchedCount == 0 {
		return Likeable{}, ErrVersionConflict
	}
	return doc, nil
}
