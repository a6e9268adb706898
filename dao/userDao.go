package dao

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type User struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	FullName  string             `bson:"fullName" json:"fullName"`
	AvatarUrl string             `bson:"avatarUrl" json:"avatarUrl"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type UserDao struct {
	coll *mongo.Collection
}

func NewUserDao(coll *mongo.Collection) *UserDao {
	return &UserDao{coll: coll}
}

func (d *UserDao) Insert(ctx context.Context, u *User) error {
	res, err := d.coll.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	u.Id = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (d *UserDao) FindById(ctx context.Context, id primitive.ObjectID) (User, error) {
	return d.findOne(ctx, bson.M{"_id": id})
}

func (d *UserDao) FindByUsername(ctx context.Context, username string) (User, error) {
	return d.findOne(ctx, bson.M{"username": username})
}

// FindByUsernameOrEmail backs the uniqueness check on register.
func (d *UserDao) FindByUsernameOrEmail(ctx context.Context, username, email string) (User, error) {
	return d.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
}

func (d *UserDao) findOne(ctx context.Context, filter bson.M) (User, error) {
	var u User
	err := d.coll.FindOne(ctx, filter).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

// channelFacet is the shape the listing pipeline's $facet stage yields.
type channelFacet struct {
	Items []Video `bson:"items"`
	Total []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

// RunChannelListing executes the video-listing pipeline. The pipeline
// starts from the users collection and ends in a $facet of page items
// plus the unpaginated match count.
func (d *UserDao) RunChannelListing(ctx context.Context, pipeline mongo.Pipeline) ([]Video, int64, error) {
	cur, err := d.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var facets []channelFacet
	if err := cur.All(ctx, &facets); err != nil {
		return nil, 0, err
	}
	if len(facets) == 0 {
		return []Video{}, 0, nil
	}

	items := facets[0].Items
	if items == nil {
		items = []Video{}
	}
	var total int64
	if len(facets[0].Total) > 0 {
		total = facets[0].Total[0].Count
	}
	return items, total, nil
}
