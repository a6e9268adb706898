package dao

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Db *mongo.Database

const (
	usersColl    = "users"
	videosColl   = "videos"
	commentsColl = "comments"
	tweetsColl   = "tweets"
)

func Init(uri, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Panicln("failed to connect target database from MongoDB, detail:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Panicln("failed to ping target database from MongoDB, detail:", err)
	}
	Db = client.Database(name)
}

func Close() {
	if Db == nil {
		return
	}
	if err := Db.Client().Disconnect(context.Background()); err != nil {
		log.Println("failed to disconnect from MongoDB, detail:", err)
	}
}

func Users() *mongo.Collection    { return Db.Collection(usersColl) }
func Videos() *mongo.Collection   { return Db.Collection(videosColl) }
func Comments() *mongo.Collection { return Db.Collection(commentsColl) }
func Tweets() *mongo.Collection   { return Db.Collection(tweetsColl) }
