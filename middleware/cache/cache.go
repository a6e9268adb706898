package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

func Init(addr, password string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := Rdb.Ping(context.Background()).Err(); err != nil {
		log.Panicln("failed to connect target database from Redis, detail:", err)
	}
}

func Close() {
	if Rdb == nil {
		return
	}
	if err := Rdb.Close(); err != nil {
		log.Println("failed to close Redis client, detail:", err)
	}
}
