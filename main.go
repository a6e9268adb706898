package main

import (
	"github.com/gin-gonic/gin"

	"playtube/config"
	"playtube/dao"
	"playtube/middleware/cache"
	"playtube/middleware/oss"
	"playtube/middleware/rabbitmq"
)

func main() {
	config.Load()

	dao.Init(config.C.MongoUri, config.C.MongoName)
	defer dao.Close()

	cache.Init(config.C.RedisAddr, config.C.RedisPassword)
	defer cache.Close()

	oss.Init(config.C.OssEndpoint, config.C.OssBucket)

	conn := rabbitmq.NewRmqConnection(config.C.RabbitUri)
	defer conn.Close()

	initControllers(conn)
	defer destroyControllers()

	go cleanupQueue.Run(oss.RemoveByUrl)

	eng := gin.Default()
	setRoutes(eng)
	eng.Run(config.C.Addr)
}
