package main

import (
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gin-gonic/gin"

	"playtube/controller"
	"playtube/dao"
	"playtube/middleware/cache"
	"playtube/middleware/jwt"
	"playtube/middleware/oss"
	"playtube/middleware/rabbitmq"
	"playtube/service"
	"playtube/service/impl"
)

var userCtl *controller.UserController
var videoCtl *controller.VideoController
var commentCtl *controller.CommentController
var tweetCtl *controller.TweetController
var likeCtl *controller.LikeController

var cleanupQueue *rabbitmq.CleanupQueue

func initControllers(conn *amqp.Connection) {
	userDao := dao.NewUserDao(dao.Users())
	videoDao := dao.NewVideoDao(dao.Videos())
	commentDao := dao.NewCommentDao(dao.Comments())
	tweetDao := dao.NewTweetDao(dao.Tweets())

	cleanupQueue = rabbitmq.NewCleanupQueue(conn)

	userSrv := impl.NewUserService(userDao, cache.NewRefreshTokens())
	videoSrv := impl.NewVideoService(videoDao, userDao, oss.Store{}, cleanupQueue)
	commentSrv := impl.NewCommentService(commentDao)
	tweetSrv := impl.NewTweetService(tweetDao, userDao)
	likeSrv := impl.NewLikeService(videoDao,
		dao.NewLikeableDao(dao.Videos(), service.KindVideo),
		dao.NewLikeableDao(dao.Comments(), service.KindComment),
		dao.NewLikeableDao(dao.Tweets(), service.KindTweet),
	)

	userCtl = controller.NewUserController(userSrv)
	videoCtl = controller.NewVideoController(videoSrv)
	commentCtl = controller.NewCommentController(commentSrv)
	tweetCtl = controller.NewTweetController(tweetSrv)
	likeCtl = controller.NewLikeController(likeSrv)
}

func destroyControllers() {
	if cleanupQueue != nil {
		cleanupQueue.Close()
	}
}

func setRoutes(eng *gin.Engine) {
	eng.Use(controller.ErrHandler)
	api := eng.Group("/api/v1")

	userGrp := api.Group("/users")
	userGrp.POST("/register", userCtl.Register)
	userGrp.POST("/login", userCtl.Login)
	userGrp.Use(jwt.AuthorizationMiddleware)
	userGrp.POST("/refresh-token", userCtl.RefreshToken)
	userGrp.POST("/logout", userCtl.Logout)
	userGrp.GET("/me", userCtl.GetCurrentUser)

	videoGrp := api.Group("/videos")
	// no need AuthorizationMiddleware
	videoGrp.GET("/list/:username/:email", videoCtl.ListChannel)
	videoGrp.GET("/:video_id", videoCtl.GetById)
	videoGrp.Use(jwt.AuthorizationMiddleware)
	videoGrp.POST("", videoCtl.Publish)
	videoGrp.PATCH("/:video_id", videoCtl.Update)
	videoGrp.DELETE("/:video_id", videoCtl.Delete)
	videoGrp.PATCH("/:video_id/toggle-publish", videoCtl.TogglePublish)

	commentGrp := api.Group("/comments")
	commentGrp.GET("/:video_id", commentCtl.ListVideoComments)
	commentGrp.Use(jwt.AuthorizationMiddleware)
	commentGrp.POST("/:video_id", commentCtl.AddComment)
	commentGrp.PATCH("/c/:comment_id", commentCtl.UpdateComment)
	commentGrp.DELETE("/c/:comment_id", commentCtl.DeleteComment)

	tweetGrp := api.Group("/tweets")
	tweetGrp.GET("/user/:user_id", tweetCtl.GetUserTweets)
	tweetGrp.Use(jwt.AuthorizationMiddleware)
	tweetGrp.POST("", tweetCtl.CreateTweet)
	tweetGrp.PATCH("/:tweet_id", tweetCtl.UpdateTweet)
	tweetGrp.DELETE("/:tweet_id", tweetCtl.DeleteTweet)

	likeGrp := api.Group("/likes")
	likeGrp.Use(jwt.AuthorizationMiddleware)
	likeGrp.PATCH("/video/:video_id", likeCtl.ToggleVideoLike)
	likeGrp.PATCH("/comment/:comment_id", likeCtl.ToggleCommentLike)
	likeGrp.PATCH("/tweet/:tweet_id", likeCtl.ToggleTweetLike)
	likeGrp.GET("/videos", likeCtl.GetLikedVideos)
}
