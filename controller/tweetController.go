package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playtube/pkg"
	"playtube/service"
)

type TweetBody struct {
	Content string `json:"content"`
}

type TweetController struct {
	tweetSrv service.TweetService
}

func NewTweetController(tweetSrv service.TweetService) *TweetController {
	return &TweetController{
		tweetSrv: tweetSrv,
	}
}

func (ctl *TweetController) CreateTweet(ctx *gin.Context) {
	user_id := ctx.GetString("user_id")
	req := TweetBody{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, pkg.NewError(pkg.ErrValidation, err))
		return
	}

	tweet, err := ctl.tweetSrv.Create(ctx.Request.Context(), user_id, req.Content)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, http.StatusCreated, tweet, "Tweet created successfully")
}

func (ctl *TweetController) GetUserTweets(ctx *gin.Context) {
	tweets, err := ctl.tweetSrv.ListByUser(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, tweets, "Tweets fetched successfully")
}

func (ctl *TweetController) UpdateTweet(ctx *gin.Context) {
	req := TweetBody{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, pkg.NewError(pkg.ErrValidation, err))
		return
	}

	tweet, err := ctl.tweetSrv.Update(ctx.Request.Context(), ctx.Param("tweet_id"), req.Content)
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, tweet, "Tweet updated successfully")
}

func (ctl *TweetController) DeleteTweet(ctx *gin.Context) {
	if err := ctl.tweetSrv.Delete(ctx.Request.Context(), ctx.Param("tweet_id")); err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, nil, "Tweet deleted successfully")
}
