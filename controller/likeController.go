package controller

import (
	"github.com/gin-gonic/gin"

	"playtube/service"
)

type LikeController struct {
	likeSrv service.LikeService
}

func NewLikeController(likeSrv service.LikeService) *LikeController {
	return &LikeController{
		likeSrv: likeSrv,
	}
}

func (ctl *LikeController) ToggleVideoLike(ctx *gin.Context) {
	ctl.toggle(ctx, service.KindVideo, "video_id", "Video liked/unliked successfully")
}

func (ctl *LikeController) ToggleCommentLike(ctx *gin.Context) {
	ctl.toggle(ctx, service.KindComment, "comment_id", "Comment liked/unliked successfully")
}

func (ctl *LikeController) ToggleTweetLike(ctx *gin.Context) {
	ctl.toggle(ctx, service.KindTweet, "tweet_id", "Tweet liked/unliked successfully")
}

func (ctl *LikeController) toggle(ctx *gin.Context, kind, param, msg string) {
	user_id := ctx.GetString("user_id")
	entity, err := ctl.likeSrv.Toggle(ctx.Request.Context(), kind, ctx.Param(param), user_id)
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, entity.Document(), msg)
}

func (ctl *LikeController) GetLikedVideos(ctx *gin.Context) {
	user_id := ctx.GetString("user_id")
	videos, err := ctl.likeSrv.ListLikedVideos(ctx.Request.Context(), user_id)
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, videos, "Liked videos fetched successfully")
}
