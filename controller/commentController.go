package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playtube/pkg"
	"playtube/service"
)

type CommentBody struct {
	Content string `json:"content"`
}

type CommentController struct {
	commSrv service.CommentService
}

func NewCommentController(commSrv service.CommentService) *CommentController {
	return &CommentController{
		commSrv: commSrv,
	}
}

func (ctl *CommentController) ListVideoComments(ctx *gin.Context) {
	comments, err := ctl.commSrv.ListByVideo(
		ctx.Request.Context(),
		ctx.Param("video_id"),
		ctx.Query("page"),
		ctx.Query("limit"),
	)
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, comments, "Comments fetched successfully")
}

func (ctl *CommentController) AddComment(ctx *gin.Context) {
	user_id := ctx.GetString("user_id")
	req := CommentBody{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, pkg.NewError(pkg.ErrValidation, err))
		return
	}

	comment, err := ctl.commSrv.Add(ctx.Request.Context(), ctx.Param("video_id"), user_id, req.Content)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, http.StatusCreated, comment, "Comment added successfully")
}

func (ctl *CommentController) UpdateComment(ctx *gin.Context) {
	req := CommentBody{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, pkg.NewError(pkg.ErrValidation, err))
		return
	}

	comment, err := ctl.commSrv.Update(ctx.Request.Context(), ctx.Param("comment_id"), req.Content)
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, comment, "Comment updated successfully")
}

func (ctl *CommentController) DeleteComment(ctx *gin.Context) {
	if err := ctl.commSrv.Delete(ctx.Request.Context(), ctx.Param("comment_id")); err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, nil, "Comment deleted successfully")
}
