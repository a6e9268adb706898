package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playtube/pkg"
	"playtube/service"
)

type VideoController struct {
	videoSrv service.VideoService
}

func NewVideoController(videoSrv service.VideoService) *VideoController {
	return &VideoController{
		videoSrv: videoSrv,
	}
}

func (ctl *VideoController) Publish(ctx *gin.Context) {
	user_id := ctx.GetString("user_id")
	title := ctx.PostForm("title")
	description := ctx.PostForm("description")

	videoFH, err := ctx.FormFile("video")
	if err != nil {
		fail(ctx, pkg.NewMsgError(pkg.ErrMissingField, "video file is required", err))
		return
	}
	thumbnailFH, err := ctx.FormFile("thumbnail")
	if err != nil {
		fail(ctx, pkg.NewMsgError(pkg.ErrMissingField, "thumbnail file is required", err))
		return
	}

	videoFile, err := videoFH.Open()
	if err != nil {
		fail(ctx, pkg.NewError(pkg.ErrValidation, err))
		return
	}
	defer videoFile.Close()
	thumbnailFile, err := thumbnailFH.Open()
	if err != nil {
		fail(ctx, pkg.NewError(pkg.ErrValidation, err))
		return
	}
	defer thumbnailFile.Close()

	video, err := ctl.videoSrv.Publish(ctx.Request.Context(), user_id, title, description, videoFile, thumbnailFile)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, http.StatusCreated, video, "Video uploaded successfully")
}

func (ctl *VideoController) ListChannel(ctx *gin.Context) {
	req := service.ListingRequest{
		Username: ctx.Param("username"),
		Email:    ctx.Param("email"),
		Page:     ctx.Query("page"),
		Limit:    ctx.Query("limit"),
		Query:    ctx.Query("query"),
		SortBy:   ctx.Query("sortBy"),
		SortType: ctx.Query("sortType"),
		OwnerId:  ctx.Query("userId"),
	}

	page, err := ctl.videoSrv.ListChannel(ctx.Request.Context(), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, page, "Videos fetched successfully")
}

func (ctl *VideoController) GetById(ctx *gin.Context) {
	video, err := ctl.videoSrv.GetById(ctx.Request.Context(), ctx.Param("video_id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, video, "Video found successfully")
}

func (ctl *VideoController) Update(ctx *gin.Context) {
	var upd service.VideoUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		fail(ctx, pkg.NewError(pkg.ErrValidation, err))
		return
	}

	video, err := ctl.videoSrv.Update(ctx.Request.Context(), ctx.Param("video_id"), upd)
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, video, "Video updated successfully")
}

func (ctl *VideoController) Delete(ctx *gin.Context) {
	if err := ctl.videoSrv.Delete(ctx.Request.Context(), ctx.Param("video_id")); err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, nil, "Video deleted successfully")
}

func (ctl *VideoController) TogglePublish(ctx *gin.Context) {
	video, err := ctl.videoSrv.TogglePublish(ctx.Request.Context(), ctx.Param("video_id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, video, "Video status updated successfully")
}
