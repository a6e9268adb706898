package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playtube/pkg"
)

// ok writes the fixed success envelope; statusCode mirrors the HTTP
// status.
func ok(ctx *gin.Context, status int, data any, msg string) {
	ctx.JSON(status, pkg.NewResponse(status, data, msg))
}

// fail hands the error to the ErrHandler middleware.
func fail(ctx *gin.Context, err error) {
	ctx.Error(err)
	ctx.Abort()
}

func okData(ctx *gin.Context, data any, msg string) {
	ok(ctx, http.StatusOK, data, msg)
}
