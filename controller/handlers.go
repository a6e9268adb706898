package controller

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"playtube/pkg"
)

// ErrHandler converts collected handler errors into the fixed error
// envelope. Raw store errors are logged, never surfaced.
func ErrHandler(ctx *gin.Context) {
	ctx.Next()

	errorList := ctx.Errors.ByType(gin.ErrorTypeAny)
	if len(errorList) == 0 {
		return
	}
	// only use the first one
	err := errorList[0].Err

	var appE *pkg.AppError
	if !errors.As(err, &appE) {
		appE = pkg.NewError(pkg.ErrInternal, err)
	}
	if appE.Err != nil {
		log.Printf("%s %s failed, detail: %v\n", ctx.Request.Method, ctx.FullPath(), appE.Err)
	}

	ctx.JSON(appE.HttpStatus, pkg.NewErrResponse(appE))
	if gin.Mode() == gin.ReleaseMode {
		ctx.Errors = nil
	}
}
