package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playtube/pkg"
	"playtube/service"
)

type RegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

type UserController struct {
	userSrv service.UserService
}

func NewUserController(userSrv service.UserService) *UserController {
	return &UserController{
		userSrv: userSrv,
	}
}

func (ctl *UserController) Register(ctx *gin.Context) {
	req := RegisterReq{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, pkg.NewError(pkg.ErrValidation, err))
		return
	}

	user, err := ctl.userSrv.Register(ctx.Request.Context(), req.Username, req.Email, req.FullName, req.Password)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, http.StatusCreated, user, "User registered successfully")
}

func (ctl *UserController) Login(ctx *gin.Context) {
	req := LoginReq{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, pkg.NewError(pkg.ErrValidation, err))
		return
	}

	auth, err := ctl.userSrv.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, auth, "User logged in successfully")
}

// RefreshToken requires a valid access identity plus the previously
// issued refresh token, and rotates both.
func (ctl *UserController) RefreshToken(ctx *gin.Context) {
	user_id := ctx.GetString("user_id")
	req := RefreshReq{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, pkg.NewError(pkg.ErrValidation, err))
		return
	}

	auth, err := ctl.userSrv.Refresh(ctx.Request.Context(), user_id, req.RefreshToken)
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, auth, "Tokens refreshed successfully")
}

func (ctl *UserController) Logout(ctx *gin.Context) {
	user_id := ctx.GetString("user_id")
	if err := ctl.userSrv.Logout(ctx.Request.Context(), user_id); err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, nil, "User logged out successfully")
}

func (ctl *UserController) GetCurrentUser(ctx *gin.Context) {
	user_id := ctx.GetString("user_id")
	user, err := ctl.userSrv.GetById(ctx.Request.Context(), user_id)
	if err != nil {
		fail(ctx, err)
		return
	}
	okData(ctx, user, "User fetched successfully")
}
