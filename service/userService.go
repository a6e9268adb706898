package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"playtube/dao"
)

type UserStore interface {
	Insert(ctx context.Context, u *dao.User) error
	FindById(ctx context.Context, id primitive.ObjectID) (dao.User, error)
	FindByUsername(ctx context.Context, username string) (dao.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (dao.User, error)
}

// TokenStore keeps one refresh token per user, expiring with the token.
type TokenStore interface {
	SaveRefreshToken(ctx context.Context, userId, token string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, userId string) (string, error)
	DropRefreshToken(ctx context.Context, userId string) error
}

type AuthInfo struct {
	User         dao.User `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

type UserService interface {
	Register(ctx context.Context, username, email, fullName, password string) (*dao.User, error)
	Login(ctx context.Context, username, password string) (*AuthInfo, error)
	Refresh(ctx context.Context, userId, refreshToken string) (*AuthInfo, error)
	Logout(ctx context.Context, userId string) error
	GetById(ctx context.Context, userId string) (*dao.User, error)
}
