package impl

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"playtube/config"
	"playtube/dao"
	"playtube/middleware/jwt"
	"playtube/pkg"
	"playtube/service"
)

type UserServiceImpl struct {
	users  service.UserStore
	tokens service.TokenStore
}

func NewUserService(users service.UserStore, tokens service.TokenStore) *UserServiceImpl {
	return &UserServiceImpl{users: users, tokens: tokens}
}

func (s *UserServiceImpl) Register(ctx context.Context, username, email, fullName, password string) (*dao.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || strings.TrimSpace(password) == "" {
		return nil, pkg.NewMsgError(pkg.ErrMissingField, "all fields are required", nil)
	}

	_, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return nil, pkg.NewError(pkg.ErrAccountExisted, nil)
	}
	if !errors.Is(err, dao.ErrNotFound) {
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to encrypt password, detail: %v\n", err)
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	user := dao.User{
		Username: username,
		Email:    email,
		FullName: fullName,
		Password: string(hashed),
	}
	if err := s.users.Insert(ctx, &user); err != nil {
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}
	return &user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, username, password string) (*service.AuthInfo, error) {
	user, err := s.users.FindByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, pkg.NewError(pkg.ErrSignFailed, nil)
		}
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, pkg.NewError(pkg.ErrSignFailed, nil)
	}
	return s.issueTokens(ctx, user)
}

// Refresh rotates the stored refresh token: the presented token must
// match the stored one, and a new pair replaces it.
func (s *UserServiceImpl) Refresh(ctx context.Context, userId, refreshToken string) (*service.AuthInfo, error) {
	oid, err := pkg.ParseId(userId)
	if err != nil {
		return nil, err
	}

	stored, err := s.tokens.GetRefreshToken(ctx, userId)
	if err != nil || stored == "" || stored != refreshToken {
		return nil, pkg.NewError(pkg.ErrAuthException, err)
	}

	user, err := s.users.FindById(ctx, oid)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, pkg.NewMsgError(pkg.ErrNotFound, "User not found", nil)
		}
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}
	return s.issueTokens(ctx, user)
}

func (s *UserServiceImpl) Logout(ctx context.Context, userId string) error {
	if userId == "" {
		return pkg.NewMsgError(pkg.ErrMissingField, "user identity is required", nil)
	}
	if err := s.tokens.DropRefreshToken(ctx, userId); err != nil {
		return pkg.NewError(pkg.ErrInternal, err)
	}
	return nil
}

func (s *UserServiceImpl) GetById(ctx context.Context, userId string) (*dao.User, error) {
	oid, err := pkg.ParseId(userId)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindById(ctx, oid)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, pkg.NewMsgError(pkg.ErrNotFound, "User not found", nil)
		}
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}
	return &user, nil
}

func (s *UserServiceImpl) issueTokens(ctx context.Context, user dao.User) (*service.AuthInfo, error) {
	id := user.Id.Hex()
	access, err := jwt.NewAccessToken(id)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}
	refresh, err := jwt.NewRefreshToken(id)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}
	if err := s.tokens.SaveRefreshToken(ctx, id, refresh, config.C.RefreshTokenTtl); err != nil {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	return &service.AuthInfo{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
