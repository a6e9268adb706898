package impl

import (
	"context"
	"errors"
	"strings"
	"time"

	"playtube/dao"
	"playtube/pkg"
	"playtube/service"
)

type TweetServiceImpl struct {
	tweets service.TweetStore
	users  service.UserStore
}

func NewTweetService(tweets service.TweetStore, users service.UserStore) *TweetServiceImpl {
	return &TweetServiceImpl{tweets: tweets, users: users}
}

func (s *TweetServiceImpl) Create(ctx context.Context, ownerId, content string) (*dao.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, pkg.NewMsgError(pkg.ErrMissingField, "content is required", nil)
	}
	owner, err := pkg.ParseId(ownerId)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindById(ctx, owner); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, pkg.NewMsgError(pkg.ErrNotFound, "User not found", nil)
		}
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}

	tweet := dao.Tweet{
		OwnerId:   owner,
		Content:   content,
		Likes:     []string{},
		CreatedAt: time.Now(),
	}
	if err := s.tweets.Insert(ctx, &tweet); err != nil {
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}
	return &tweet, nil
}

func (s *TweetServiceImpl) ListByUser(ctx context.Context, userId string) ([]dao.Tweet, error) {
	owner, err := pkg.ParseId(userId)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindById(ctx, owner); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, pkg.NewMsgError(pkg.ErrNotFound, "User not found", nil)
		}
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}

	tweets, err := s.tweets.ListByOwner(ctx, owner)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}
	return tweets, nil
}

func (s *TweetServiceImpl) Update(ctx context.Context, tweetId, content string) (*dao.Tweet, error) {
	oid, err := pkg.ParseId(tweetId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, pkg.NewMsgError(pkg.ErrMissingField, "content is required", nil)
	}

	tweet, err := s.tweets.UpdateContent(ctx, oid, content)
	if err != nil {
		return nil, tweetStoreError(err)
	}
	return &tweet, nil
}

func (s *TweetServiceImpl) Delete(ctx context.Context, tweetId string) error {
	oid, err := pkg.ParseId(tweetId)
	if err != nil {
		return err
	}
	if err := s.tweets.Delete(ctx, oid); err != nil {
		return tweetStoreError(err)
	}
	return nil
}

func tweetStoreError(err error) error {
	if errors.Is(err, dao.ErrNotFound) {
		return pkg.NewMsgError(pkg.ErrNotFound, "Tweet not found", nil)
	}
	return pkg.NewError(pkg.ErrStoreUnavailable, err)
}
