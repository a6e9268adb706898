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

type CommentServiceImpl struct {
	comments service.CommentStore
}

func NewCommentService(comments service.CommentStore) *CommentServiceImpl {
	return &CommentServiceImpl{comments: comments}
}

func (s *CommentServiceImpl) ListByVideo(ctx context.Context, videoId, page, limit string) ([]dao.Comment, error) {
	oid, err := pkg.ParseId(videoId)
	if err != nil {
		return nil, err
	}
	p, l, err := normalizePage(page, limit)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByVideo(ctx, oid, p, l)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}
	return comments, nil
}

func (s *CommentServiceImpl) Add(ctx context.Context, videoId, ownerId, content string) (*dao.Comment, error) {
	vid, err := pkg.ParseId(videoId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, pkg.NewMsgError(pkg.ErrMissingField, "content is required", nil)
	}
	owner, err := pkg.ParseId(ownerId)
	if err != nil {
		return nil, err
	}

	comment := dao.Comment{
		VideoId:   vid,
		OwnerId:   owner,
		Content:   content,
		Likes:     []string{},
		CreatedAt: time.Now(),
	}
	if err := s.comments.Insert(ctx, &comment); err != nil {
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}
	return &comment, nil
}

func (s *CommentServiceImpl) Update(ctx context.Context, commentId, content string) (*dao.Comment, error) {
	oid, err := pkg.ParseId(commentId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, pkg.NewMsgError(pkg.ErrMissingField, "content is required", nil)
	}

	comment, err := s.comments.UpdateContent(ctx, oid, content)
	if err != nil {
		return nil, commentStoreError(err)
	}
	return &comment, nil
}

func (s *CommentServiceImpl) Delete(ctx context.Context, commentId string) error {
	oid, err := pkg.ParseId(commentId)
	if err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, oid); err != nil {
		return commentStoreError(err)
	}
	return nil
}

func commentStoreError(err error) error {
	if errors.Is(err, dao.ErrNotFound) {
		return pkg.NewMsgError(pkg.ErrNotFound, "Comment not found", nil)
	}
	return pkg.NewError(pkg.ErrStoreUnavailable, err)
}
