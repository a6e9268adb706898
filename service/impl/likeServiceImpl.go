package impl

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"playtube/dao"
	"playtube/pkg"
	"playtube/service"
)

// Writes losing an optimistic-concurrency race are re-read and retried
// this many times before the caller is told to retry.
const maxToggleAttempts = 3

type LikeServiceImpl struct {
	stores map[string]service.LikeableStore
	videos service.VideoStore
}

func NewLikeService(videos service.VideoStore, stores ...service.LikeableStore) *LikeServiceImpl {
	byKind := make(map[string]service.LikeableStore, len(stores))
	for _, st := range stores {
		byKind[st.Kind()] = st
	}
	return &LikeServiceImpl{stores: byKind, videos: videos}
}

func (s *LikeServiceImpl) Toggle(ctx context.Context, kind, entityId, userId string) (dao.Likeable, error) {
	// validation precedes any store access
	oid, err := pkg.ParseId(entityId)
	if err != nil {
		return dao.Likeable{}, err
	}
	if userId == "" {
		return dao.Likeable{}, pkg.NewMsgError(pkg.ErrMissingField, "user identity is required", nil)
	}

	store, ok := s.stores[kind]
	if !ok {
		return dao.Likeable{}, pkg.NewError(pkg.ErrInternal, fmt.Errorf("unknown likeable kind %q", kind))
	}

	for attempt := 1; attempt <= maxToggleAttempts; attempt++ {
		doc, err := store.FindById(ctx, oid)
		if err != nil {
			if errors.Is(err, dao.ErrNotFound) {
				return dao.Likeable{}, pkg.NewMsgError(pkg.ErrNotFound, kindLabel(kind)+" not found", nil)
			}
			return dao.Likeable{}, pkg.NewError(pkg.ErrStoreUnavailable, err)
		}

		doc.Likes = toggleMember(doc.Likes, userId)

		updated, err := store.ReplaceVersioned(ctx, doc)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, dao.ErrVersionConflict) {
			return dao.Likeable{}, pkg.NewError(pkg.ErrStoreUnavailable, err)
		}
		log.Printf("stale %s-%s on like toggle, attempt %d\n", kind, entityId, attempt)
	}
	return dao.Likeable{}, pkg.NewError(pkg.ErrConflict, nil)
}

func (s *LikeServiceImpl) ListLikedVideos(ctx context.Context, userId string) ([]dao.Video, error) {
	if userId == "" {
		return nil, pkg.NewMsgError(pkg.ErrMissingField, "user identity is required", nil)
	}
	videos, err := s.videos.ListLikedBy(ctx, userId)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrStoreUnavailable, err)
	}
	// zero liked videos is a valid answer, not an error
	return videos, nil
}

// toggleMember removes the id when present, appends it otherwise. The
// rest of the set keeps its order, and repeated toggles can never leave
// a duplicate behind.
func toggleMember(likes []string, userId string) []string {
	for i, id := range likes {
		if id == userId {
			out := make([]string, 0, len(likes)-1)
			out = append(out, likes[:i]...)
			return append(out, likes[i+1:]...)
		}
	}
	out := make([]string, 0, len(likes)+1)
	out = append(out, likes...)
	return append(out, userId)
}

func kindLabel(kind string) string {
	if kind == "" {
		return "Entity"
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}
