package impl

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"playtube/dao"
	"playtube/service"
)

// fakeVideos is a versioned in-memory stand-in for the videos
// collection.
type fakeVideos struct {
	docs      map[primitive.ObjectID]dao.Video
	afterFind func()
}

func newFakeVideos() *fakeVideos {
	return &fakeVideos{docs: map[primitive.ObjectID]dao.Video{}}
}

func (f *fakeVideos) Insert(_ context.Context, v *dao.Video) error {
	v.Id = primitive.NewObjectID()
	f.docs[v.Id] = *v
	return nil
}

func (f *fakeVideos) FindById(_ context.Context, id primitive.ObjectID) (dao.Video, error) {
	v, ok := f.docs[id]
	if !ok {
		return dao.Video{}, dao.ErrNotFound
	}
	if f.afterFind != nil {
		f.afterFind()
	}
	return v, nil
}

func (f *fakeVideos) UpdateFields(_ context.Context, id primitive.ObjectID, fields map[string]any) (dao.Video, error) {
	v, ok := f.docs[id]
	if !ok {
		return dao.Video{}, dao.ErrNotFound
	}
	if title, ok := fields["title"].(string); ok {
		v.Title = title
	}
	if desc, ok := fields["description"].(string); ok {
		v.Description = desc
	}
	if thumb, ok := fields["thumbnailUrl"].(string); ok {
		v.ThumbnailUrl = thumb
	}
	f.docs[id] = v
	return v, nil
}

func (f *fakeVideos) Delete(_ context.Context, id primitive.ObjectID) (dao.Video, error) {
	v, ok := f.docs[id]
	if !ok {
		return dao.Video{}, dao.ErrNotFound
	}
	delete(f.docs, id)
	return v, nil
}

func (f *fakeVideos) ReplaceVersioned(_ context.Context, v dao.Video) (dao.Video, error) {
	cur, ok := f.docs[v.Id]
	if !ok || cur.Version != v.Version {
		return dao.Video{}, dao.ErrVersionConflict
	}
	v.Version++
	f.docs[v.Id] = v
	return v, nil
}

func (f *fakeVideos) ListLikedBy(context.Context, string) ([]dao.Video, error) {
	return nil, nil
}

type fakeChannel struct {
	pipeline mongo.Pipeline
	items    []dao.Video
	total    int64
	calls    int
}

func (f *fakeChannel) RunChannelListing(_ context.Context, p mongo.Pipeline) ([]dao.Video, int64, error) {
	f.calls++
	f.pipeline = p
	if f.items == nil {
		return []dao.Video{}, f.total, nil
	}
	return f.items, f.total, nil
}

type fakeCleanup struct {
	urls []string
}

func (f *fakeCleanup) EnqueueRemoval(urls ...string) error {
	f.urls = append(f.urls, urls...)
	return nil
}

type stubMedia struct{}

func (stubMedia) UploadMedia(name string, _ io.Reader) (string, error) {
	return "https://bucket.example/media/" + name + ".mp4", nil
}

func (stubMedia) UploadThumbnail(name string, _ io.Reader) (string, error) {
	return "https://bucket.example/thumbnail/" + name + ".jpg", nil
}

func newVideoService(videos *fakeVideos, channel *fakeChannel, cleanup *fakeCleanup) *VideoServiceImpl {
	return NewVideoService(videos, channel, stubMedia{}, cleanup)
}

func TestTogglePublishSymmetry(t *testing.T) {
	videos := newFakeVideos()
	id := primitive.NewObjectID()
	videos.docs[id] = dao.Video{Id: id, Title: "a", IsPublished: false}
	srv := newVideoService(videos, &fakeChannel{}, &fakeCleanup{})

	first, err := srv.TogglePublish(context.Background(), id.Hex())
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.IsPublished {
		t.Fatal("first toggle should publish")
	}

	second, err := srv.TogglePublish(context.Background(), id.Hex())
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.IsPublished {
		t.Fatal("second toggle should unpublish")
	}
}

func TestTogglePublishRetriesThenConflicts(t *testing.T) {
	videos := newFakeVideos()
	id := primitive.NewObjectID()
	videos.docs[id] = dao.Video{Id: id}
	videos.afterFind = func() {
		v := videos.docs[id]
		v.Version++
		videos.docs[id] = v
	}
	srv := newVideoService(videos, &fakeChannel{}, &fakeCleanup{})

	_, err := srv.TogglePublish(context.Background(), id.Hex())
	if err == nil {
		t.Fatal("expected conflict")
	}
	if got := appStatus(t, err); got != 409 {
		t.Fatalf("status = %d, want 409", got)
	}
}

func TestTogglePublishRejectsBadId(t *testing.T) {
	srv := newVideoService(newFakeVideos(), &fakeChannel{}, &fakeCleanup{})
	_, err := srv.TogglePublish(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := appStatus(t, err); got != 400 {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestListChannelPagination(t *testing.T) {
	cases := []struct {
		name   string
		page   string
		limit  string
		ok     bool
		status int
	}{
		{"defaults", "", "", true, 0},
		{"explicit", "2", "5", true, 0},
		{"zero page", "0", "5", false, 400},
		{"negative page", "-3", "5", false, 400},
		{"zero limit", "1", "0", false, 400},
		{"non-numeric page", "two", "5", false, 400},
		{"non-numeric limit", "1", "ten", false, 400},
	}
	for _, c := range cases {
		channel := &fakeChannel{}
		srv := newVideoService(newFakeVideos(), channel, &fakeCleanup{})
		page, err := srv.ListChannel(context.Background(), service.ListingRequest{
			Username: "Alice", Email: "Alice@Example.com",
			Page: c.page, Limit: c.limit,
		})
		if c.ok {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", c.name, err)
			}
			if page.Page < 1 || page.Limit < 1 {
				t.Fatalf("%s: page normalized to (%d, %d)", c.name, page.Page, page.Limit)
			}
			continue
		}
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if got := appStatus(t, err); got != c.status {
			t.Fatalf("%s: status = %d, want %d", c.name, got, c.status)
		}
		if channel.calls != 0 {
			t.Fatalf("%s: store queried despite invalid input", c.name)
		}
	}
}

func TestListChannelEmptyPageIsSuccess(t *testing.T) {
	channel := &fakeChannel{items: []dao.Video{}, total: 0}
	srv := newVideoService(newFakeVideos(), channel, &fakeCleanup{})

	page, err := srv.ListChannel(context.Background(), service.ListingRequest{
		Username: "alice", Email: "alice@example.com", Page: "99", Limit: "5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 || page.Page != 99 || page.Limit != 5 || page.Total != 0 {
		t.Fatalf("got page %+v, want empty page 99/5", page)
	}
}

func TestListChannelRequiresUserContext(t *testing.T) {
	srv := newVideoService(newFakeVideos(), &fakeChannel{}, &fakeCleanup{})
	_, err := srv.ListChannel(context.Background(), service.ListingRequest{Username: "alice"})
	if err == nil {
		t.Fatal("expected error for missing email")
	}
	if got := appStatus(t, err); got != 400 {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestUpdateRejectsBlankFields(t *testing.T) {
	videos := newFakeVideos()
	id := primitive.NewObjectID()
	videos.docs[id] = dao.Video{Id: id, Title: "keep"}
	srv := newVideoService(videos, &fakeChannel{}, &fakeCleanup{})

	blank := "   "
	_, err := srv.Update(context.Background(), id.Hex(), service.VideoUpdate{Title: &blank})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := appStatus(t, err); got != 400 {
		t.Fatalf("status = %d, want 400", got)
	}
	if videos.docs[id].Title != "keep" {
		t.Fatal("blank update must not mutate the document")
	}
}

func TestUpdateAppliesProvidedFields(t *testing.T) {
	videos := newFakeVideos()
	id := primitive.NewObjectID()
	videos.docs[id] = dao.Video{Id: id, Title: "old", Description: "d"}
	srv := newVideoService(videos, &fakeChannel{}, &fakeCleanup{})

	title := "new title"
	got, err := srv.Update(context.Background(), id.Hex(), service.VideoUpdate{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "new title" || got.Description != "d" {
		t.Fatalf("got %+v", got)
	}
}

func TestDeleteEnqueuesObjectCleanup(t *testing.T) {
	videos := newFakeVideos()
	cleanup := &fakeCleanup{}
	id := primitive.NewObjectID()
	videos.docs[id] = dao.Video{
		Id:           id,
		MediaUrl:     "https://bucket.example/media/x.mp4",
		ThumbnailUrl: "https://bucket.example/thumbnail/x.jpg",
	}
	srv := newVideoService(videos, &fakeChannel{}, cleanup)

	if err := srv.Delete(context.Background(), id.Hex()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := videos.docs[id]; ok {
		t.Fatal("video still present after delete")
	}
	if len(cleanup.urls) != 2 {
		t.Fatalf("cleanup urls = %v, want media and thumbnail", cleanup.urls)
	}
}

func TestPublishValidatesFields(t *testing.T) {
	srv := newVideoService(newFakeVideos(), &fakeChannel{}, &fakeCleanup{})
	owner := primitive.NewObjectID().Hex()

	_, err := srv.Publish(context.Background(), owner, " ", "desc",
		strings.NewReader("v"), strings.NewReader("t"))
	if err == nil {
		t.Fatal("expected error for blank title")
	}
	if got := appStatus(t, err); got != 400 {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestPublishStoresUnpublishedVideo(t *testing.T) {
	videos := newFakeVideos()
	srv := newVideoService(videos, &fakeChannel{}, &fakeCleanup{})
	owner := primitive.NewObjectID()

	video, err := srv.Publish(context.Background(), owner.Hex(), "title", "desc",
		strings.NewReader("v"), strings.NewReader("t"))
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if video.IsPublished {
		t.Fatal("new videos must start unpublished")
	}
	if video.MediaUrl == "" || video.ThumbnailUrl == "" {
		t.Fatalf("missing urls: %+v", video)
	}
	if video.Likes == nil || len(video.Likes) != 0 {
		t.Fatalf("likes should start as an empty set, got %v", video.Likes)
	}
}

type brokenThumbMedia struct {
	stubMedia
}

func (brokenThumbMedia) UploadThumbnail(string, io.Reader) (string, error) {
	return "", errors.New("bucket unreachable")
}

func TestPublishReclaimsMediaOnThumbnailFailure(t *testing.T) {
	videos := newFakeVideos()
	cleanup := &fakeCleanup{}
	srv := NewVideoService(videos, &fakeChannel{}, brokenThumbMedia{}, cleanup)
	owner := primitive.NewObjectID()

	_, err := srv.Publish(context.Background(), owner.Hex(), "title", "desc",
		strings.NewReader("v"), strings.NewReader("t"))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(videos.docs) != 0 {
		t.Fatal("video inserted despite failed upload")
	}
	if len(cleanup.urls) != 1 || !strings.Contains(cleanup.urls[0], "/media/") {
		t.Fatalf("cleanup urls = %v, want the stored media url", cleanup.urls)
	}
}
