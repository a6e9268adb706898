package impl

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"playtube/dao"
)

type fakeComments struct {
	docs     map[primitive.ObjectID]dao.Comment
	inserted []dao.Comment
	calls    int
}

func newFakeComments() *fakeComments {
	return &fakeComments{docs: make(map[primitive.ObjectID]dao.Comment)}
}

func (f *fakeComments) Insert(_ context.Context, c *dao.Comment) error {
	f.calls++
	c.Id = primitive.NewObjectID()
	f.docs[c.Id] = *c
	f.inserted = append(f.inserted, *c)
	return nil
}

func (f *fakeComments) ListByVideo(_ context.Context, videoId primitive.ObjectID, page, limit int) ([]dao.Comment, error) {
	f.calls++
	var out []dao.Comment
	for _, c := range f.docs {
		if c.VideoId == videoId {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComments) UpdateContent(_ context.Context, id primitive.ObjectID, content string) (dao.Comment, error) {
	f.calls++
	c, ok := f.docs[id]
	if !ok {
		return dao.Comment{}, dao.ErrNotFound
	}
	c.Content = content
	f.docs[id] = c
	return c, nil
}

func (f *fakeComments) Delete(_ context.Context, id primitive.ObjectID) error {
	f.calls++
	if _, ok := f.docs[id]; !ok {
		return dao.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func TestCommentAddValidatesBeforeStore(t *testing.T) {
	store := newFakeComments()
	srv := NewCommentService(store)
	owner := primitive.NewObjectID().Hex()
	video := primitive.NewObjectID().Hex()

	cases := []struct {
		name                    string
		videoId, owner, content string
	}{
		{"bad video id", "nope", owner, "hi"},
		{"missing video id", "", owner, "hi"},
		{"blank content", video, owner, "   "},
		{"bad owner", video, "nope", "hi"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := srv.Add(context.Background(), c.videoId, c.owner, c.content)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := appStatus(t, err); got != 400 {
				t.Fatalf("status = %d, want 400", got)
			}
		})
	}
	if store.calls != 0 {
		t.Fatalf("store touched %d times on invalid input", store.calls)
	}
}

func TestCommentAddInitializesLikes(t *testing.T) {
	store := newFakeComments()
	srv := NewCommentService(store)

	comment, err := srv.Add(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "first!")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if comment.Likes == nil || len(comment.Likes) != 0 {
		t.Fatalf("likes = %v, want empty slice", comment.Likes)
	}
	if comment.Id.IsZero() {
		t.Fatal("inserted comment has no id")
	}
}

func TestCommentUpdateNotFound(t *testing.T) {
	srv := NewCommentService(newFakeComments())

	_, err := srv.Update(context.Background(), primitive.NewObjectID().Hex(), "edited")
	if got := appStatus(t, err); got != 404 {
		t.Fatalf("status = %d, want 404", got)
	}
	if err.Error() == "" {
		t.Fatal("empty error message")
	}
}

func TestCommentUpdateRewritesContent(t *testing.T) {
	store := newFakeComments()
	srv := NewCommentService(store)
	comment, err := srv.Add(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "v1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := srv.Update(context.Background(), comment.Id.Hex(), "v2")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != "v2" {
		t.Fatalf("content = %q, want v2", updated.Content)
	}
}

func TestCommentDelete(t *testing.T) {
	store := newFakeComments()
	srv := NewCommentService(store)
	comment, err := srv.Add(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "bye")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := srv.Delete(context.Background(), comment.Id.Hex()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := srv.Delete(context.Background(), comment.Id.Hex()); appStatus(t, err) != 404 {
		t.Fatalf("second delete should 404, got %v", err)
	}
}

func TestCommentListPagination(t *testing.T) {
	store := newFakeComments()
	srv := NewCommentService(store)
	video := primitive.NewObjectID().Hex()

	if _, err := srv.ListByVideo(context.Background(), video, "0", "10"); appStatus(t, err) != 400 {
		t.Fatalf("page 0 should 400, got %v", err)
	}
	if store.calls != 0 {
		t.Fatal("store queried despite invalid pagination")
	}

	list, err := srv.ListByVideo(context.Background(), video, "", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty listing, got %d items", len(list))
	}
}
