package engine

import (
	"context"
	"sort"

	"github.com/yfei-chen/circlefeed/model"
	"gorm.io/gorm"
)

// fakeOracle answers membership from an in-memory map of circle id to
// member ids.
type fakeOracle struct {
	members map[string][]string
	err     error
}

func (o *fakeOracle) IsMember(ctx context.Context, circleId string, userId string) (bool, error) {
	if o.err != nil {
		return false, o.err
	}
	for _, member := range o.members[circleId] {
		if member == userId {
			return true, nil
		}
	}
	return false, nil
}

// fakePostStore keeps posts in memory with the same cursor-descending
// list contract as the real store. Insert mimics the transactional
// behavior: a failing commit callback leaves no post behind.
type fakePostStore struct {
	posts      map[string]*model.Post
	nextCursor int32
	insertErr  error
	listErr    error
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[string]*model.Post{}}
}

func (s *fakePostStore) Insert(ctx context.Context, post *model.Post, commit GormTransaction) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.nextCursor++
	post.Cursor = s.nextCursor
	s.posts[post.Id] = post
	if commit != nil {
		if err := commit(&gorm.DB{}); err != nil {
			delete(s.posts, post.Id)
			return err
		}
	}
	return nil
}

func (s *fakePostStore) FindByID(ctx context.Context, id string) (*model.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return post, nil
}

func (s *fakePostStore) ListAll(ctx context.Context, beforeCursor int32, limit int) ([]*model.Post, error) {
	return s.list(beforeCursor, limit, func(*model.Post) bool { return true })
}

func (s *fakePostStore) ListByAuthor(ctx context.Context, authorId string, beforeCursor int32, limit int) ([]*model.Post, error) {
	return s.list(beforeCursor, limit, func(p *model.Post) bool { return p.AuthorID == authorId })
}

func (s *fakePostStore) list(beforeCursor int32, limit int, match func(*model.Post) bool) ([]*model.Post, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var posts []*model.Post
	for _, post := range s.posts {
		if post.Cursor < beforeCursor && match(post) {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].Cursor > posts[j].Cursor })
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// fakeSink collects notifications, optionally failing every Record.
type fakeSink struct {
	recorded []*model.Notification
	err      error
}

func (s *fakeSink) Record(tx *gorm.DB, notification *model.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.recorded = append(s.recorded, notification)
	return nil
}

// passthroughSanitizer leaves content untouched so tests can assert on
// exact strings.
type passthroughSanitizer struct{}

func (passthroughSanitizer) Clean(raw string) string { return raw }

func newTestUser(id string, followings ...*model.User) *model.User {
	return &model.User{Id: id, Followings: followings}
}

// newTestResharing wires a Resharing engine over the in-memory fakes.
func newTestResharing(posts *fakePostStore, sink *fakeSink, oracle *fakeOracle) *Resharing {
	if oracle == nil {
		oracle = &fakeOracle{}
	}
	return &Resharing{
		Posts:         posts,
		Notifications: sink,
		Sanitize:      passthroughSanitizer{},
		Visibility:    &Visibility{Memberships: oracle},
	}
}
