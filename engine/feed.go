package engine

import (
	"context"
	"math"

	"github.com/yfei-chen/circlefeed/model"
)

// feedBatchSize is how many posts a stream pulls from the store at a
// time while filtering.
const feedBatchSize = 30

// Feeds assembles visibility-filtered post feeds. Read-only: a feed
// request never writes, so aborting one mid-stream has no side effect.
type Feeds struct {
	Posts      PostStore
	Visibility *Visibility
}

// HomeFeed streams the posts visible to viewer on their home feed,
// most recent first.
func (f *Feeds) HomeFeed(ctx context.Context, viewer *model.User) *Stream {
	return &Stream{
		ctx:        ctx,
		viewer:     viewer,
		feedCtx:    ContextHome,
		fetch:      f.Posts.ListAll,
		visibility: f.Visibility,
		cursor:     math.MaxInt32,
	}
}

// ProfileFeed streams profileOwner's posts visible to viewer, most
// recent first.
func (f *Feeds) ProfileFeed(ctx context.Context, viewer *model.User, profileOwner *model.User) *Stream {
	fetch := func(ctx context.Context, beforeCursor int32, limit int) ([]*model.Post, error) {
		return f.Posts.ListByAuthor(ctx, profileOwner.Id, beforeCursor, limit)
	}
	return &Stream{
		ctx:        ctx,
		viewer:     viewer,
		feedCtx:    ContextProfile,
		fetch:      fetch,
		visibility: f.Visibility,
		cursor:     math.MaxInt32,
	}
}

// Stream is a pull-based view over the store's cursor-descending post
// order, applying the visibility predicate one post at a time. Each
// request builds its own Stream, so there is no shared state; the
// stream stops early when its context is canceled.
type Stream struct {
	ctx        context.Context
	viewer     *model.User
	feedCtx    FeedContext
	fetch      func(ctx context.Context, beforeCursor int32, limit int) ([]*model.Post, error)
	visibility *Visibility

	buffer []*model.Post
	cursor int32
	done   bool
}

// Next returns the next visible post. ok is false once the stream is
// exhausted. Store errors and context cancellation surface unchanged.
func (s *Stream) Next() (post *model.Post, ok bool, err error) {
	for {
		if err := s.ctx.Err(); err != nil {
			return nil, false, err
		}
		for len(s.buffer) > 0 {
			candidate := s.buffer[0]
			s.buffer = s.buffer[1:]
			s.cursor = candidate.Cursor
			if s.visibility.CanSee(s.ctx, s.viewer, candidate, s.feedCtx) {
				return candidate, true, nil
			}
		}
		if s.done {
			return nil, false, nil
		}
		batch, err := s.fetch(s.ctx, s.cursor, feedBatchSize)
		if err != nil {
			return nil, false, err
		}
		if len(batch) < feedBatchSize {
			s.done = true
		}
		s.buffer = batch
	}
}

// Collect drains the stream into a slice. The slice is non-nil even
// when empty, so handlers render an empty feed as [].
func (s *Stream) Collect() ([]*model.Post, error) {
	posts := []*model.Post{}
	for {
		post, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return posts, nil
		}
		posts = append(posts, post)
	}
}
