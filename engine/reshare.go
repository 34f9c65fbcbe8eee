package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/yfei-chen/circlefeed/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreatePostInput is everything needed to publish a post. Author must
// have Followings preloaded so the source visibility check can run.
type CreatePostInput struct {
	Author         *model.User
	Content        string
	IsPublic       bool
	Circles        []*model.Circle
	Reshareable    bool
	ResharedFromID *string
	MediaList      []string
}

// Resharing validates and persists new posts, resolving reshare chains
// down to their original post and notifying the source author.
type Resharing struct {
	Posts         PostStore
	Notifications NotificationSink
	Sanitize      Sanitizer
	Visibility    *Visibility
}

// CreatePost creates a post for input.Author and returns its id. For
// reshares, checks run in a fixed order and fail fast on the first
// violated precondition; see the sentinel errors in this package. The
// post and its reshare notification commit in one transaction, so a
// sink failure leaves no post behind. The post id is generated before
// the store call, which keeps caller-side retries idempotent.
func (r *Resharing) CreatePost(ctx context.Context, input CreatePostInput) (string, error) {
	post := &model.Post{
		Id:          uuid.New().String(),
		CreatedAt:   time.Now(),
		AuthorID:    input.Author.Id,
		Content:     r.Sanitize.Clean(input.Content),
		IsPublic:    input.IsPublic,
		Circles:     input.Circles,
		Reshareable: input.Reshareable,
	}

	var source *model.Post
	if input.ResharedFromID != nil {
		if len(input.MediaList) > 0 {
			// when resharing, only allow content, e.g. no media
			return "", ErrMediaNotAllowedOnReshare
		}
		given, err := r.Posts.FindByID(ctx, *input.ResharedFromID)
		if err != nil {
			return "", err
		}
		// If the given source is itself a reshare, chain to its original
		// post instead, so reshares always point at a non-reshared post.
		source = given
		if given.ResharedFrom != nil {
			source = given.ResharedFrom
		}
		// Profile context on purpose: the user is acting on a known post,
		// typically from a profile or a shared link, so the home follow
		// gate does not apply.
		if !r.Visibility.CanSee(ctx, input.Author, source, ContextProfile) {
			return "", ErrSourceNotVisible
		}
		if !source.Reshareable {
			return "", ErrSourceNotReshareable
		}
		if !input.Reshareable {
			// a reshare must stay reshareable, otherwise the chain breaks
			return "", ErrReshareabilityMismatch
		}
		post.ResharedFromID = &source.Id
		post.ResharedFrom = source
	} else if len(input.MediaList) > 0 {
		mediaJSON, err := json.Marshal(input.MediaList)
		if err != nil {
			return "", errors.Wrap(err, "encode media list")
		}
		post.MediaList = datatypes.JSON(mediaJSON)
	}

	var commit GormTransaction
	if source != nil {
		notification := &model.Notification{
			Id:            uuid.New().String(),
			CreatedAt:     time.Now(),
			Action:        model.ActionReshare,
			NotifyingHref: PostHref(post.Id),
			NotifiedHref:  PostHref(source.Id),
			OwnerID:       source.AuthorID,
		}
		commit = func(tx *gorm.DB) error {
			return r.Notifications.Record(tx, notification)
		}
	}

	if err := r.Posts.Insert(ctx, post, commit); err != nil {
		return "", errors.Wrap(err, "persist post")
	}
	return post.Id, nil
}

// PostHref is the canonical address of a post, used in notifications.
func PostHref(postId string) string {
	return fmt.Sprintf("/post/%s", postId)
}
