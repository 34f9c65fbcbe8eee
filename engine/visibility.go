package engine

import (
	"context"

	"github.com/yfei-chen/circlefeed/model"
	. "github.com/yfei-chen/circlefeed/utils/log"
)

// Visibility decides whether a viewer may see a post. CanSee is a pure
// predicate over its inputs and is used as the filter for feed
// assembly, so it must stay cheap and side-effect free.
type Visibility struct {
	Memberships MembershipOracle
}

// CanSee returns whether viewer may see post in the given feed context.
// Checks short-circuit in order:
//  1. the author always sees their own post
//  2. on home, posts from unfollowed authors are hidden no matter what
//  3. public posts are visible
//  4. restricted posts are visible iff the viewer is in a target circle
//
// It never fails: a membership lookup error counts as "not a member".
// The viewer's Followings and the post's Circles must be preloaded.
func (v *Visibility) CanSee(ctx context.Context, viewer *model.User, post *model.Post, feedCtx FeedContext) bool {
	if viewer.Id == post.AuthorID {
		return true
	}
	if feedCtx == ContextHome && !viewer.Follows(post.AuthorID) {
		return false
	}
	if post.IsPublic {
		return true
	}
	for _, circle := range post.Circles {
		isMember, err := v.Memberships.IsMember(ctx, circle.Id, viewer.Id)
		if err != nil {
			// fail closed
			Log.Warn("membership lookup failed, treating as non-member, circle_id=", circle.Id, " err=", err)
			continue
		}
		if isMember {
			return true
		}
	}
	return false
}
