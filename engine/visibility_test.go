package engine

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/yfei-chen/circlefeed/model"
)

func TestCanSeeOwnPost(t *testing.T) {
	visibility := &Visibility{Memberships: &fakeOracle{}}
	bob := newTestUser("bob")
	post := &model.Post{Id: "p1", AuthorID: "bob", IsPublic: false}

	require.True(t, visibility.CanSee(context.Background(), bob, post, ContextHome))
	require.True(t, visibility.CanSee(context.Background(), bob, post, ContextProfile))
}

func TestCanSeePublicPost(t *testing.T) {
	visibility := &Visibility{Memberships: &fakeOracle{}}
	bob := newTestUser("bob")
	alice := newTestUser("alice", bob)
	carol := newTestUser("carol")
	post := &model.Post{Id: "p1", AuthorID: "bob", IsPublic: true}

	t.Run("Follower sees it on home", func(t *testing.T) {
		require.True(t, visibility.CanSee(context.Background(), alice, post, ContextHome))
	})

	t.Run("Non-follower never sees it on home", func(t *testing.T) {
		require.False(t, visibility.CanSee(context.Background(), carol, post, ContextHome))
	})

	t.Run("Non-follower sees it on profile", func(t *testing.T) {
		require.True(t, visibility.CanSee(context.Background(), carol, post, ContextProfile))
	})
}

func TestCanSeeRestrictedPost(t *testing.T) {
	oracle := &fakeOracle{members: map[string][]string{"c1": {"dave"}}}
	visibility := &Visibility{Memberships: oracle}
	dave := newTestUser("dave")
	eve := newTestUser("eve")
	post := &model.Post{
		Id:       "p2",
		AuthorID: "bob",
		IsPublic: false,
		Circles:  []*model.Circle{{Id: "c1", Name: "friends"}},
	}

	t.Run("Circle member sees it on profile", func(t *testing.T) {
		require.True(t, visibility.CanSee(context.Background(), dave, post, ContextProfile))
	})

	t.Run("Non-member does not", func(t *testing.T) {
		require.False(t, visibility.CanSee(context.Background(), eve, post, ContextProfile))
	})

	t.Run("Member still needs to follow on home", func(t *testing.T) {
		require.False(t, visibility.CanSee(context.Background(), dave, post, ContextHome))
		bob := newTestUser("bob")
		daveFollowing := newTestUser("dave", bob)
		require.True(t, visibility.CanSee(context.Background(), daveFollowing, post, ContextHome))
	})

	t.Run("Membership across several target circles", func(t *testing.T) {
		multi := &model.Post{
			Id:       "p3",
			AuthorID: "bob",
			IsPublic: false,
			Circles:  []*model.Circle{{Id: "c9"}, {Id: "c1"}},
		}
		require.True(t, visibility.CanSee(context.Background(), dave, multi, ContextProfile))
	})
}

func TestCanSeeFailsClosedOnOracleError(t *testing.T) {
	oracle := &fakeOracle{
		members: map[string][]string{"c1": {"dave"}},
		err:     errors.New("membership backend down"),
	}
	visibility := &Visibility{Memberships: oracle}
	dave := newTestUser("dave")
	post := &model.Post{
		Id:       "p2",
		AuthorID: "bob",
		IsPublic: false,
		Circles:  []*model.Circle{{Id: "c1"}},
	}

	// A broken oracle hides the post instead of failing the request.
	require.False(t, visibility.CanSee(context.Background(), dave, post, ContextProfile))
}

func TestCanSeeRestrictedWithNoCircles(t *testing.T) {
	visibility := &Visibility{Memberships: &fakeOracle{}}
	eve := newTestUser("eve")
	post := &model.Post{Id: "p4", AuthorID: "bob", IsPublic: false}

	require.False(t, visibility.CanSee(context.Background(), eve, post, ContextProfile))
}
