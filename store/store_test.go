package store

import (
	"context"
	"math"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/yfei-chen/circlefeed/engine"
	"github.com/yfei-chen/circlefeed/model"
	"github.com/yfei-chen/circlefeed/utils"
	"github.com/yfei-chen/circlefeed/utils/dotenv"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

// requireTestDB skips DB-backed tests unless a postgres instance is
// configured, so the unit suite stays runnable anywhere.
func requireTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("DB_HOST") == "" {
		t.Skip("set DB_HOST (and friends) to run store integration tests")
	}
	db, _ := utils.CreateTempDB(t)
	return db
}

func TestPostStoreRoundTrip(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()

	users := NewUserStore(db)
	circles := NewCircleStore(db)
	posts := NewPostStore(db)
	notifications := NewNotificationStore(db)

	bob, err := users.CreateUser(ctx, "bob", "hunter2")
	require.NoError(t, err)
	_, err = users.CreateUser(ctx, "dave", "hunter2")
	require.NoError(t, err)

	circle, err := circles.CreateCircle(ctx, bob.Id, "friends")
	require.NoError(t, err)
	require.NoError(t, circles.AddMember(ctx, circle.Id, "dave"))

	t.Run("Membership lookup", func(t *testing.T) {
		isMember, err := circles.IsMember(ctx, circle.Id, "dave")
		require.NoError(t, err)
		require.True(t, isMember)

		isMember, err = circles.IsMember(ctx, circle.Id, "eve")
		require.NoError(t, err)
		require.False(t, isMember)
	})

	post := &model.Post{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		AuthorID:  bob.Id,
		Content:   "circle only",
		Circles:   []*model.Circle{circle},
	}
	require.NoError(t, posts.Insert(ctx, post, nil))

	t.Run("FindByID preloads circles", func(t *testing.T) {
		loaded, err := posts.FindByID(ctx, post.Id)
		require.NoError(t, err)
		require.Len(t, loaded.Circles, 1)
		require.Equal(t, circle.Id, loaded.Circles[0].Id)
	})

	t.Run("FindByID on missing post", func(t *testing.T) {
		_, err := posts.FindByID(ctx, "missing")
		require.ErrorIs(t, err, engine.ErrNotFound)
	})

	t.Run("ListAll orders newest first", func(t *testing.T) {
		second := &model.Post{Id: uuid.New().String(), CreatedAt: time.Now(), AuthorID: bob.Id, Content: "later", IsPublic: true}
		require.NoError(t, posts.Insert(ctx, second, nil))

		all, err := posts.ListAll(ctx, math.MaxInt32, 10)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, second.Id, all[0].Id)
		require.Equal(t, post.Id, all[1].Id)
	})

	t.Run("Insert commit failure rolls the post back", func(t *testing.T) {
		doomed := &model.Post{Id: uuid.New().String(), CreatedAt: time.Now(), AuthorID: bob.Id, IsPublic: true}
		err := posts.Insert(ctx, doomed, func(tx *gorm.DB) error {
			return errors.New("sink down")
		})
		require.Error(t, err)
		_, err = posts.FindByID(ctx, doomed.Id)
		require.ErrorIs(t, err, engine.ErrNotFound)
	})

	t.Run("Insert commits the notification with the post", func(t *testing.T) {
		reshare := &model.Post{Id: uuid.New().String(), CreatedAt: time.Now(), AuthorID: "dave", IsPublic: true, Reshareable: true, ResharedFromID: &post.Id}
		notification := &model.Notification{
			Id:            uuid.New().String(),
			CreatedAt:     time.Now(),
			Action:        model.ActionReshare,
			NotifyingHref: engine.PostHref(reshare.Id),
			NotifiedHref:  engine.PostHref(post.Id),
			OwnerID:       bob.Id,
		}
		require.NoError(t, posts.Insert(ctx, reshare, func(tx *gorm.DB) error {
			return notifications.Record(tx, notification)
		}))

		owned, err := notifications.ListByOwner(ctx, bob.Id)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		require.Equal(t, model.ActionReshare, owned[0].Action)
	})
}

func TestEngagementStore(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()

	users := NewUserStore(db)
	posts := NewPostStore(db)
	notifications := NewNotificationStore(db)
	engagements := NewEngagementStore(db, notifications, NewSanitizer())

	bob, err := users.CreateUser(ctx, "bob", "hunter2")
	require.NoError(t, err)
	carol, err := users.CreateUser(ctx, "carol", "hunter2")
	require.NoError(t, err)

	post := &model.Post{Id: uuid.New().String(), CreatedAt: time.Now(), AuthorID: bob.Id, Content: "hello", IsPublic: true}
	require.NoError(t, posts.Insert(ctx, post, nil))

	t.Run("Comment content is sanitized before persisting", func(t *testing.T) {
		comment, err := engagements.CreateComment(ctx, carol, post, "<script>alert(1)</script>nice post", nil)
		require.NoError(t, err)
		require.Equal(t, "nice post", comment.Content)

		stored, err := engagements.ListComments(ctx, post.Id)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		require.Equal(t, "nice post", stored[0].Content)

		owned, err := notifications.ListByOwner(ctx, bob.Id)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		require.Equal(t, model.ActionComment, owned[0].Action)
	})

	t.Run("Nested comments collapse to one level", func(t *testing.T) {
		comments, err := engagements.ListComments(ctx, post.Id)
		require.NoError(t, err)
		parentId := comments[0].Id

		nested, err := engagements.CreateComment(ctx, bob, post, "reply", &parentId)
		require.NoError(t, err)
		require.Equal(t, parentId, *nested.ParentCommentID)

		deeper, err := engagements.CreateComment(ctx, carol, post, "deeper reply", &nested.Id)
		require.NoError(t, err)
		require.Equal(t, parentId, *deeper.ParentCommentID)
	})

	t.Run("Missing parent comment", func(t *testing.T) {
		missing := "nope"
		_, err := engagements.CreateComment(ctx, carol, post, "reply", &missing)
		require.ErrorIs(t, err, ErrCommentNotFound)
	})

	t.Run("Reaction create and delete", func(t *testing.T) {
		reaction, err := engagements.CreateReaction(ctx, carol, post, "🎉")
		require.NoError(t, err)

		require.ErrorIs(t, engagements.DeleteReaction(ctx, bob.Id, reaction.Id), ErrReactionNotFound)
		require.NoError(t, engagements.DeleteReaction(ctx, carol.Id, reaction.Id))
		require.ErrorIs(t, engagements.DeleteReaction(ctx, carol.Id, reaction.Id), ErrReactionNotFound)
	})
}

func TestCircleStoreDelete(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()

	users := NewUserStore(db)
	circles := NewCircleStore(db)

	bob, err := users.CreateUser(ctx, "bob", "hunter2")
	require.NoError(t, err)
	_, err = users.CreateUser(ctx, "dave", "hunter2")
	require.NoError(t, err)

	circle, err := circles.CreateCircle(ctx, bob.Id, "friends")
	require.NoError(t, err)
	require.NoError(t, circles.AddMember(ctx, circle.Id, "dave"))

	t.Run("Duplicate ids resolve once", func(t *testing.T) {
		resolved, err := circles.FindByIDs(ctx, bob.Id, []string{circle.Id, circle.Id})
		require.NoError(t, err)
		require.Len(t, resolved, 1)
	})

	require.NoError(t, circles.Delete(ctx, circle.Id))

	_, err = circles.FindByID(ctx, circle.Id)
	require.ErrorIs(t, err, ErrCircleNotFound)

	// memberships go with the circle
	isMember, err := circles.IsMember(ctx, circle.Id, "dave")
	require.NoError(t, err)
	require.False(t, isMember)
}

func TestUserStore(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	users := NewUserStore(db)

	_, err := users.CreateUser(ctx, "alice", "wonderland")
	require.NoError(t, err)

	t.Run("No double creation for the same id", func(t *testing.T) {
		_, err := users.CreateUser(ctx, "alice", "other")
		require.ErrorIs(t, err, ErrUserIdTaken)
	})

	t.Run("Password check", func(t *testing.T) {
		require.True(t, users.CheckPassword(ctx, "alice", "wonderland"))
		require.False(t, users.CheckPassword(ctx, "alice", "wrong"))
		require.False(t, users.CheckPassword(ctx, "nobody", "wonderland"))
	})

	t.Run("Follow and unfollow", func(t *testing.T) {
		_, err := users.CreateUser(ctx, "bob", "hunter2")
		require.NoError(t, err)

		require.NoError(t, users.Follow(ctx, "alice", "bob"))
		alice, err := users.FindByID(ctx, "alice")
		require.NoError(t, err)
		require.True(t, alice.Follows("bob"))

		require.ErrorIs(t, users.Follow(ctx, "alice", "alice"), ErrSelfFollow)

		require.NoError(t, users.Unfollow(ctx, "alice", "bob"))
		alice, err = users.FindByID(ctx, "alice")
		require.NoError(t, err)
		require.False(t, alice.Follows("bob"))
	})

	t.Run("ListAll oldest first", func(t *testing.T) {
		all, err := users.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, "alice", all[0].Id)
		require.Equal(t, "bob", all[1].Id)
	})
}
