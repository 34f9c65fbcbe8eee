package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/yfei-chen/circlefeed/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore manages accounts and the following relation.
type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

// CreateUser signs up a new account. The chosen id is the primary key,
// so a taken id surfaces as ErrUserIdTaken.
func (s *UserStore) CreateUser(ctx context.Context, userId string, password string) (*model.User, error) {
	var existing model.User
	if queryResult := s.DB.WithContext(ctx).Where("id = ?", userId).First(&existing); queryResult.RowsAffected == 1 {
		return nil, ErrUserIdTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	user := model.User{
		Id:           userId,
		CreatedAt:    time.Now(),
		PasswordHash: string(hash),
	}
	if queryResult := s.DB.WithContext(ctx).Create(&user); queryResult.Error != nil {
		return nil, queryResult.Error
	}
	return &user, nil
}

// CheckPassword verifies a sign-in attempt. It returns false for both
// an unknown id and a wrong password, so callers can't probe which ids
// exist.
func (s *UserStore) CheckPassword(ctx context.Context, userId string, password string) bool {
	var user model.User
	queryResult := s.DB.WithContext(ctx).Where("id = ?", userId).First(&user)
	if queryResult.RowsAffected != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// FindByID loads a user with followings preloaded, which the engine's
// home-feed gate needs.
func (s *UserStore) FindByID(ctx context.Context, userId string) (*model.User, error) {
	var user model.User
	queryResult := s.DB.WithContext(ctx).Preload("Followings").Where("id = ?", userId).First(&user)
	if queryResult.Error != nil && queryResult.Error != gorm.ErrRecordNotFound {
		return nil, queryResult.Error
	}
	if queryResult.RowsAffected != 1 {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// ListAll returns every account, oldest first.
func (s *UserStore) ListAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	queryResult := s.DB.WithContext(ctx).Order("created_at asc").Find(&users)
	return users, queryResult.Error
}

// Follow adds target to follower's followings. Following twice is a
// no-op, following yourself is rejected.
func (s *UserStore) Follow(ctx context.Context, followerId string, targetId string) error {
	if followerId == targetId {
		return ErrSelfFollow
	}
	follower, err := s.FindByID(ctx, followerId)
	if err != nil {
		return err
	}
	target, err := s.FindByID(ctx, targetId)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(follower).Association("Followings").Append(target)
}

// Unfollow removes target from follower's followings.
func (s *UserStore) Unfollow(ctx context.Context, followerId string, targetId string) error {
	follower, err := s.FindByID(ctx, followerId)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(follower).Association("Followings").Delete(&model.User{Id: targetId})
}
