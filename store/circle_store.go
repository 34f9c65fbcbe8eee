package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/yfei-chen/circlefeed/model"
	"github.com/yfei-chen/circlefeed/utils"
	"gorm.io/gorm"
)

// CircleStore manages circles and answers the engine's membership
// queries.
type CircleStore struct {
	DB *gorm.DB
}

func NewCircleStore(db *gorm.DB) *CircleStore {
	return &CircleStore{DB: db}
}

// IsMember is the engine.MembershipOracle query. It goes straight to
// the join table, so it stays a single indexed lookup even for large
// circles.
func (s *CircleStore) IsMember(ctx context.Context, circleId string, userId string) (bool, error) {
	var count int64
	queryResult := s.DB.WithContext(ctx).Model(&model.CircleMembership{}).
		Where("circle_id = ? AND user_id = ?", circleId, userId).
		Count(&count)
	if queryResult.Error != nil {
		return false, queryResult.Error
	}
	return count > 0, nil
}

// CreateCircle creates an empty circle owned by ownerId.
func (s *CircleStore) CreateCircle(ctx context.Context, ownerId string, name string) (*model.Circle, error) {
	circle := model.Circle{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		OwnerID:   ownerId,
		Name:      name,
	}
	if err := s.DB.WithContext(ctx).Create(&circle).Error; err != nil {
		return nil, errors.Wrap(err, "create circle")
	}
	return &circle, nil
}

// FindByID loads a circle and its members.
func (s *CircleStore) FindByID(ctx context.Context, circleId string) (*model.Circle, error) {
	var circle model.Circle
	queryResult := s.DB.WithContext(ctx).Preload("Members").Where("id = ?", circleId).First(&circle)
	if queryResult.Error != nil && queryResult.Error != gorm.ErrRecordNotFound {
		return nil, queryResult.Error
	}
	if queryResult.RowsAffected != 1 {
		return nil, ErrCircleNotFound
	}
	return &circle, nil
}

// ListByOwner returns all circles a user owns, members included.
func (s *CircleStore) ListByOwner(ctx context.Context, ownerId string) ([]*model.Circle, error) {
	var circles []*model.Circle
	queryResult := s.DB.WithContext(ctx).Preload("Members").Where("owner_id = ?", ownerId).Find(&circles)
	return circles, queryResult.Error
}

// FindByIDs resolves circle ids for post creation, failing if any id is
// unknown or not owned by ownerId. Repeated ids count once.
func (s *CircleStore) FindByIDs(ctx context.Context, ownerId string, circleIds []string) ([]*model.Circle, error) {
	var unique []string
	for _, circleId := range circleIds {
		if !utils.ContainsString(unique, circleId) {
			unique = append(unique, circleId)
		}
	}
	if len(unique) == 0 {
		return nil, nil
	}
	var circles []*model.Circle
	queryResult := s.DB.WithContext(ctx).Where("owner_id = ? AND id IN ?", ownerId, unique).Find(&circles)
	if queryResult.Error != nil {
		return nil, queryResult.Error
	}
	if len(circles) != len(unique) {
		return nil, ErrCircleNotFound
	}
	return circles, nil
}

// Delete removes a circle and its memberships. Posts shared into the
// circle keep their join rows but fail every membership lookup
// afterwards, so they simply go dark.
func (s *CircleStore) Delete(ctx context.Context, circleId string) error {
	circle, err := s.FindByID(ctx, circleId)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(circle).Association("Members").Clear(); err != nil {
			return err
		}
		return tx.Delete(circle).Error
	})
}

// AddMember puts a user into a circle. Adding twice is a no-op.
func (s *CircleStore) AddMember(ctx context.Context, circleId string, userId string) error {
	var user model.User
	if queryResult := s.DB.WithContext(ctx).Where("id = ?", userId).First(&user); queryResult.RowsAffected != 1 {
		return ErrUserNotFound
	}
	circle, err := s.FindByID(ctx, circleId)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(circle).Association("Members").Append(&user)
}

// RemoveMember takes a user out of a circle.
func (s *CircleStore) RemoveMember(ctx context.Context, circleId string, userId string) error {
	circle, err := s.FindByID(ctx, circleId)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(circle).Association("Members").Delete(&model.User{Id: userId})
}
