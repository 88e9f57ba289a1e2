package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/evenly-app/backend/internal/domain/entity"
	"github.com/evenly-app/backend/internal/domain/repository"
)

// ErrGroupNameRequired means the group name was empty after trimming.
var ErrGroupNameRequired = errors.New("group name is required")

// GroupService implements group creation and member-scoped listing.
type GroupService struct {
	Groups repository.GroupRepository
	Logger *logrus.Logger
}

func NewGroupService(groups repository.GroupRepository, logger *logrus.Logger) *GroupService {
	return &GroupService{Groups: groups, Logger: logger}
}

// Create makes a group and its owner membership for the creator. Name
// and description are trimmed; a blank name creates no rows.
func (s *GroupService) Create(ctx context.Context, creatorID, name, description string) (*entity.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGroupNameRequired
	}

	g := &entity.Group{
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedByID: creatorID,
	}
	if err := s.Groups.CreateWithOwner(ctx, g); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"group_id": g.ID, "user_id": creatorID}).Info("group created")
	}
	return g, nil
}

// ListForUser returns only the groups the user is a member of.
func (s *GroupService) ListForUser(ctx context.Context, userID string) ([]entity.Group, error) {
	return s.Groups.ListByMember(ctx, userID)
}
