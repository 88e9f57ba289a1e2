package repository

import (
	"context"

	"github.com/evenly-app/backend/internal/domain/entity"
)

// GroupRepository defines group persistence operations.
type GroupRepository interface {
	// CreateWithOwner inserts the group and the creator's owner
	// membership in one transaction; a group without an owner row is
	// an invalid intermediate state and must never be visible.
	CreateWithOwner(ctx context.Context, g *entity.Group) error

	// ListByMember returns the groups the user has a membership row in.
	ListByMember(ctx context.Context, userID string) ([]entity.Group, error)

	// ListMembers returns all membership rows of a group.
	ListMembers(ctx context.Context, groupID string) ([]entity.GroupMember, error)
}
