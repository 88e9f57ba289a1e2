package postgres

import (
	"context"
	"time"

	"github.com/evenly-app/backend/internal/domain/entity"
	"github.com/evenly-app/backend/internal/domain/repository"
)

// GroupRepository is the pgx implementation of repository.GroupRepository.
type GroupRepository struct {
	db      DB
	timeout time.Duration
}

func NewGroupRepository(db DB, queryTimeout time.Duration) *GroupRepository {
	return &GroupRepository{db: db, timeout: queryTimeout}
}

// CreateWithOwner inserts the group and the creator's owner membership
// in one transaction. A failure after the group insert rolls the group
// back, so no ownerless group can ever be observed.
func (r *GroupRepository) CreateWithOwner(ctx context.Context, g *entity.Group) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO groups (name, description, created_by_id)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id, created_at
	`, g.Name, g.Description, g.CreatedByID)
	if err := row.Scan(&g.ID, &g.CreatedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO group_members (group_id, user_id, role)
		VALUES ($1, $2, $3)
	`, g.ID, g.CreatedByID, entity.RoleOwner); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListByMember returns the groups the user belongs to, newest first.
func (r *GroupRepository) ListByMember(ctx context.Context, userID string) ([]entity.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT g.id, g.name, COALESCE(g.description, ''), g.created_by_id, g.created_at
		FROM groups g
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1
		ORDER BY g.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]entity.Group, 0)
	for rows.Next() {
		var g entity.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedByID, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// ListMembers returns the membership rows of a group.
func (r *GroupRepository) ListMembers(ctx context.Context, groupID string) ([]entity.GroupMember, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, group_id, user_id, role, joined_at
		FROM group_members
		WHERE group_id = $1
		ORDER BY joined_at
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]entity.GroupMember, 0)
	for rows.Next() {
		var m entity.GroupMember
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

var _ repository.GroupRepository = (*GroupRepository)(nil)
