package entity

import "time"

// Member roles. A group has exactly one owner: its creator.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Group is a shared-expense group.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedByID string    `json:"createdById"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GroupMember links a user to a group. (group, user) is unique at the
// store level.
type GroupMember struct {
	ID       string    `json:"id"`
	GroupID  string    `json:"groupId"`
	UserID   string    `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}
