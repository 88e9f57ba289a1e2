package application

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenly-app/backend/internal/domain/entity"
)

// fakeGroupRepo mimics the transactional CreateWithOwner: group and
// owner membership appear together or not at all.
type fakeGroupRepo struct {
	groups  []entity.Group
	members []entity.GroupMember
	nextID  int
}

func (f *fakeGroupRepo) CreateWithOwner(_ context.Context, g *entity.Group) error {
	f.nextID++
	g.ID = "g-" + strconv.Itoa(f.nextID)
	g.CreatedAt = time.Now().UTC()
	f.groups = append(f.groups, *g)
	f.members = append(f.members, entity.GroupMember{
		ID:       "m-" + strconv.Itoa(f.nextID),
		GroupID:  g.ID,
		UserID:   g.CreatedByID,
		Role:     entity.RoleOwner,
		JoinedAt: g.CreatedAt,
	})
	return nil
}

func (f *fakeGroupRepo) ListByMember(_ context.Context, userID string) ([]entity.Group, error) {
	out := make([]entity.Group, 0)
	for _, m := range f.members {
		if m.UserID != userID {
			continue
		}
		for _, g := range f.groups {
			if g.ID == m.GroupID {
				out = append(out, g)
			}
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) ListMembers(_ context.Context, groupID string) ([]entity.GroupMember, error) {
	out := make([]entity.GroupMember, 0)
	for _, m := range f.members {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestGroupService_Create_TrimsAndAssignsOwner(t *testing.T) {
	repo := &fakeGroupRepo{}
	svc := NewGroupService(repo, nil)

	g, err := svc.Create(context.Background(), "u-1", "  Trip to Lisbon  ", " shared holiday ")
	require.NoError(t, err)
	assert.Equal(t, "Trip to Lisbon", g.Name)
	assert.Equal(t, "shared holiday", g.Description)
	assert.Equal(t, "u-1", g.CreatedByID)

	members, err := repo.ListMembers(context.Background(), g.ID)
	require.NoError(t, err)
	require.Len(t, members, 1, "exactly one membership row after create")
	assert.Equal(t, entity.RoleOwner, members[0].Role)
	assert.Equal(t, "u-1", members[0].UserID)
}

func TestGroupService_Create_BlankNameRejected(t *testing.T) {
	repo := &fakeGroupRepo{}
	svc := NewGroupService(repo, nil)

	for _, name := range []string{"", " ", "\t", "\n"} {
		_, err := svc.Create(context.Background(), "u-1", name, "")
		assert.ErrorIs(t, err, ErrGroupNameRequired, "name %q", name)
	}
	assert.Empty(t, repo.groups, "no group rows created")
	assert.Empty(t, repo.members, "no membership rows created")
}

func TestGroupService_ListForUser_Isolation(t *testing.T) {
	repo := &fakeGroupRepo{}
	svc := NewGroupService(repo, nil)
	ctx := context.Background()

	a1, err := svc.Create(ctx, "user-a", "A's flat", "")
	require.NoError(t, err)
	a2, err := svc.Create(ctx, "user-a", "A's trip", "")
	require.NoError(t, err)
	b1, err := svc.Create(ctx, "user-b", "B's band", "")
	require.NoError(t, err)

	aGroups, err := svc.ListForUser(ctx, "user-a")
	require.NoError(t, err)
	bGroups, err := svc.ListForUser(ctx, "user-b")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{a1.ID, a2.ID}, groupIDs(aGroups))
	assert.ElementsMatch(t, []string{b1.ID}, groupIDs(bGroups))

	none, err := svc.ListForUser(ctx, "user-c")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func groupIDs(gs []entity.Group) []string {
	ids := make([]string, 0, len(gs))
	for _, g := range gs {
		ids = append(ids, g.ID)
	}
	return ids
}
