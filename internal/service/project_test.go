package service

import (
	"testing"

	"github.com/SWEConnect/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreateMakesCreatorAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	user := createTestUser(t, db, "alice")

	project, err := svc.Create("swec", "", user.ID)
	require.NoError(t, err)

	var member model.Member
	require.NoError(t, db.Where("project_id = ? AND user_id = ?", project.ID, user.ID).First(&member).Error)
	assert.Equal(t, model.MemberTypeAdmin, member.Type)

	_, err = svc.Create("swec", "", user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40005")
}

func TestAddMembersSkipsExisting(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	project, err := svc.Create("swec", "", alice.ID)
	require.NoError(t, err)

	added, skipped, err := svc.AddMembers(project.ID, []uint{alice.ID, bob.ID}, model.MemberTypeEvaluator)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, bob.ID, added[0].ID)
	assert.Equal(t, []uint{alice.ID}, skipped)
}

func TestRemoveMemberSelfGuard(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	project, err := svc.Create("swec", "", alice.ID)
	require.NoError(t, err)
	_, _, err = svc.AddMembers(project.ID, []uint{bob.ID}, model.MemberTypeEvaluator)
	require.NoError(t, err)

	// An admin cannot remove themself.
	err = svc.RemoveMember(project.ID, alice.ID, alice.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40003")

	require.NoError(t, svc.RemoveMember(project.ID, bob.ID, alice.ID))
	assert.False(t, svc.IsMember(project.ID, bob.ID))

	err = svc.RemoveMember(project.ID, bob.ID, alice.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40401")
}

func TestUpdateMemberTypeSelfGuard(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	project, err := svc.Create("swec", "", alice.ID)
	require.NoError(t, err)
	_, _, err = svc.AddMembers(project.ID, []uint{bob.ID}, model.MemberTypeEvaluator)
	require.NoError(t, err)

	err = svc.UpdateMemberType(project.ID, alice.ID, alice.ID, model.MemberTypeEvaluator)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40003")

	require.NoError(t, svc.UpdateMemberType(project.ID, bob.ID, alice.ID, model.MemberTypeAdmin))

	var member model.Member
	require.NoError(t, db.Where("project_id = ? AND user_id = ?", project.ID, bob.ID).First(&member).Error)
	assert.Equal(t, model.MemberTypeAdmin, member.Type)
}
