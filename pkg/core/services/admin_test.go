package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Penny-Liu/parttime/pkg/clients/gasclient"
	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/state"
)

// failingRemote rejects every write but serves fetches, for testing the
// reload-on-failure recovery path.
type failingRemote struct {
	mockRemote
	sendErr error
}

func (m *failingRemote) SendAction(ctx context.Context, action string, payload any) error {
	m.sent = append(m.sent, sentAction{action: action, payload: payload})
	return m.sendErr
}

func TestAssignShift_ConfirmSendsShiftState(t *testing.T) {
	store, remote := flushFixture(t)

	err := AssignShift(context.Background(), store, remote, zap.NewNop(), OpConfirm, "2026-03-05", "u1")
	require.NoError(t, err)

	require.Len(t, remote.sent, 1)
	assert.Equal(t, gasclient.ActionAssignShift, remote.sent[0].action)
	payload := remote.sent[0].payload.(gasclient.AssignPayload)
	assert.Equal(t, "2026-03-05", payload.Date)
	assert.Equal(t, "u1", payload.ConfirmedUserID)
	assert.False(t, payload.IsClosed)

	assert.Equal(t, "u1", store.Data().Shifts["2026-03-05"].ConfirmedUserID)
}

func TestAssignShift_ConfirmRequiresUser(t *testing.T) {
	store, remote := flushFixture(t)
	err := AssignShift(context.Background(), store, remote, zap.NewNop(), OpConfirm, "2026-03-05", "")
	assert.Error(t, err)
	assert.Empty(t, remote.sent)
}

func TestAssignShift_CloseSendsEmptyConfirmedID(t *testing.T) {
	store, remote := flushFixture(t)
	store.ConfirmShift("2026-03-05", "u1")
	remote.sent = nil

	err := AssignShift(context.Background(), store, remote, zap.NewNop(), OpClose, "2026-03-05", "")
	require.NoError(t, err)

	payload := remote.sent[0].payload.(gasclient.AssignPayload)
	assert.True(t, payload.IsClosed)
	// Empty string, never null: the backend script cannot handle undefined.
	assert.Equal(t, "", payload.ConfirmedUserID)
}

func TestAssignShift_FailureReloadsAuthoritativeState(t *testing.T) {
	store, _ := flushFixture(t)
	remote := &failingRemote{sendErr: errors.New("backend down")}
	remote.fresh = &model.AppData{
		Users:    []model.User{},
		Shifts:   model.ShiftMap{},
		Settings: model.AppSettings{AdminPassword: "fresh"},
	}

	err := AssignShift(context.Background(), store, remote, zap.NewNop(), OpClose, "2026-03-05", "")
	require.Error(t, err)

	// Optimistic close was rolled back by adopting the fresh snapshot.
	assert.Equal(t, 1, remote.fetchCalls)
	assert.False(t, store.Data().Shifts["2026-03-05"].IsClosed)
	assert.Equal(t, "fresh", store.Data().Settings.AdminPassword)
}

func TestAssignShift_RejectsBadDate(t *testing.T) {
	store, remote := flushFixture(t)
	err := AssignShift(context.Background(), store, remote, zap.NewNop(), OpClose, "03/05", "")
	assert.Error(t, err)
	assert.Empty(t, remote.sent)
}

func TestManageUser_AddAssignsID(t *testing.T) {
	store, remote := flushFixture(t)

	user, err := ManageUser(context.Background(), store, remote, zap.NewNop(), "add", model.User{Name: "蘇蘇"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.RoleStudent, user.Role)

	_, found := model.FindUser(store.Data().Users, user.ID)
	assert.True(t, found)

	payload := remote.sent[0].payload.(gasclient.ManageUserPayload)
	assert.Equal(t, "add", payload.Type)
	assert.Equal(t, user.ID, payload.User.ID)
}

func TestManageUser_RejectsUnknownType(t *testing.T) {
	store, remote := flushFixture(t)
	_, err := ManageUser(context.Background(), store, remote, zap.NewNop(), "rename", model.User{})
	assert.Error(t, err)
	assert.Empty(t, remote.sent)
}

func TestManageUser_FailureReloads(t *testing.T) {
	store, _ := flushFixture(t)
	remote := &failingRemote{sendErr: errors.New("quota exceeded")}
	remote.fresh = &model.AppData{Users: []model.User{}, Shifts: model.ShiftMap{}}

	_, err := ManageUser(context.Background(), store, remote, zap.NewNop(), "add", model.User{Name: "新人"})
	require.Error(t, err)
	assert.Equal(t, 1, remote.fetchCalls)
	assert.Empty(t, store.Data().Users, "optimistic add discarded by reload")
}

func TestUpdateSettings_SendsFullSettings(t *testing.T) {
	store, remote := flushFixture(t)
	settings := model.AppSettings{AdminPassword: "new", Holidays: []string{"2026-10-10"}}

	err := UpdateSettings(context.Background(), store, remote, zap.NewNop(), settings)
	require.NoError(t, err)

	assert.Equal(t, gasclient.ActionUpdateSettings, remote.sent[0].action)
	assert.Equal(t, settings, remote.sent[0].payload.(model.AppSettings))
	assert.Equal(t, "new", store.Data().Settings.AdminPassword)
}

func TestInitializeBackend_UploadsSnapshotThenReloads(t *testing.T) {
	store, remote := flushFixture(t)

	err := InitializeBackend(context.Background(), store, remote, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, remote.sent, 1)
	assert.Equal(t, gasclient.ActionInitialize, remote.sent[0].action)
	assert.Equal(t, 1, remote.fetchCalls)
	assert.Equal(t, "fresh", store.Data().Settings.AdminPassword)
}

func TestReload_ReplacesSnapshotAndClearsQueue(t *testing.T) {
	store, remote := flushFixture(t)
	_, err := store.ToggleSignup("u1", "2026-03-05")
	require.NoError(t, err)

	data, err := Reload(context.Background(), store, remote, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "fresh", data.Settings.AdminPassword)
	assert.Equal(t, 0, store.PendingLen())
}

func TestToggleSignupService_RequiresStudentSession(t *testing.T) {
	store, _ := flushFixture(t)

	_, err := ToggleSignup(store, zap.NewNop(), "2026-03-05")
	assert.ErrorIs(t, err, state.ErrNotLoggedIn)

	_, err = store.Authenticate(model.RoleAdmin, "", model.DefaultAdminPassword)
	require.NoError(t, err)
	_, err = ToggleSignup(store, zap.NewNop(), "2026-03-05")
	assert.Error(t, err, "admin selecting a date does not queue a toggle")
}

func TestToggleSignupService_QueuesForStudent(t *testing.T) {
	store, _ := flushFixture(t)
	_, err := store.Authenticate(model.RoleStudent, "u1", "")
	require.NoError(t, err)

	queued, err := ToggleSignup(store, zap.NewNop(), "2026-03-05")
	require.NoError(t, err)
	assert.True(t, queued)
	assert.Equal(t, 1, store.PendingLen())
}
