package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/Activities/internal/domain"
	"github.com/stpnv0/Activities/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestActivityService_List(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	catalog := domain.NewCatalog(domain.Activity{Name: "Chess Club", MaxParticipants: 12})
	repo.EXPECT().List(mock.Anything).Return(catalog, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Chess Club"}, got.Names())
}

func TestActivityService_List_RepoError(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repoErr := errors.New("boom")
	repo.EXPECT().List(mock.Anything).Return(domain.Catalog{}, repoErr)

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, repoErr)
}

func TestActivityService_Signup_Success(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().AddParticipant(mock.Anything, "Chess Club", "newstudent@mergington.edu").Return(nil)

	msg, err := svc.Signup(context.Background(), "Chess Club", "newstudent@mergington.edu")

	require.NoError(t, err)
	assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", msg)
}

func TestActivityService_Signup_AlreadySignedUp(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().AddParticipant(mock.Anything, "Chess Club", "michael@mergington.edu").
		Return(domain.ErrAlreadySignedUp)

	_, err := svc.Signup(context.Background(), "Chess Club", "michael@mergington.edu")

	assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)
}

func TestActivityService_Signup_ActivityNotFound(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().AddParticipant(mock.Anything, "Nonexistent Club", "student@mergington.edu").
		Return(domain.ErrActivityNotFound)

	_, err := svc.Signup(context.Background(), "Nonexistent Club", "student@mergington.edu")

	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestActivityService_Signup_EmptyEmail(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	_, err := svc.Signup(context.Background(), "Chess Club", "  ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "email is required")
}

func TestActivityService_Unregister_Success(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().RemoveParticipant(mock.Anything, "Chess Club", "michael@mergington.edu").Return(nil)

	msg, err := svc.Unregister(context.Background(), "Chess Club", "michael@mergington.edu")

	require.NoError(t, err)
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", msg)
}

func TestActivityService_Unregister_NotRegistered(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().RemoveParticipant(mock.Anything, "Chess Club", "notregistered@mergington.edu").
		Return(domain.ErrNotRegistered)

	_, err := svc.Unregister(context.Background(), "Chess Club", "notregistered@mergington.edu")

	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestActivityService_Unregister_EmptyActivity(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	_, err := svc.Unregister(context.Background(), "", "a@x.com")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
