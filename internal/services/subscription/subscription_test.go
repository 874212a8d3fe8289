package subscription

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-service/internal/models"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) CreateSubscription(ctx context.Context, sub models.Subscription) (string, error) {
	args := m.Called(ctx, sub)
	return args.String(0), args.Error(1)
}

func (m *RepositoryMock) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	args := m.Called(ctx)
	subs, _ := args.Get(0).([]models.Subscription)
	return subs, args.Error(1)
}

func (m *RepositoryMock) RemoveSubscription(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreate(t *testing.T) {
	req := models.CreateSubscriptionRequest{
		UserID:   "64f1c2a9e1b2c3d4e5f60718",
		Plan:     "premium",
		Price:    9.99,
		Duration: "1 month",
	}
	want := models.Subscription{
		UserID:   req.UserID,
		Plan:     req.Plan,
		Price:    req.Price,
		Duration: req.Duration,
	}

	repo := new(RepositoryMock)
	repo.On("CreateSubscription", mock.Anything, want).Return("68b0aa11e1b2c3d4e5f60718", nil)

	service := New(repo, newNoopLogger())

	id, err := service.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "68b0aa11e1b2c3d4e5f60718", id)
	repo.AssertExpectations(t)
}

func TestCreate_StorageError(t *testing.T) {
	repo := new(RepositoryMock)
	repo.On("CreateSubscription", mock.Anything, mock.AnythingOfType("models.Subscription")).
		Return("", errors.New("connection reset"))

	service := New(repo, newNoopLogger())

	_, err := service.Create(context.Background(), models.CreateSubscriptionRequest{
		UserID: "u1", Plan: "basic", Price: 1, Duration: "1 month",
	})

	assert.Error(t, err)
}

func TestList(t *testing.T) {
	tests := []struct {
		name      string
		fromRepo  []models.Subscription
		repoErr   error
		wantCount int
		wantErr   bool
	}{
		{
			name: "несколько подписок",
			fromRepo: []models.Subscription{
				{UserID: "u1", Plan: "basic", Price: 5, Duration: "1 month"},
				{UserID: "u2", Plan: "premium", Price: 15, Duration: "1 year"},
			},
			wantCount: 2,
		},
		{
			name:      "ноль записей — пустой срез, не nil",
			fromRepo:  nil,
			wantCount: 0,
		},
		{
			name:    "ошибка хранилища",
			repoErr: errors.New("connection reset"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepositoryMock)
			repo.On("ListSubscriptions", mock.Anything).Return(tt.fromRepo, tt.repoErr)

			service := New(repo, newNoopLogger())

			subs, err := service.List(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, subs)
			assert.Len(t, subs, tt.wantCount)
		})
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		deleted int64
		repoErr error
		wantErr bool
	}{
		{
			name:    "существующая подписка",
			id:      "68b0aa11e1b2c3d4e5f60718",
			deleted: 1,
		},
		{
			name:    "несуществующая подписка — тоже успех",
			id:      "68b0aa11e1b2c3d4e5f60799",
			deleted: 0,
		},
		{
			name:    "ошибка хранилища",
			id:      "68b0aa11e1b2c3d4e5f60718",
			repoErr: errors.New("connection reset"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepositoryMock)
			repo.On("RemoveSubscription", mock.Anything, tt.id).Return(tt.deleted, tt.repoErr)

			service := New(repo, newNoopLogger())

			err := service.Remove(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
