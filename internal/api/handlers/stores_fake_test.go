package handlers

import (
	"context"
	"sort"

	"github.com/musicapi-dashboard/backend/internal/models"
	"github.com/musicapi-dashboard/backend/internal/repository"
)

// fakeUserStore is an in-memory UserStore tracking mutations.
type fakeUserStore struct {
	users           map[string]*models.APIUser
	setActiveCalls  int
	usernameUpdates int
	err             error
}

func newFakeUserStore(users ...*models.APIUser) *fakeUserStore {
	m := make(map[string]*models.APIUser, len(users))
	for _, u := range users {
		m[u.APIKey] = u
	}
	return &fakeUserStore{users: m}
}

func (f *fakeUserStore) GetByKey(_ context.Context, key string) (*models.APIUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[key]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) SetActive(_ context.Context, key string, active bool) error {
	if f.err != nil {
		return f.err
	}
	f.setActiveCalls++
	if u, ok := f.users[key]; ok {
		u.Active = active
	}
	return nil
}

func (f *fakeUserStore) UpdateUsername(_ context.Context, key, username string) error {
	if f.err != nil {
		return f.err
	}
	f.usernameUpdates++
	// Unknown keys are a silent no-op, like the real store.
	if u, ok := f.users[key]; ok {
		u.Username = username
	}
	return nil
}

func (f *fakeUserStore) TotalUsage(context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var total int64
	for _, u := range f.users {
		total += u.TotalUsage
	}
	return total, nil
}

func (f *fakeUserStore) TopUsers(_ context.Context, limit int64) ([]*models.APIUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := make([]*models.APIUser, 0, len(f.users))
	for _, u := range f.users {
		copied := *u
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].TotalUsage > all[j].TotalUsage })
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

// fakeMediaStore reports a fixed song count.
type fakeMediaStore struct {
	count int64
	err   error
}

func (f *fakeMediaStore) SongCount(context.Context) (int64, error) {
	return f.count, f.err
}

// fakeAlertStore is an in-memory AlertStore.
type fakeAlertStore struct {
	alert    *models.Alert
	setCalls int
	err      error
}

func (f *fakeAlertStore) Get(context.Context) (*models.Alert, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.alert, nil
}

func (f *fakeAlertStore) Set(_ context.Context, message string, active bool) error {
	if f.err != nil {
		return f.err
	}
	f.setCalls++
	f.alert = &models.Alert{ID: models.AlertID, Message: message, Active: active}
	return nil
}
