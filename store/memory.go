package store

import (
	"sort"
	"sync"
	"time"

	"github.com/Xwdgood/Virtual-GP/model"
)

// MemoryStore is the in-process UserStore used by tests and by deployments
// without a database. Same contract as GormStore, including the seed
// accounts.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]model.UserData
}

// NewMemoryStore returns a store pre-populated with the seed accounts.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{users: make(map[string]model.UserData)}
	for _, u := range seedUsers(time.Now()) {
		s.users[u.Email] = u
	}
	return s
}

// NewEmptyMemoryStore returns a store with no accounts at all; some tests
// need to start from nothing.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]model.UserData)}
}

func (s *MemoryStore) GetUser(email string) (*model.UserData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := cloneUser(u)
	return &out, nil
}

func (s *MemoryStore) SaveUser(user model.UserData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = cloneUser(user)
	return nil
}

func (s *MemoryStore) AllUsers() ([]model.UserData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]model.UserData, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Email < users[j].Email
	})
	return users, nil
}

// cloneUser deep-copies a user so callers can never alias stored report
// slices.
func cloneUser(u model.UserData) model.UserData {
	out := u
	out.MedicalReports = make([]model.MedicalReport, len(u.MedicalReports))
	copy(out.MedicalReports, u.MedicalReports)
	return out
}
