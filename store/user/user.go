package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/store"
	"github.com/halcyonlabs/demo-wallet/store/db"
)

func New(m *db.Memory) core.UserStore {
	return &userStore{m: m}
}

type userStore struct {
	m *db.Memory
}

func (s *userStore) Create(ctx context.Context, user *core.User) error {
	var err error
	s.m.Update(func() {
		email := normalize(user.Email)
		if _, ok := s.m.EmailIndex[email]; ok {
			err = fmt.Errorf("user %s already exists", email)
			return
		}

		u := *user
		u.Email = email
		s.m.Users[u.ID] = &u
		s.m.EmailIndex[email] = u.ID
	})
	return err
}

func (s *userStore) Find(ctx context.Context, id string) (*core.User, error) {
	var user *core.User
	s.m.View(func() {
		if u, ok := s.m.Users[id]; ok {
			c := *u
			user = &c
		}
	})

	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id, store.ErrNotFound)
	}

	return user, nil
}

func (s *userStore) FindEmail(ctx context.Context, email string) (*core.User, error) {
	var user *core.User
	s.m.View(func() {
		id, ok := s.m.EmailIndex[normalize(email)]
		if !ok {
			return
		}
		if u, ok := s.m.Users[id]; ok {
			c := *u
			user = &c
		}
	})

	if user == nil {
		return nil, fmt.Errorf("user %s: %w", email, store.ErrNotFound)
	}

	return user, nil
}

func (s *userStore) Update(ctx context.Context, user *core.User) error {
	var err error
	s.m.Update(func() {
		original, ok := s.m.Users[user.ID]
		if !ok {
			err = fmt.Errorf("user %s: %w", user.ID, store.ErrNotFound)
			return
		}

		u := *user
		u.CreatedAt = original.CreatedAt
		s.m.Users[u.ID] = &u
	})
	return err
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
