package service

import (
	"context"
	"time"

	"mywallet/internal/model"
	"mywallet/internal/repository"
)

type fakeUserRepo struct {
	users     map[string]*model.User
	nextID    int64
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, user := range f.users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions  []*model.Session
	nextID    int64
	createErr error
	getErr    error
	deleteErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{nextID: 1}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *model.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	session.ID = f.nextID
	f.nextID++
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	stored := *session
	f.sessions = append(f.sessions, &stored)
	return nil
}

func (f *fakeSessionRepo) GetByToken(_ context.Context, token string) (*model.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, session := range f.sessions {
		if session.Token == token {
			found := *session
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) GetByTokenAndUser(_ context.Context, token string, userID int64) (*model.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, session := range f.sessions {
		if session.Token == token && session.UserID == userID {
			found := *session
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.sessions[:0]
	for _, session := range f.sessions {
		if session.Token != token {
			kept = append(kept, session)
		}
	}
	f.sessions = kept
	return nil
}

type fakeTransactionRepo struct {
	transactions []*model.Transaction
	nextID       int64
	createErr    error
	listErr      error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{nextID: 1}
}

func (f *fakeTransactionRepo) Create(_ context.Context, transaction *model.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	transaction.ID = f.nextID
	f.nextID++
	stored := *transaction
	f.transactions = append(f.transactions, &stored)
	return nil
}

func (f *fakeTransactionRepo) GetByUserID(_ context.Context, userID int64) ([]*model.Transaction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []*model.Transaction
	for _, transaction := range f.transactions {
		if transaction.UserID == userID {
			found := *transaction
			result = append(result, &found)
		}
	}
	return result, nil
}
