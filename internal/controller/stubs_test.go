package controller

import (
	"context"
	"testing"
	"time"

	"mywallet/internal/core"
	"mywallet/internal/middlewareinternal"
	"mywallet/internal/model"
	"mywallet/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	registerUser *model.User
	registerErr  error
	loginUser    *model.User
	loginToken   string
	loginErr     error
	logoutErr    error
	loggedOut    []string
	resolveID    int64
	resolveErr   error
}

func (s *stubAuthService) Register(_ context.Context, name, email, _ string) (*model.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	if s.registerUser != nil {
		return s.registerUser, nil
	}
	return &model.User{ID: 1, Name: name, Email: email}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*model.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return s.loginUser, s.loginToken, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	if s.logoutErr != nil {
		return s.logoutErr
	}
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

func (s *stubAuthService) ResolveToken(_ context.Context, _ string) (int64, error) {
	return s.resolveID, s.resolveErr
}

type recordedCall struct {
	token       string
	userID      int64
	description string
	value       float64
	date        time.Time
	kind        core.TransactionKind
}

type stubTransactionService struct {
	recordErr error
	recorded  []recordedCall
	listTx    []*model.Transaction
	listBal   float64
	listErr   error
}

func (s *stubTransactionService) Record(_ context.Context, token string, userID int64, description string, value float64, date time.Time, kind core.TransactionKind) error {
	if s.recordErr != nil {
		return s.recordErr
	}
	s.recorded = append(s.recorded, recordedCall{token, userID, description, value, date, kind})
	return nil
}

func (s *stubTransactionService) ListWithBalance(_ context.Context, _ string) ([]*model.Transaction, float64, error) {
	return s.listTx, s.listBal, s.listErr
}

// newTestRouter mirrors the application's route table over stub services.
func newTestRouter(t *testing.T, auth core.AuthService, transactions core.TransactionService) *chi.Mux {
	t.Helper()

	v, err := validation.New([]string{"com", "net"})
	require.NoError(t, err)

	authController := NewAuthController(auth, v, zap.NewNop())
	transactionController := NewTransactionController(transactions, v, zap.NewNop())

	router := chi.NewRouter()
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.Group(func(r chi.Router) {
		r.Use(middlewareinternal.BearerAuth())
		r.Post("/newincome", transactionController.NewIncome)
		r.Post("/newoutgoing", transactionController.NewOutgoing)
		r.Get("/homepage", transactionController.Homepage)
		r.Post("/logout", authController.Logout)
	})
	return router
}
