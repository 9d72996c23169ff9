package core

import (
	"context"
	"time"

	"mywallet/internal/model"
)

type TransactionKind string

const (
	KindIncome   TransactionKind = "income"
	KindOutgoing TransactionKind = "outgoing"
)

type (
	AuthService interface {
		Register(ctx context.Context, name, email, password string) (*model.User, error)
		Login(ctx context.Context, email, password string) (*model.User, string, error)
		Logout(ctx context.Context, token string) error
		ResolveToken(ctx context.Context, token string) (int64, error)
	}

	TransactionService interface {
		Record(ctx context.Context, token string, userID int64, description string, value float64, date time.Time, kind TransactionKind) error
		ListWithBalance(ctx context.Context, token string) ([]*model.Transaction, float64, error)
	}
)
