package service

import (
	"context"
	"fmt"
	"time"

	"mywallet/internal/core"
	"mywallet/internal/model"
	"mywallet/internal/repository"
)

type transactionService struct {
	transactionRepo repository.TransactionRepository
	sessionRepo     repository.SessionRepository
	sessionTTL      time.Duration
}

func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	sessionRepo repository.SessionRepository,
	sessionTTL time.Duration,
) core.TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		sessionRepo:     sessionRepo,
		sessionTTL:      sessionTTL,
	}
}

// Record writes one ledger row with the value in the income or outgoing
// slot and the other slot at zero. The token must belong to a session of
// the claimed user; a valid token for a different user is rejected.
func (s *transactionService) Record(ctx context.Context, token string, userID int64, description string, value float64, date time.Time, kind core.TransactionKind) error {
	session, err := s.sessionRepo.GetByTokenAndUser(ctx, token, userID)
	if err != nil {
		return fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil || sessionExpired(session, s.sessionTTL) {
		return ErrSessionNotFound
	}

	if date.IsZero() {
		date = time.Now()
	}

	transaction := &model.Transaction{
		UserID:      userID,
		Description: description,
		Date:        date,
	}
	if kind == core.KindIncome {
		transaction.Income = value
	} else {
		transaction.Outgoing = value
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	return nil
}

// ListWithBalance resolves the user from the token alone and returns the
// full ledger in insertion order plus the running balance. A user with no
// transactions gets a nil slice and a zero balance.
func (s *transactionService) ListWithBalance(ctx context.Context, token string) ([]*model.Transaction, float64, error) {
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil || sessionExpired(session, s.sessionTTL) {
		return nil, 0, ErrSessionNotFound
	}

	transactions, err := s.transactionRepo.GetByUserID(ctx, session.UserID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	var balance float64
	for _, t := range transactions {
		balance += t.Income - t.Outgoing
	}

	return transactions, balance, nil
}
