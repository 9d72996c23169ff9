package repository

import (
	"context"
	"fmt"

	"mywallet/internal/model"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction) error
	GetByUserID(ctx context.Context, userID int64) ([]*model.Transaction, error)
}

type transactionRepository struct {
	db *Database
}

func NewTransactionRepository(db *Database) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	query := `INSERT INTO transactions (user_id, description, income, outgoing, date)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.db.QueryRowContext(ctx, query,
		transaction.UserID,
		transaction.Description,
		transaction.Income,
		transaction.Outgoing,
		transaction.Date,
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByUserID(ctx context.Context, userID int64) ([]*model.Transaction, error) {
	query := `SELECT id, user_id, description, income, outgoing, date
              FROM transactions
              WHERE user_id = $1
              ORDER BY id ASC`

	rows, err := r.db.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Description,
			&t.Income,
			&t.Outgoing,
			&t.Date,
		); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		transactions = append(transactions, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return transactions, nil
}
