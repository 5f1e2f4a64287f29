package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor runs a set of writes as one atomic unit.
// Repositories join the running transaction through Conn.
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor over db.
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// InTransaction begins a transaction, stores it in ctx and calls fn.
// The transaction commits when fn returns nil and rolls back otherwise.
func (t *Transactor) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return Conn(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Conn returns the transaction carried by ctx, or db when there is none.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
