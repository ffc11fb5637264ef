package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyyur/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgForeignKeyViolation   = "23503"
	mysqlNoReferencedRow    = 1452
	sqliteForeignKeyFailure = "FOREIGN KEY constraint failed"
)

// Transact runs fn inside one transaction. Any error or panic from fn rolls
// everything back; the transaction is released on every path. The returned
// error is already classified.
func Transact(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return Classify(db.WithContext(ctx).Transaction(fn))
}

// Classify folds driver errors into the domain kinds. Errors that already
// carry a domain kind are returned untouched.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotAvailable),
		errors.Is(err, domain.ErrStoreFailure):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound), isForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreFailure, err)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlNoReferencedRow
	}
	return strings.Contains(err.Error(), sqliteForeignKeyFailure)
}
