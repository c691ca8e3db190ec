package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AddSavepoint marks a recovery point inside the caller's transaction so a
// failed write can be unwound without losing earlier work.
func AddSavepoint(tx *sql.Tx) (string, error) {
	name := "sp" + strings.ReplaceAll(uuid.New().String(), "-", "")
	if _, err := tx.Exec("SAVEPOINT " + name + ";"); err != nil {
		return "", fmt.Errorf("failed to create savepoint: %w", err)
	}
	return name, nil
}

func RollbackToSavepoint(tx *sql.Tx, name string) error {
	_, err := tx.Exec("ROLLBACK TO SAVEPOINT " + name)
	return err
}

func RollbackWithError(tx *sql.Tx, savepointName string, err error) error {
	if err != nil {
		if savepointErr := RollbackToSavepoint(tx, savepointName); savepointErr != nil {
			return fmt.Errorf("failed to rollback tx with err %w while handling error: %w", savepointErr, err)
		}
		return err
	}
	return nil
}

func IsDuplicateEntryErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
