package database

import (
	"context"
	"fmt"

	"github.com/oculusgrp/dealdesk_backend/internal/repo"
)

// WithTx runs fn inside an ent transaction, committing on nil and
// rolling back on error or panic. The payment calculators run inside
// this so a payment row and its split rows always commit together.
func WithTx(ctx context.Context, client *repo.Client, fn func(tx *repo.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
