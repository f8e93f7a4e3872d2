// Package repository implements the write side over pgx. Every successful
// mutation publishes a change event so watchers reload; publication is
// best-effort and never fails the write that triggered it.
package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"
)

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case "23503":
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}

func publishChange(ctx context.Context, feed realtime.Feed, logger *slog.Logger, table string, op realtime.Op, rowID uuid.UUID, userID *uuid.UUID) {
	if feed == nil {
		return
	}
	change := realtime.Change{
		Table:  table,
		Op:     op,
		RowID:  rowID,
		UserID: userID,
		At:     time.Now().UTC(),
	}
	if err := feed.Publish(ctx, change); err != nil {
		logger.Warn("failed to publish change event",
			"table", table, "op", string(op), "row_id", rowID, "error", err)
	}
}
