package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/storage"
)

// storeError logs a failed storage call and converts it to a Connect error.
// Not-found and conflict errors keep their message; anything else is
// reported to the client as a generic internal error.
func storeError(op string, err error, attrs ...any) error {
	args := append([]any{"error", err}, attrs...)

	switch {
	case errors.Is(err, storage.ErrNotFound):
		slog.Warn(op+" failed", args...)
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		slog.Warn(op+" failed", args...)
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		slog.Error(op+" failed", args...)
		return connect.NewError(connect.CodeInternal, errors.New(op+" failed"))
	}
}
