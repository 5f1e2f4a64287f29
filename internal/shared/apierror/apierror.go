// Package apierror はAPI境界でのエラー変換を提供します。
package apierror

import (
	"context"
	"errors"
	"log/slog"
)

// ErrInternal is the only fault message a client ever sees.
var ErrInternal = errors.New("internal server error")

// Mask logs err with the failing operation and returns ErrInternal.
// A nil err is returned unchanged.
func Mask(ctx context.Context, operation string, err error) error {
	if err == nil {
		return nil
	}
	// 詳細はログにのみ残し、クライアントには返さない
	slog.ErrorContext(ctx, "request failed", "operation", operation, "error", err)
	return ErrInternal
}
