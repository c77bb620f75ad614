package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
	"github.com/heartmarshall/linkshelf-backend/pkg/ctxutil"
)

// ErrorPresenter converts a resolver error into the error returned to the client.
type ErrorPresenter func(ctx context.Context, err error) error

// PresentedError is a client-facing GraphQL error. graphql-go copies
// Extensions into the "extensions" member of the response error.
type PresentedError struct {
	Message    string
	Code       string
	Extra      map[string]any
	underlying error
}

func (e *PresentedError) Error() string { return e.Message }

func (e *PresentedError) Unwrap() error { return e.underlying }

// Extensions implements gqlerrors.ExtendedError.
func (e *PresentedError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	for k, v := range e.Extra {
		ext[k] = v
	}
	return ext
}

// NewErrorPresenter returns a presenter that maps domain errors to GraphQL
// error codes. Unexpected errors are logged and hidden behind "internal error".
func NewErrorPresenter(log *slog.Logger) ErrorPresenter {
	return func(ctx context.Context, err error) error {
		if err == nil {
			return nil
		}

		var presented *PresentedError
		if errors.As(err, &presented) {
			return presented
		}

		out := &PresentedError{Message: err.Error(), underlying: err}

		switch {
		case errors.Is(err, domain.ErrNotFound):
			out.Code = "NOT_FOUND"

		case errors.Is(err, domain.ErrAlreadyExists):
			out.Code = "ALREADY_EXISTS"

		case errors.Is(err, domain.ErrValidation):
			out.Code = "VALIDATION"
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				fields := make([]map[string]string, len(ve.Errors))
				for i, fe := range ve.Errors {
					fields[i] = map[string]string{"field": fe.Field, "message": fe.Message}
				}
				out.Extra = map[string]any{"fields": fields}
			}

		case errors.Is(err, domain.ErrUnauthorized):
			out.Code = "UNAUTHENTICATED"

		default:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			out.Message = "internal error"
			out.Code = "INTERNAL"
		}

		return out
	}
}
