package graphql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/metrics"
	"blog_backend/internal/shared/apierror"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, in usecase.SignupInput) (usecase.AuthResult, error)
	SigninFunc func(ctx context.Context, email, password string) (usecase.AuthResult, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, in usecase.SignupInput) (usecase.AuthResult, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, in)
	}
	return usecase.AuthResult{}, errors.New("unexpected call")
}

func (m *mockAuthUsecase) Signin(ctx context.Context, email, password string) (usecase.AuthResult, error) {
	if m.SigninFunc != nil {
		return m.SigninFunc(ctx, email, password)
	}
	return usecase.AuthResult{}, errors.New("unexpected call")
}

type recorded struct{ operation, outcome string }

type fakeRecorder struct{ calls []recorded }

func (f *fakeRecorder) RecordAuth(operation, outcome string) {
	f.calls = append(f.calls, recorded{operation, outcome})
}

func tokenResult(tok string) usecase.AuthResult {
	return usecase.AuthResult{UserErrors: []usecase.UserError{}, Token: &tok}
}

func TestMutationResolver_Signup(t *testing.T) {
	t.Parallel()

	args := SignupArgs{
		Credentials: CredentialsInput{Email: "a@example.com", Password: "password123"},
		Name:        "Alice",
		Bio:         "hello",
	}

	tests := []struct {
		name        string
		signup      func(ctx context.Context, in usecase.SignupInput) (usecase.AuthResult, error)
		wantErr     error
		wantToken   bool
		wantMessage string
		wantOutcome string
	}{
		{
			name: "success",
			signup: func(ctx context.Context, in usecase.SignupInput) (usecase.AuthResult, error) {
				if in.Email != "a@example.com" || in.Password != "password123" || in.Name != "Alice" || in.Bio != "hello" {
					return usecase.AuthResult{}, errors.New("arguments not forwarded")
				}
				return tokenResult("tok"), nil
			},
			wantToken:   true,
			wantOutcome: metrics.OutcomeOK,
		},
		{
			name: "rejected: email in use",
			signup: func(ctx context.Context, in usecase.SignupInput) (usecase.AuthResult, error) {
				return usecase.AuthResult{UserErrors: []usecase.UserError{{Message: usecase.MsgEmailInUse}}}, nil
			},
			wantMessage: usecase.MsgEmailInUse,
			wantOutcome: metrics.OutcomeRejected,
		},
		{
			name: "fault is masked",
			signup: func(ctx context.Context, in usecase.SignupInput) (usecase.AuthResult, error) {
				return usecase.AuthResult{}, errors.New("dial tcp: connection refused")
			},
			wantErr:     apierror.ErrInternal,
			wantOutcome: metrics.OutcomeFault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &fakeRecorder{}
			r := NewMutationResolver(&mockAuthUsecase{SignupFunc: tt.signup}, rec)

			payload, err := r.Signup(context.Background(), args)

			require.Len(t, rec.calls, 1)
			assert.Equal(t, recorded{"signup", tt.wantOutcome}, rec.calls[0])

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, payload)
				return
			}
			require.NoError(t, err)
			if tt.wantToken {
				require.NotNil(t, payload.Token())
				assert.Equal(t, "tok", *payload.Token())
				assert.Empty(t, payload.UserErrors())
			} else {
				assert.Nil(t, payload.Token())
				require.Len(t, payload.UserErrors(), 1)
				assert.Equal(t, tt.wantMessage, payload.UserErrors()[0].Message())
			}
		})
	}
}

func TestMutationResolver_Signin(t *testing.T) {
	t.Parallel()

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()

		r := NewMutationResolver(&mockAuthUsecase{
			SigninFunc: func(ctx context.Context, email, password string) (usecase.AuthResult, error) {
				return usecase.AuthResult{UserErrors: []usecase.UserError{{Message: usecase.MsgInvalidCredentials}}}, nil
			},
		}, nil)

		payload, err := r.Signin(context.Background(), SigninArgs{Credentials: CredentialsInput{Email: "x@example.com", Password: "wrong"}})
		require.NoError(t, err)
		assert.Nil(t, payload.Token())
		require.Len(t, payload.UserErrors(), 1)
		assert.Equal(t, "Invalid credentials", payload.UserErrors()[0].Message())
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var gotEmail, gotPassword string
		rec := &fakeRecorder{}
		r := NewMutationResolver(&mockAuthUsecase{
			SigninFunc: func(ctx context.Context, email, password string) (usecase.AuthResult, error) {
				gotEmail, gotPassword = email, password
				return tokenResult("tok"), nil
			},
		}, rec)

		payload, err := r.Signin(context.Background(), SigninArgs{Credentials: CredentialsInput{Email: "a@example.com", Password: "password123"}})
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", gotEmail)
		assert.Equal(t, "password123", gotPassword)
		require.NotNil(t, payload.Token())
		assert.Equal(t, []recorded{{"signin", metrics.OutcomeOK}}, rec.calls)
	})

	t.Run("fault", func(t *testing.T) {
		t.Parallel()

		r := NewMutationResolver(&mockAuthUsecase{
			SigninFunc: func(ctx context.Context, email, password string) (usecase.AuthResult, error) {
				return usecase.AuthResult{}, context.DeadlineExceeded
			},
		}, nil)

		_, err := r.Signin(context.Background(), SigninArgs{})
		assert.ErrorIs(t, err, apierror.ErrInternal)
		assert.NotErrorIs(t, err, context.DeadlineExceeded)
	})
}
