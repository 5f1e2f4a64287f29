// Package graphql はauthフィーチャーのGraphQLミューテーションを提供します。
package graphql

import (
	"context"
	"log/slog"

	"blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/metrics"
	"blog_backend/internal/shared/apierror"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（transport）が定義します。
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (usecase.AuthResult, error)
	Signin(ctx context.Context, email, password string) (usecase.AuthResult, error)
}

// AuthRecorder records the outcome of an auth attempt.
type AuthRecorder interface {
	RecordAuth(operation, outcome string)
}

// CredentialsInput is the GraphQL CredentialsInput object.
type CredentialsInput struct {
	Email    string
	Password string
}

// SignupArgs are the arguments of Mutation.signup.
type SignupArgs struct {
	Credentials CredentialsInput
	Name        string
	Bio         string
}

// SigninArgs are the arguments of Mutation.signin.
type SigninArgs struct {
	Credentials CredentialsInput
}

// MutationResolver resolves the signup and signin mutations.
type MutationResolver struct {
	auth    AuthUsecase
	metrics AuthRecorder
}

// NewMutationResolver creates a MutationResolver. rec may be nil.
func NewMutationResolver(auth AuthUsecase, rec AuthRecorder) *MutationResolver {
	return &MutationResolver{auth: auth, metrics: rec}
}

// Signup はユーザー登録ミューテーションを処理します。
// - 入力不備やメール重複はuserErrorsとして返却
// - ストレージ障害は汎用エラーに変換
func (r *MutationResolver) Signup(ctx context.Context, args SignupArgs) (*AuthPayloadResolver, error) {
	res, err := r.auth.Signup(ctx, usecase.SignupInput{
		Email:    args.Credentials.Email,
		Password: args.Credentials.Password,
		Name:     args.Name,
		Bio:      args.Bio,
	})
	if err != nil {
		r.record("signup", metrics.OutcomeFault)
		return nil, apierror.Mask(ctx, "signup", err)
	}
	if !res.OK() {
		r.record("signup", metrics.OutcomeRejected)
		slog.WarnContext(ctx, "signup rejected", "email", args.Credentials.Email, "reason", res.UserErrors[0].Message)
		return &AuthPayloadResolver{res: res}, nil
	}
	r.record("signup", metrics.OutcomeOK)
	slog.InfoContext(ctx, "user signup successful", "email", args.Credentials.Email)
	return &AuthPayloadResolver{res: res}, nil
}

// Signin はログインミューテーションを処理します。
func (r *MutationResolver) Signin(ctx context.Context, args SigninArgs) (*AuthPayloadResolver, error) {
	res, err := r.auth.Signin(ctx, args.Credentials.Email, args.Credentials.Password)
	if err != nil {
		r.record("signin", metrics.OutcomeFault)
		return nil, apierror.Mask(ctx, "signin", err)
	}
	if !res.OK() {
		// ユーザー列挙攻撃を防止するため、理由は区別しない
		r.record("signin", metrics.OutcomeRejected)
		slog.WarnContext(ctx, "signin rejected", "email", args.Credentials.Email)
		return &AuthPayloadResolver{res: res}, nil
	}
	r.record("signin", metrics.OutcomeOK)
	slog.InfoContext(ctx, "user signin successful", "email", args.Credentials.Email)
	return &AuthPayloadResolver{res: res}, nil
}

func (r *MutationResolver) record(operation, outcome string) {
	if r.metrics != nil {
		r.metrics.RecordAuth(operation, outcome)
	}
}

// AuthPayloadResolver resolves the AuthPayload type.
type AuthPayloadResolver struct {
	res usecase.AuthResult
}

// UserErrors is never null; a successful payload has an empty list.
func (p *AuthPayloadResolver) UserErrors() []*UserErrorResolver {
	out := make([]*UserErrorResolver, 0, len(p.res.UserErrors))
	for _, e := range p.res.UserErrors {
		out = append(out, &UserErrorResolver{message: e.Message})
	}
	return out
}

// Token is null whenever userErrors is non-empty.
func (p *AuthPayloadResolver) Token() *string {
	return p.res.Token
}

// UserErrorResolver resolves the UserError type.
type UserErrorResolver struct {
	message string
}

func (e *UserErrorResolver) Message() string { return e.message }
