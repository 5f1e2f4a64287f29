// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog_backend/internal/feature/auth/domain/entity"
)

// DefaultStorageTimeout bounds every storage round trip made by a usecase call.
const DefaultStorageTimeout = 5 * time.Second

// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ (bcrypt cost 10)
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// ProfileRepository abstracts the persistence of user profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error)
}

// Transactor runs fn as one atomic unit of writes.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer はセッショントークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// Issue は指定されたユーザーの署名済みトークンを生成します。
	Issue(userID uint, email string) (string, error)
}

// UserError is a user-facing message describing why an auth request was refused.
type UserError struct {
	Message string
}

// AuthResult is the outcome of signup or signin.
// Either UserErrors is non-empty and Token is nil, or UserErrors is empty and Token is set.
type AuthResult struct {
	UserErrors []UserError
	Token      *string
}

// OK reports whether the result carries a token.
func (r AuthResult) OK() bool {
	return len(r.UserErrors) == 0 && r.Token != nil
}

func rejected(msg string) AuthResult {
	return AuthResult{UserErrors: []UserError{{Message: msg}}}
}

func issued(token string) AuthResult {
	return AuthResult{UserErrors: []UserError{}, Token: &token}
}

// SignupInput holds the fields submitted at signup.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Bio      string
}

// AuthUsecase implements signup and signin.
type AuthUsecase struct {
	users    UserRepository
	profiles ProfileRepository
	tx       Transactor
	hasher   PasswordHasher
	tokens   TokenIssuer
	timeout  time.Duration
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
// timeoutが0以下の場合はDefaultStorageTimeoutを使用します。
func NewAuthUsecase(users UserRepository, profiles ProfileRepository, tx Transactor,
	hasher PasswordHasher, tokens TokenIssuer, timeout time.Duration) *AuthUsecase {
	if timeout <= 0 {
		timeout = DefaultStorageTimeout
	}
	return &AuthUsecase{
		users:    users,
		profiles: profiles,
		tx:       tx,
		hasher:   hasher,
		tokens:   tokens,
		timeout:  timeout,
	}
}

// Signup registers a user and its profile and returns a session token.
// Validation failures and a taken email are reported in the result; the returned
// error is reserved for storage and signing faults.
func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) (AuthResult, error) {
	// 入力検証（ストレージには触れない）
	if errs := validateSignup(in); len(errs) > 0 {
		return AuthResult{UserErrors: errs}, nil
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	user := &entity.User{Email: in.Email, Name: in.Name, Password: hashed}
	err = u.tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := u.users.Create(ctx, user); err != nil {
			return err
		}
		return u.profiles.Create(ctx, &entity.Profile{Bio: in.Bio, UserID: user.ID})
	})
	if errors.Is(err, ErrEmailAlreadyExists) {
		return rejected(MsgEmailInUse), nil
	}
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return issued(token), nil
}

// Signin はユーザーを認証し、成功時にトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *AuthUsecase) Signin(ctx context.Context, email, password string) (AuthResult, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return AuthResult{}, fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyPasswordHash
	if user != nil {
		passwordHash = user.Password
	}
	matched := u.hasher.Verify(password, passwordHash)

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if user == nil || !matched {
		return rejected(MsgInvalidCredentials), nil
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return issued(token), nil
}
