package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsdesk/internal/auth"
	"newsdesk/internal/model"
	"newsdesk/internal/repository"
	"newsdesk/internal/security"
)

// AuthUsecase defines the interface for authentication and account
// verification use cases.
type AuthUsecase interface {
	// Login validates credentials and mints an access token for the account.
	Login(ctx context.Context, params LoginParams) (string, *model.User, error)

	// Signup creates a pending account and its one-time verification code.
	// No email is sent; SendVerificationEmail triggers dispatch separately.
	Signup(ctx context.Context, params SignupParams) (*model.User, error)

	// SendVerificationEmail dispatches the stored code to the user's address.
	SendVerificationEmail(ctx context.Context, userID string) error

	// Verify redeems a code, marking the record consumed and the user verified.
	Verify(ctx context.Context, code string) (*model.User, error)
}

// LoginParams defines the parameters for user login. Email takes precedence
// when both identifiers are supplied.
type LoginParams struct {
	Email    string
	Username string
	Password string
}

// SignupParams defines the parameters for account creation.
type SignupParams struct {
	Username string
	Email    string
	Password string
	Phone    string
	Role     string
}

// Mailer is the narrow transport interface the verification flow needs.
type Mailer interface {
	SendSimple(to []string, subject, body string) error
}

var (
	ErrInvalidCredentials   = errors.New("invalid username/email or password")
	ErrNotVerified          = errors.New("account is not verified")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrVerificationNotFound = errors.New("verification record not found")
	ErrAlreadyVerified      = errors.New("account is already verified")
	ErrInvalidCode          = errors.New("invalid verification code")
	ErrEmailMissing         = errors.New("user has no email address")
	ErrEmailDispatch        = errors.New("failed to dispatch verification email")
)

const verificationCodeTTL = 24 * time.Hour

type authUsecase struct {
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	jwtAuth          auth.JWTAuthenticator
	mailer           Mailer
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	userRepo repository.UserRepository,
	verificationRepo repository.VerificationRepository,
	jwtAuth auth.JWTAuthenticator,
	mailer Mailer,
) AuthUsecase {
	return &authUsecase{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		jwtAuth:          jwtAuth,
		mailer:           mailer,
	}
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (string, *model.User, error) {
	var (
		user *model.User
		err  error
	)
	switch {
	case params.Email != "":
		user, err = u.userRepo.GetUserByEmail(ctx, params.Email)
	case params.Username != "":
		user, err = u.userRepo.GetUserByUsername(ctx, params.Username)
	default:
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Same message as a password mismatch to avoid account enumeration.
			return "", nil, ErrInvalidCredentials
		}

		return "", nil, err
	}

	if !user.IsVerified {
		return "", nil, ErrNotVerified
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return "", nil, err
	} else if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := u.jwtAuth.GenerateToken(user.ID.Hex())
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (u *authUsecase) Signup(ctx context.Context, params SignupParams) (*model.User, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	role := params.Role
	if role == "" {
		role = model.RoleUser
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: passwordHash,
		Phone:        params.Phone,
		Role:         role,
		// Admin accounts skip the verification flow entirely.
		IsVerified: role == model.RoleAdmin,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, err
	}

	if _, err := u.verificationRepo.CreateVerification(ctx, &model.Verification{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(verificationCodeTTL),
	}); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) SendVerificationEmail(ctx context.Context, userID string) error {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrVerificationNotFound
		}
		return err
	}

	verification, err := u.verificationRepo.GetVerificationByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrVerificationNotFound
		}
		return err
	}

	if verification.Active {
		return ErrAlreadyVerified
	}

	// Schema constraints make this unreachable, but a missing address would
	// otherwise surface as an opaque SMTP failure.
	if user.Email == "" {
		return ErrEmailMissing
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour verification code is %s.\n\nIt expires in %s.",
		user.Username, verification.Code, verificationCodeTTL,
	)

	if err := u.mailer.SendSimple([]string{user.Email}, "Verify your account", body); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailDispatch, err)
	}

	return nil
}

func (u *authUsecase) Verify(ctx context.Context, code string) (*model.User, error) {
	verification, err := u.verificationRepo.GetVerificationByCode(ctx, code)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	if verification.Active {
		return nil, ErrAlreadyVerified
	}

	// Two independent writes. The user is flipped first so a failure between
	// the writes leaves a still-redeemable code rather than a consumed code
	// on an unverified account.
	if err := u.userRepo.SetUserVerified(ctx, verification.UserID.Hex()); err != nil {
		return nil, err
	}

	if err := u.verificationRepo.MarkVerificationActive(ctx, verification.ID); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUser(ctx, verification.UserID.Hex())
	if err != nil {
		return nil, err
	}

	return user, nil
}

// generateVerificationCode returns a uniform random 6-digit numeric code.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
