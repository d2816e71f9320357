package usecase

import (
	"context"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/internal/domain/service"
	"ebazaar/pkg/errors"
	"ebazaar/pkg/logger"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	authClient FirebaseAuthClient
	payment    service.PaymentService
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	tenantRepo repository.TenantRepository,
	authClient FirebaseAuthClient,
	payment service.PaymentService,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		authClient: authClient,
		payment:    payment,
	}
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Register creates the auth record, the user's storefront tenant and its
// connected payment account, then signs the new user in. The username doubles
// as the tenant slug, so it must be unique across the platform.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("Username already taken")
	}

	existing, err = uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("Email already registered")
	}

	accountID, err := uc.payment.CreateAccount(ctx)
	if err != nil {
		return nil, err
	}

	tenant := &entity.Tenant{
		Name:            input.Username,
		Slug:            input.Username,
		StripeAccountID: accountID,
	}
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:       uid,
		Email:    input.Email,
		Username: input.Username,
		Role:     "user",
		Tenants:  []string{tenant.ID},
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.authClient.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		// The account exists; the client can still log in manually.
		logger.Warn("Post-registration sign-in failed for %s: %v", input.Email, err)
		return &AuthOutput{User: user}, nil
	}

	return &AuthOutput{Token: token, User: user}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	token, err := uc.authClient.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{Token: token, User: user}, nil
}

// Session resolves a bearer token to the signed-in user.
func (uc *AuthUseCase) Session(ctx context.Context, token string) (*entity.User, error) {
	uid, err := uc.authClient.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}
	return uc.userRepo.GetByID(ctx, uid)
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}
