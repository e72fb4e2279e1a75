package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	operationLogin          = "Login"
	operationRegister       = "Register"
	operationChangePassword = "Change Password"
	minPasswordLength       = 6
)

// timingPassword is hashed once so unknown usernames still pay for a bcrypt comparison
const timingPassword = "backoffice-timing-equalizer"

// selfServiceRoles may be chosen on public registration
var selfServiceRoles = map[string]bool{
	domain.RoleViewer: true,
	domain.RolePlayer: true,
}

// UserUseCase implements domain.AuthUseCase
type UserUseCase struct {
	userRepo domain.UserRepository
	roleRepo domain.RoleRepository
	jwtSvc   auth.JWTService
	hasher   auth.PasswordHasher
	activity domain.ActivityUseCase
	logger   *logger.Logger
	now      func() time.Time

	dummyHash string
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(
	userRepo domain.UserRepository,
	roleRepo domain.RoleRepository,
	jwtSvc auth.JWTService,
	hasher auth.PasswordHasher,
	activity domain.ActivityUseCase,
	logger *logger.Logger,
) domain.AuthUseCase {
	dummyHash, err := hasher.Hash(timingPassword)
	if err != nil {
		logger.Warn("Failed to prepare timing hash", zap.Error(err))
	}
	return &UserUseCase{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		jwtSvc:    jwtSvc,
		hasher:    hasher,
		activity:  activity,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		dummyHash: dummyHash,
	}
}

// Login validates credentials, stamps the login time and returns a signed token
func (uc *UserUseCase) Login(ctx context.Context, username, password string, actor domain.Actor) (string, *domain.UserSummary, error) {
	log := uc.logger.WithContext(ctx)
	log.Info("Starting user authentication", zap.String("username", username))

	if username == "" || password == "" {
		log.Warn("Authentication attempt with empty credentials",
			zap.String("username", username),
			zap.Bool("has_password", password != ""))
		return "", nil, invalidCredentials()
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		log.Error("Failed to get user from database during authentication",
			zap.String("username", username),
			zap.Error(err))
		return "", nil, domain.NewDatabaseError("get user", err)
	}

	if user == nil {
		uc.hasher.Compare(uc.dummyHash, password)
		log.Warn("Authentication failed - user not found", zap.String("username", username))
		return "", nil, invalidCredentials()
	}

	if !uc.hasher.Compare(user.Password, password) {
		log.Warn("Authentication failed - invalid password",
			zap.Int64("user_id", user.ID),
			zap.String("username", username))
		return "", nil, invalidCredentials()
	}

	if user.Status == domain.UserStatusInactive {
		log.Warn("Authentication failed - inactive account", zap.Int64("user_id", user.ID))
		return "", nil, domain.NewUnauthorizedError("account is inactive")
	}

	token, err := uc.jwtSvc.GenerateToken(user.ID, user.Username, user.Role.Name)
	if err != nil {
		log.Error("Failed to generate JWT token",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		return "", nil, domain.NewSigningError(err)
	}

	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID, uc.now()); err != nil {
		log.Error("Failed to update last login", zap.Int64("user_id", user.ID), zap.Error(err))
		return "", nil, domain.NewDatabaseError("update last login", err)
	}

	actor.UserID = user.ID
	actor.Username = user.Username
	actor.Role = user.Role.Name
	uc.activity.Record(ctx, actor, operationLogin, "")

	log.Info("User authentication successful",
		zap.Int64("user_id", user.ID),
		zap.String("role", user.Role.Name))

	return token, &domain.UserSummary{ID: user.ID, Username: user.Username, Role: user.Role.Name}, nil
}

// Register creates a self-service account. The role defaults to viewer.
func (uc *UserUseCase) Register(ctx context.Context, username, password, roleName string, actor domain.Actor) (*domain.User, error) {
	log := uc.logger.WithContext(ctx)

	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if len(password) < minPasswordLength {
		return nil, domain.NewValidationError("password", "must be at least 6 characters")
	}
	if roleName == "" {
		roleName = domain.RoleViewer
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		log.Error("Failed to check username", zap.String("username", username), zap.Error(err))
		return nil, domain.NewDatabaseError("get user", err)
	}
	if existing != nil {
		return nil, usernameTaken()
	}

	role, err := uc.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		log.Error("Failed to get role", zap.String("role", roleName), zap.Error(err))
		return nil, domain.NewDatabaseError("get role", err)
	}
	if role == nil {
		return nil, domain.NewValidationError("role_name", "invalid role specified")
	}
	if !selfServiceRoles[role.Name] {
		log.Warn("Registration with privileged role refused", zap.String("role", role.Name))
		return nil, domain.NewForbiddenError("role cannot be self-assigned")
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	user := &domain.User{
		Username:  username,
		Password:  hash,
		RoleID:    role.ID,
		Status:    domain.UserStatusActive,
		CreatedAt: uc.now(),
		Role:      *role,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, usernameTaken()
		}
		log.Error("Failed to create user", zap.String("username", username), zap.Error(err))
		return nil, domain.NewDatabaseError("create user", err)
	}

	actor.UserID = user.ID
	actor.Username = user.Username
	actor.Role = role.Name
	uc.activity.Record(ctx, actor, operationRegister, fmt.Sprintf("Registered as %s", role.Name))

	log.Info("User registered", zap.Int64("user_id", user.ID), zap.String("role", role.Name))
	return user, nil
}

// ChangePassword replaces the caller's password after verifying the current one
func (uc *UserUseCase) ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error {
	log := uc.logger.WithContext(ctx)
	userID := actor.UserID

	if len(newPassword) < minPasswordLength {
		return domain.NewValidationError("new_password", "must be at least 6 characters")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Error("Failed to get user", zap.Int64("user_id", userID), zap.Error(err))
		return domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
	}

	if !uc.hasher.Compare(user.Password, currentPassword) {
		log.Warn("Password change with wrong current password", zap.Int64("user_id", userID))
		return domain.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return domain.NewInternalError("Failed to hash password", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		log.Error("Failed to update password", zap.Int64("user_id", userID), zap.Error(err))
		return domain.NewDatabaseError("update password", err)
	}

	uc.activity.Record(ctx, actor, operationChangePassword, "")
	return nil
}

func invalidCredentials() *domain.AppError {
	return domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid username or password", 401, nil)
}

func usernameTaken() *domain.AppError {
	return domain.NewConflictError(domain.ErrCodeUsernameTaken, "Username already exists")
}
