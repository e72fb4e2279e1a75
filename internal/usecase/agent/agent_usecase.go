package agent

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

const operationCreateAgent = "Create Agent"

// AgentUseCase implements domain.AgentUseCase
type AgentUseCase struct {
	userRepo domain.UserRepository
	roleRepo domain.RoleRepository
	hasher   auth.PasswordHasher
	activity domain.ActivityUseCase
	logger   *logger.Logger
}

// NewAgentUseCase creates a new agent use case
func NewAgentUseCase(
	userRepo domain.UserRepository,
	roleRepo domain.RoleRepository,
	hasher auth.PasswordHasher,
	activity domain.ActivityUseCase,
	logger *logger.Logger,
) domain.AgentUseCase {
	return &AgentUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		activity: activity,
		logger:   logger,
	}
}

// CreateAgent creates a user holding the agent_manager role
func (uc *AgentUseCase) CreateAgent(ctx context.Context, in domain.CreateAgentInput, actor domain.Actor) (*domain.User, error) {
	log := uc.logger.WithContext(ctx)

	if err := validateAgent(&in); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		log.Error("Failed to check username", zap.String("username", in.Username), zap.Error(err))
		return nil, domain.NewDatabaseError("get user", err)
	}
	if existing != nil {
		return nil, usernameTaken()
	}

	role, err := uc.roleRepo.GetByName(ctx, domain.RoleAgentManager)
	if err != nil {
		log.Error("Failed to get agent role", zap.Error(err))
		return nil, domain.NewDatabaseError("get role", err)
	}
	if role == nil {
		log.Error("Agent manager role is not seeded")
		return nil, domain.NewInternalError("Agent Manager role not found", nil)
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	agent := &domain.User{
		Username:  in.Username,
		Password:  hash,
		RoleID:    role.ID,
		Name:      in.Name,
		Status:    in.Status,
		Type:      in.Type,
		CreatedAt: time.Now().UTC(),
		Role:      *role,
	}
	if err := uc.userRepo.Create(ctx, agent); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, usernameTaken()
		}
		log.Error("Failed to create agent", zap.String("username", in.Username), zap.Error(err))
		return nil, domain.NewDatabaseError("create agent", err)
	}

	uc.activity.Record(ctx, actor, operationCreateAgent, fmt.Sprintf("Created agent %s", agent.Username))
	log.Info("Agent created",
		zap.Int64("agent_id", agent.ID),
		zap.String("created_by", actor.Username))

	return agent, nil
}

// ListAgents returns every agent_manager user
func (uc *AgentUseCase) ListAgents(ctx context.Context) ([]*domain.User, error) {
	return uc.listByRole(ctx, domain.RoleAgentManager)
}

// ListPlayers returns every end player ordered by username
func (uc *AgentUseCase) ListPlayers(ctx context.Context) ([]*domain.User, error) {
	return uc.listByRole(ctx, domain.RolePlayer)
}

func (uc *AgentUseCase) listByRole(ctx context.Context, role string) ([]*domain.User, error) {
	users, err := uc.userRepo.ListByRole(ctx, role)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list users",
			zap.String("role", role),
			zap.Error(err))
		return nil, domain.NewDatabaseError("list users", err)
	}
	return users, nil
}

func validateAgent(in *domain.CreateAgentInput) error {
	switch {
	case in.Username == "":
		return domain.NewValidationError("username", "is required")
	case in.Name == "":
		return domain.NewValidationError("name", "is required")
	case in.Password == "":
		return domain.NewValidationError("password", "is required")
	}

	if in.Status == "" {
		in.Status = domain.UserStatusActive
	}
	if !in.Status.Valid() {
		return domain.NewValidationError("status", "must be active or inactive")
	}
	return nil
}

func usernameTaken() *domain.AppError {
	return domain.NewConflictError(domain.ErrCodeUsernameTaken, "Username already exists")
}
