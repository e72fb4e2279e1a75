package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type seedUser struct {
	username string
	password string
	name     string
	role     string
	userType string
}

type seedGame struct {
	code        string
	name        string
	displayName string
	balance     string
	robot       domain.RobotStatus
}

var roles = []string{domain.RoleAdmin, domain.RoleAgentManager, domain.RoleViewer, domain.RolePlayer}

var users = []seedUser{
	{"admin", "admin123", "Administrator", domain.RoleAdmin, ""},
	{"agent_one", "agent123", "Agent One", domain.RoleAgentManager, "master"},
	{"agent_two", "agent123", "Agent Two", domain.RoleAgentManager, "reseller"},
	{"player_one", "player123", "Player One", domain.RolePlayer, ""},
	{"player_two", "player123", "Player Two", domain.RolePlayer, ""},
	{"player_three", "player123", "Player Three", domain.RolePlayer, ""},
}

var games = []seedGame{
	{"918KISS", "918Kiss", "918 Kiss", "15000.00", domain.RobotStatusEnabled},
	{"MEGA88", "Mega888", "Mega 888", "12000.00", domain.RobotStatusEnabled},
	{"PUSSY888", "Pussy888", "Pussy 888", "8000.00", domain.RobotStatusDisabled},
	{"JOKER", "Joker", "Joker Gaming", "5000.00", domain.RobotStatusDisabled},
	{"ROLLEX", "Rollex", "Rollex", "3000.00", domain.RobotStatusDisabled},
	{"LIVE22", "Live22", "Live 22", "4500.00", domain.RobotStatusEnabled},
}

// Seeder handles database seeding operations. Every step skips rows that already exist.
type Seeder struct {
	roleRepo       domain.RoleRepository
	userRepo       domain.UserRepository
	gameRepo       domain.GameRepository
	commissionRepo domain.CommissionRepository
	hasher         auth.PasswordHasher
	logger         *logger.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(
	roleRepo domain.RoleRepository,
	userRepo domain.UserRepository,
	gameRepo domain.GameRepository,
	commissionRepo domain.CommissionRepository,
	hasher auth.PasswordHasher,
	logger *logger.Logger,
) *Seeder {
	return &Seeder{
		roleRepo:       roleRepo,
		userRepo:       userRepo,
		gameRepo:       gameRepo,
		commissionRepo: commissionRepo,
		hasher:         hasher,
		logger:         logger,
	}
}

// Run seeds roles, users, games and sample commissions in that order
func (s *Seeder) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"roles", s.SeedRoles},
		{"users", s.SeedUsers},
		{"games", s.SeedGames},
		{"commissions", s.SeedCommissions},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	return nil
}

// SeedRoles seeds the four standard roles
func (s *Seeder) SeedRoles(ctx context.Context) error {
	for _, name := range roles {
		existing, err := s.roleRepo.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.roleRepo.Create(ctx, &domain.Role{Name: name}); err != nil {
			return err
		}
		s.logger.Info("Role seeded", zap.String("role", name))
	}
	return nil
}

// SeedUsers seeds the admin, two agents and three players
func (s *Seeder) SeedUsers(ctx context.Context) error {
	for _, u := range users {
		existing, err := s.userRepo.GetByUsername(ctx, u.username)
		if err != nil {
			return err
		}
		if existing != nil {
			s.logger.Debug("User already exists, skipping", zap.String("username", u.username))
			continue
		}

		role, err := s.roleRepo.GetByName(ctx, u.role)
		if err != nil {
			return err
		}
		if role == nil {
			return fmt.Errorf("role %q missing", u.role)
		}

		hash, err := s.hasher.Hash(u.password)
		if err != nil {
			return err
		}

		user := &domain.User{
			Username:  u.username,
			Password:  hash,
			RoleID:    role.ID,
			Name:      u.name,
			Status:    domain.UserStatusActive,
			Type:      u.userType,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		s.logger.Info("User seeded", zap.String("username", u.username), zap.String("role", u.role))
	}
	return nil
}

// SeedGames seeds the game catalog
func (s *Seeder) SeedGames(ctx context.Context) error {
	for _, g := range games {
		existing, err := s.gameRepo.GetByCode(ctx, g.code)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		game := &domain.Game{
			Code:        g.code,
			Name:        g.name,
			DisplayName: g.displayName,
			Balance:     decimal.RequireFromString(g.balance),
			RobotStatus: g.robot,
		}
		if err := s.gameRepo.Create(ctx, game); err != nil {
			return err
		}
		s.logger.Info("Game seeded", zap.String("code", g.code))
	}
	return nil
}

// SeedCommissions adds a week of sample commissions for each agent when the table is empty
func (s *Seeder) SeedCommissions(ctx context.Context) error {
	existing, err := s.commissionRepo.List(ctx, domain.CommissionFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	rate := decimal.RequireFromString("0.0250")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, agent := range []string{"agent_one", "agent_two"} {
		for day := 0; day < 7; day++ {
			g := games[day%len(games)]
			turnover := decimal.NewFromInt(int64(1000 * (day + 1)))
			commission := &domain.Commission{
				AgentUsername: agent,
				GameName:      g.name,
				Turnover:      turnover,
				Rate:          rate,
				Amount:        turnover.Mul(rate).Round(2),
				Date:          today.AddDate(0, 0, -day),
			}
			if err := s.commissionRepo.Create(ctx, commission); err != nil {
				return err
			}
		}
	}
	s.logger.Info("Sample commissions seeded")
	return nil
}
