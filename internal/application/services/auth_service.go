package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/errs"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure"
)

const adminRoleName = "admin"

type AuthService struct {
	userRepo    repositories.UserRepository
	roleRepo    repositories.RoleRepository
	jwtService  *infrastructure.JWTService
	rateLimiter *infrastructure.RateLimiter
	bcryptCost  int
	log         *logrus.Logger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	jwtService *infrastructure.JWTService,
	rateLimiter *infrastructure.RateLimiter,
	bcryptCost int,
	log *logrus.Logger,
) interfaces.AuthService {
	return &AuthService{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		jwtService:  jwtService,
		rateLimiter: rateLimiter,
		bcryptCost:  bcryptCost,
		log:         log,
	}
}

func (s *AuthService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	// Best-effort check: the unique index on users.username is the actual
	// enforcer, and the repository translates its violation to the same error.
	existingUser, err := s.userRepo.FindByUsername(ctx, registerCommand.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, errs.ErrUsernameTaken
	}

	newUser := entities.NewUser(registerCommand.Username, registerCommand.Password)
	if err := newUser.HashPassword(s.bcryptCost); err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.Issue(createdUser.Username, createdUser.RoleNames())
	if err != nil {
		return nil, err
	}

	s.log.WithField("username", createdUser.Username).Info("user registered")

	return &command.RegisterUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if !s.rateLimiter.Allow(loginCommand.Username) {
		return nil, errs.ErrTooManyRequests
	}

	// Unknown username and wrong password take the same exit so responses
	// cannot be used to enumerate accounts.
	user, err := s.userRepo.FindByUsername(ctx, loginCommand.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrInvalidCredentials
	}
	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.Username, user.RoleNames())
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.User, []string, error) {
	subject, roles, err := s.jwtService.Verify(token)
	if err != nil {
		return nil, nil, errs.ErrInvalidToken
	}

	// One store lookup per call; the subject may have been deleted after
	// the token was issued.
	user, err := s.userRepo.FindByUsername(ctx, subject)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, errs.ErrInvalidToken
	}

	return user, roles, nil
}

func (s *AuthService) EnsureAdminUser(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		newUser := entities.NewUser(username, password)
		if err := newUser.HashPassword(s.bcryptCost); err != nil {
			return err
		}
		validatedUser, err := entities.NewValidatedUser(newUser)
		if err != nil {
			return err
		}
		user, err = s.userRepo.Create(ctx, validatedUser)
		if err != nil {
			return err
		}
		s.log.WithField("username", username).Info("admin user created")
	}

	role, err := s.roleRepo.FindOrCreate(ctx, adminRoleName)
	if err != nil {
		return err
	}
	return s.roleRepo.Grant(ctx, user.Id, role.Id)
}
