package services

import (
	"strings"

	"go.uber.org/zap"

	"linkedpro/internal/application/command"
	"linkedpro/internal/application/interfaces"
	"linkedpro/internal/application/mapper"
	"linkedpro/internal/application/query"
	"linkedpro/internal/domain"
	"linkedpro/internal/domain/entities"
	"linkedpro/internal/domain/repositories"
	"linkedpro/internal/infrastructure"
	"linkedpro/internal/session"
)

type UserService struct {
	userRepo   repositories.UserRepository
	jwtService *infrastructure.JWTService
	sessions   *session.Registry
	logger     *zap.Logger
}

func NewUserService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	sessions *session.Registry,
	logger *zap.Logger,
) interfaces.UserService {
	return &UserService{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
		logger:     logger,
	}
}

// Register validates every field before any write, so a failed registration
// leaves the store untouched. A new account is logged in immediately.
func (s *UserService) Register(cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)
	bio := strings.TrimSpace(cmd.Bio)

	fields := map[string]string{}
	if msg := domain.ValidateName(name); msg != "" {
		fields["name"] = msg
	}
	if msg := domain.ValidateEmail(email); msg != "" {
		fields["email"] = msg
	} else if s.userRepo.FindByEmail(email) != nil {
		fields["email"] = "Email already exists"
	}
	if msg := domain.ValidatePassword(cmd.Password); msg != "" {
		fields["password"] = msg
	}
	if len(fields) > 0 {
		return nil, domain.NewFieldValidationError(fields)
	}

	user := s.userRepo.Create(entities.NewUser(name, email, cmd.Password, bio))

	token, tokenID, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	s.sessions.Start(tokenID, user.ID)

	s.logger.Info("user registered", zap.Int("user_id", user.ID))

	return &command.RegisterUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

// Login matches email and password exactly: comparison is case-sensitive
// and whitespace in the password is significant.
func (s *UserService) Login(cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	email := strings.TrimSpace(cmd.Email)
	if email == "" || cmd.Password == "" {
		return nil, domain.NewValidationError("Please fill in all fields")
	}

	user := s.userRepo.FindByEmail(email)
	if user == nil || !user.CheckPassword(cmd.Password) {
		return nil, domain.NewAuthError("invalid credentials")
	}

	token, tokenID, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	s.sessions.Start(tokenID, user.ID)

	s.logger.Info("user logged in", zap.Int("user_id", user.ID))

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

// Logout revokes the token's session; the token is useless afterwards even
// though it has not expired.
func (s *UserService) Logout(tokenID string) {
	s.sessions.End(tokenID)
}

// UpdateProfile validates, then applies: on any failure both the target
// record and the record owning a conflicting email are left unchanged.
func (s *UserService) UpdateProfile(userID int, cmd *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error) {
	user := s.userRepo.FindByID(userID)
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)
	bio := strings.TrimSpace(cmd.Bio)

	fields := map[string]string{}
	if msg := domain.ValidateName(name); msg != "" {
		fields["name"] = msg
	}
	if msg := domain.ValidateEmail(email); msg != "" {
		fields["email"] = msg
	}
	if len(fields) > 0 {
		return nil, domain.NewFieldValidationError(fields)
	}

	if existing := s.userRepo.FindByEmail(email); existing != nil && existing.ID != userID {
		return nil, domain.NewConflictError("Email already exists")
	}

	user.UpdateProfile(name, email, bio)
	s.userRepo.Update(user)

	s.logger.Info("profile updated", zap.Int("user_id", user.ID))

	return &command.UpdateProfileCommandResult{
		User: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) FindUserByID(id int) (*query.UserQueryResult, error) {
	user := s.userRepo.FindByID(id)
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}
	return &query.UserQueryResult{User: mapper.NewUserResultFromEntity(user)}, nil
}
