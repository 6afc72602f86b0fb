package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	userModel "frontdesk/internal/domains/user/model"
	userRepo "frontdesk/internal/domains/user/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/password"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) error
}

type serviceImpl struct {
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

// Login checks the credentials and nothing else: no session or token is issued.
// A stored plain token that matches is replaced by its bcrypt hash.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Normalize()

	if !req.HasCredentials() {
		return failure.MissingCredentials
	}

	filter := shared.FilterByID(req.Username, userModel.FieldUsername, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return failure.InvalidCredentials
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Msg("failed to verify password")

			return fmt.Errorf("failed to verify password: %w", err)
		}

		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return failure.InvalidCredentials
	}

	s.recordLogin(ctx, user, req.Password)

	return nil
}

// recordLogin stamps last_login and upgrades a plain stored token. A failure here never fails the login.
func (s *serviceImpl) recordLogin(ctx context.Context, user userModel.User, plain string) {
	fields := map[string]any{
		userModel.FieldLastLogin: timezone.Now(),
	}

	if !password.IsHash(user.Password) {
		hashed, err := password.Hash(plain)
		if err != nil {
			log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to hash stored credential")
		} else {
			fields[userModel.FieldPassword] = hashed
		}
	}

	if _, err := s.userRepo.Update(ctx, fields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record login")
	}
}
