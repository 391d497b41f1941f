package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	accountDto "hotel/internal/domains/account/model/dto"
	accountService "hotel/internal/domains/account/service"
	"hotel/internal/domains/auth/model/dto"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Bootstrap(ctx context.Context) error
}

type serviceImpl struct {
	accounts    accountService.Account
	jwtService  jwt.JWT
	permissions *permissions.PermissionData
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	accounts accountService.Account,
	jwt jwt.JWT,
	permissions *permissions.PermissionData,
	cfg *config.Config,
	otel otel.Otel,
) Auth {
	return &serviceImpl{
		accounts:    accounts,
		jwtService:  jwt,
		permissions: permissions,
		cfg:         cfg,
		otel:        otel,
	}
}

// Login authenticates through the account path and issues a token pair with the role's permission bundle.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	account, err := s.accounts.Login(ctx, req.ToAccountLogin())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(dto.Subject(account))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromAccount(account, tokenPair, s.permissions.ForRole(account.Role))

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Bootstrap seeds the administrator account. Running it again leaves an existing account untouched.
func (s *serviceImpl) Bootstrap(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bootstrap")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin := s.cfg.App.Admin
	if admin.Username == "" || admin.Password == "" {
		log.Warn().Msg("administrator credentials not configured, skipping seed")

		return nil
	}

	created, err := s.accounts.EnsureAccount(ctx, accountDto.RegisterRequest{
		LoginName: admin.Username,
		Password:  admin.Password,
		Role:      admin.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to seed administrator: %w", err)
	}

	log.Info().Str("login", admin.Username).Bool("created", created).Msg("administrator account ready")

	return nil
}
