package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"fotopanel/internal/config"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/models/response_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	domain      string
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenManager,
	cfg *config.Config,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		domain:      cfg.LoginEmailDomain,
		log:         log,
	}
}

// loginEmail maps a couple's username onto its synthetic login address.
func (a *AccountService) loginEmail(login string) string {
	if strings.Contains(login, "@") {
		return strings.ToLower(strings.TrimSpace(login))
	}
	return utils.LoginEmail(login, a.domain)
}

// Login checks the password and issues a bearer token. Unknown logins and
// wrong passwords produce the same error.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, a.loginEmail(request.Login))
	if err != nil {
		return nil, dbErr(err)
	}
	if account == nil || account.PasswordHash == "" {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, string(account.Role), account.CustomerID)
	if err != nil {
		return nil, err
	}

	a.log.Debug("login",
		zap.String("user_id", account.ID.String()),
		zap.String("role", string(account.Role)),
		zap.Duration("took", time.Since(startTime)))

	return &response_models.LoginResponse{
		Token:      token,
		UserID:     account.ID,
		Role:       string(account.Role),
		CustomerID: account.CustomerID,
	}, nil
}
