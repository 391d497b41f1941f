package dto

import (
	"hotel/infras/jwt"
	accountDto "hotel/internal/domains/account/model/dto"
	"hotel/permissions"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l *LoginRequest) ToAccountLogin() accountDto.LoginRequest {
	return accountDto.LoginRequest{
		LoginName: l.Username,
		Password:  l.Password,
	}
}

type User struct {
	AccountID  string `json:"accountId"`
	LoginName  string `json:"loginName"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId"`
}

type LoginResponse struct {
	Token        string                      `json:"token"`
	RefreshToken string                      `json:"refreshToken"`
	ExpiresIn    int64                       `json:"expiresIn"`
	User         User                        `json:"user"`
	Permissions  permissions.RolePermissions `json:"permissions"`
}

func (l *LoginResponse) FromAccount(account accountDto.AccountResponse, tokenPair *jwt.TokenPair, perms permissions.RolePermissions) {
	l.Token = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
	l.User = User{
		AccountID:  account.ID,
		LoginName:  account.LoginName,
		Role:       account.Role,
		EmployeeID: account.EmployeeID,
	}
	l.Permissions = perms
}

// Subject is what the issued tokens assert about the account.
func Subject(account accountDto.AccountResponse) jwt.Subject {
	return jwt.Subject{
		AccountID:  account.ID,
		Login:      account.LoginName,
		Role:       account.Role,
		EmployeeID: account.EmployeeID,
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type RefreshTokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.Token = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}
