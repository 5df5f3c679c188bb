// file: service/auth_service.go

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-bank-ledger/config"
	"go-bank-ledger/logger"
	"go-bank-ledger/repository"
)

var (
	ErrInvalidPinEntered = errors.New("invalid pin for this account")
	ErrInvalidToken      = errors.New("session token is invalid or expired")
)

// SessionClaims carries the authenticated account number inside a session
// token.
type SessionClaims struct {
	AccountNumber int `json:"account_number"`
	jwt.RegisteredClaims
}

// AuthService verifies PINs and issues short-lived session tokens so a
// front-end does not have to hold the PIN between operations.
type AuthService struct {
	ledger *repository.Ledger
}

func NewAuthService(ledger *repository.Ledger) *AuthService {
	return &AuthService{ledger: ledger}
}

func getJwtKey() []byte {
	return []byte(config.AppConfig.JWT.SecretKey)
}

func sessionDuration() time.Duration {
	return time.Duration(config.AppConfig.JWT.SessionMinutes) * time.Minute
}

// Login verifies the PIN for the account and returns a signed session token
// on success.
func (s *AuthService) Login(accountNumber int, pin string) (string, error) {
	account, err := s.ledger.FindByNumber(accountNumber)
	if err != nil {
		return "", err
	}

	ok, err := account.VerifyPIN(pin)
	if err != nil {
		return "", err
	}
	if !ok {
		logger.Log.WithField("account_number", accountNumber).Warn("PIN verification failed")
		return "", ErrInvalidPinEntered
	}

	expirationTime := time.Now().Add(sessionDuration())
	claims := &SessionClaims{
		AccountNumber: accountNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(getJwtKey())
	if err != nil {
		logger.Log.WithError(err).WithField("account_number", accountNumber).Error("Failed to sign session token")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// Authorize checks that tokenString is a valid session token for the given
// account number.
func (s *AuthService) Authorize(tokenString string, accountNumber int) error {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return getJwtKey(), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	if claims.AccountNumber != accountNumber {
		return ErrInvalidToken
	}
	return nil
}
