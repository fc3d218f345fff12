package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vladjedd-tech/HarpiasTesouraria/models"
	"github.com/vladjedd-tech/HarpiasTesouraria/pkg/store"
)

const (
	// DefaultPassword is assigned to new members and on treasurer resets.
	DefaultPassword   = "mudar123"
	MinPasswordLength = 6
)

var ErrInvalidCredentials = errors.New("invalid credentials or inactive account")

// Authenticate checks a nickname (trimmed, any case) and password against
// active members only.
func Authenticate(ctx context.Context, nickname, password string) (models.Member, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" || password == "" {
		return models.Member{}, ErrInvalidCredentials
	}
	m, err := gw.MemberByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Member{}, ErrInvalidCredentials
		}
		return models.Member{}, err
	}
	if !m.IsActive() {
		return models.Member{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(m.PasswordHash, []byte(password)); err != nil {
		return models.Member{}, ErrInvalidCredentials
	}
	return m, nil
}

func hashPassword(password string) ([]byte, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return h, nil
}

// validateNewPassword enforces the minimum length and the confirmation match.
func validateNewPassword(password, confirm string) error {
	if len(password) < MinPasswordLength {
		return badRequest("password too short (min %d)", MinPasswordLength)
	}
	if password != confirm {
		return badRequest("password confirmation does not match")
	}
	return nil
}
