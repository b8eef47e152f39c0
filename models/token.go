// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with the accessors used by the bearer-auth middleware.
//
// UserID is the platform user identifier carried in the "sub" claim. The
// fee-sponsor server does not manage users itself; it trusts the subject of
// any token signed with the shared key.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// GetUserID returns the "sub" claim. Returns an error if it is missing or empty.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
