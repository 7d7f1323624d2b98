// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateAdminToken creates a signed HMAC-SHA256 JWT for the admin API.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the operator the token was minted for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateAdminToken("go-otp-keeper", "ops", time.Hour, "secret")
func GenerateAdminToken(issuer, operator string, tokenDuration time.Duration, signKey string) (models.AdminToken, error) {
	if issuer == "" || operator == "" || tokenDuration <= 0 || signKey == "" {
		return models.AdminToken{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   operator,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.AdminToken{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.AdminToken{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		Operator:         operator,
	}, nil
}

// ValidateAndParseAdminToken checks the signature, the signing method, the
// issuer and the expiry of tokenString and returns the operator it was
// minted for.
func ValidateAndParseAdminToken(tokenString, tokenSignKey, tokenIssuer string) (models.AdminToken, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.AdminToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.AdminToken{}, errors.New("empty subject error")
	}

	return models.AdminToken{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		Operator:         claims.Subject,
	}, nil
}

// ParseBearerToken returns the token part of an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
