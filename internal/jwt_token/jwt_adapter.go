package jwttoken

import (
	authmw "gatecheck/pkg/platform/middleware/auth"
)

func toMiddlewareClaims(claims *Claims) *authmw.OperatorClaims {
	return &authmw.OperatorClaims{
		OperatorID: claims.OperatorID,
		Role:       claims.Role,
	}
}

// JWTServiceAdapter narrows JWTService to the middleware's validator
// interface.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*authmw.OperatorClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return toMiddlewareClaims(claims), nil
}
