package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

type User struct {
	ID      int
	Name    string
	Balance decimal.Decimal
}

type UserClaims struct {
	jwt.RegisteredClaims
}
