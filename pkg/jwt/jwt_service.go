package jwt

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/internal/utils"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string, role string, name string) string
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserDetailByToken(token string) (userID string, role string, name string, err error)
	}

	// jwtUserClaim carries the acting identity. Name is included so every
	// mutation can be attributed in the audit trail without a user lookup.
	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		Name   string `json:"name"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "HAMA-TOGETHER",
	}
}

func (j *jwtService) GenerateTokenUser(userID string, role string, name string) string {
	claims := jwtUserClaim{
		userID,
		role,
		name,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24 * 7)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserDetailByToken(token string) (string, string, string, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", "", err
		}
		return "", "", "", domain.ErrTokenNotFound
	}

	claims, ok := t_Token.Claims.(*jwtUserClaim)
	if !ok || !t_Token.Valid {
		return "", "", "", domain.ErrTokenNotFound
	}
	return claims.UserID, claims.Role, claims.Name, nil
}
