// Package session issues and reads the signed session token that replaces
// the browser-local flags of the old client: the logged-in user's email plus
// the once-per-calendar-day login stamp used to auto-fill entry times.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Session is the explicit session object carried by every authenticated
// request. LoginTime/LoginDate are stamped at login and never refreshed
// within the same calendar day.
type Session struct {
	Email     string
	LoginTime string // "HH:MM"
	LoginDate string // "dd/mm/yyyy"
}

type Service interface {
	GenerateToken(s Session) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	FromContext(ctx context.Context) (Session, error)
}

type sessionService struct {
	expiration string
	tokenAuth  *jwtauth.JWTAuth
}

func NewService(secretKey string, expiration string) Service {
	return &sessionService{
		expiration: expiration,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (s *sessionService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *sessionService) GenerateToken(sess Session) (string, int64, error) {
	expDuration, err := time.ParseDuration(s.expiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"email":      sess.Email,
		"login_time": sess.LoginTime,
		"login_date": sess.LoginDate,
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := s.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiresAt, nil
}

// FromContext extracts the session from the verified token claims.
func (s *sessionService) FromContext(ctx context.Context) (Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return Session{}, fmt.Errorf("email claim is missing or invalid")
	}

	loginTime, _ := claims["login_time"].(string)
	loginDate, _ := claims["login_date"].(string)

	return Session{Email: email, LoginTime: loginTime, LoginDate: loginDate}, nil
}
