package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/alamex/bitacora-backend-go/internal/domain/auditlog"
	"github.com/alamex/bitacora-backend-go/internal/domain/auth"
	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	auth.CredentialRepository
	profile.ProfileRepository
	session  session.Service
	recorder auditlog.Recorder
}

func NewAuthService(credentialRepository auth.CredentialRepository, profileRepository profile.ProfileRepository, sessionService session.Service, recorder auditlog.Recorder) auth.AuthService {
	return &AuthServiceImpl{
		CredentialRepository: credentialRepository,
		ProfileRepository:    profileRepository,
		session:              sessionService,
		recorder:             recorder,
	}
}

// passwordMatches accepts both bcrypt-hashed rows and the legacy plaintext
// rows the credential table was seeded with. Plaintext rows compare in
// constant time.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	cred, err := a.CredentialRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if !passwordMatches(cred.Password, req.Password) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	// The login stamp seeds the editor's entry-time auto-fill for today.
	// Only the first login of a calendar day mints it; later logins on the
	// same date carry the stored stamp so the auto-filled entry time does
	// not drift.
	now := time.Now()
	loginDate := now.Format("02/01/2006")
	loginTime, err := a.CredentialRepository.StampLogin(ctx, cred.Email, loginDate, now.Format("15:04"))
	if err != nil {
		return auth.LoginResponse{}, err
	}
	sess := session.Session{
		Email:     cred.Email,
		LoginTime: loginTime,
		LoginDate: loginDate,
	}

	token, expiresAt, err := a.session.GenerateToken(sess)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	prof, err := a.ProfileRepository.GetByEmail(ctx, cred.Email)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to check profile: %w", err)
	}

	a.recorder.Record(ctx, cred.Email, auditlog.ActionLoggedIn, "")

	return auth.LoginResponse{
		AccessToken:  token,
		ExpiresAt:    expiresAt,
		Email:        cred.Email,
		NeedsProfile: prof == nil,
	}, nil
}
