package profile

import (
	"context"
	"fmt"

	"github.com/alamex/bitacora-backend-go/internal/domain/auditlog"
	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/pkg/session"
)

type ProfileServiceImpl struct {
	profile.ProfileRepository
	session  session.Service
	recorder auditlog.Recorder
}

func NewProfileService(profileRepository profile.ProfileRepository, sessionService session.Service, recorder auditlog.Recorder) profile.ProfileService {
	return &ProfileServiceImpl{
		ProfileRepository: profileRepository,
		session:           sessionService,
		recorder:          recorder,
	}
}

// Create implements profile.ProfileService.
func (p *ProfileServiceImpl) Create(ctx context.Context, req profile.CreateProfileRequest) (profile.ProfileResponse, error) {
	sess, err := p.session.FromContext(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	if err := req.Validate(); err != nil {
		p.recorder.Record(ctx, sess.Email, auditlog.ActionProfileError, err.Error())
		return profile.ProfileResponse{}, err
	}

	existing, err := p.ProfileRepository.GetByEmail(ctx, sess.Email)
	if err != nil {
		return profile.ProfileResponse{}, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return profile.ProfileResponse{}, profile.ErrProfileExists
	}

	created, err := p.ProfileRepository.Create(ctx, profile.Profile{
		Email:          sess.Email,
		FullName:       req.FullName,
		Department:     req.Department,
		SupervisorName: req.SupervisorName,
		EntryTime:      req.EntryTime,
		ExitTime:       req.ExitTime,
	})
	if err != nil {
		p.recorder.Record(ctx, sess.Email, auditlog.ActionProfileError, err.Error())
		return profile.ProfileResponse{}, err
	}

	p.recorder.Record(ctx, sess.Email, auditlog.ActionCreatedProfile, created.FullName)

	return profile.ToResponse(created), nil
}

// GetMine implements profile.ProfileService.
func (p *ProfileServiceImpl) GetMine(ctx context.Context) (profile.ProfileResponse, error) {
	sess, err := p.session.FromContext(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	prof, err := p.ProfileRepository.GetByEmail(ctx, sess.Email)
	if err != nil {
		return profile.ProfileResponse{}, err
	}
	if prof == nil {
		return profile.ProfileResponse{}, profile.ErrProfileNotFound
	}

	return profile.ToResponse(*prof), nil
}
