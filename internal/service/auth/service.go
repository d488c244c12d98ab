package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/auth"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
	"github.com/aayaanhealth/hospital-api/pkg/security"
)

type Service struct {
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	hasher      security.PasswordHasher
	tokens      auth.TokenService
	logger      zerolog.Logger
}

func NewService(
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	hasher security.PasswordHasher,
	tokens auth.TokenService,
	logger zerolog.Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

// Signup creates a user account and, for patient and doctor roles, the
// linked profile stub. The two inserts are not transactional: a failure
// after the user insert leaves the account without its profile.
func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (string, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && err != repository.ErrNotFound {
		return "", errors.Internal(err)
	}
	if existing != nil {
		return "", errors.Conflict("email already registered")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", errors.Validation("password does not meet requirements", err)
	}

	user := &model.User{
		Role:         req.Role,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", errors.Internal(err)
	}

	uid := user.ID.String()

	switch req.Role {
	case model.RolePatient:
		patient := &model.Patient{
			UserID:              uid,
			MedicalRecordNumber: MedicalRecordNumber(uid),
		}
		if err := s.patientRepo.Create(ctx, patient); err != nil {
			s.logger.Error().Err(err).Str("user_id", uid).Msg("failed to create patient profile")
			return "", errors.Internal(err)
		}
	case model.RoleDoctor:
		doctor := &model.Doctor{UserID: uid}
		if err := s.doctorRepo.Create(ctx, doctor); err != nil {
			s.logger.Error().Err(err).Str("user_id", uid).Msg("failed to create doctor profile")
			return "", errors.Internal(err)
		}
	}

	return uid, nil
}

// Login verifies credentials and issues an access token. Unknown
// accounts and wrong passwords fail identically so account existence
// never leaks.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.InvalidCredentials()
		}
		return nil, errors.Internal(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, errors.InvalidCredentials()
	}

	token, err := s.tokens.Generate(user.ID.String(), user.Role)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// ResolveToken verifies a bearer token and resolves its subject to a
// live user record. Any failure collapses into Unauthenticated.
func (s *Service) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, errors.Unauthenticated(err)
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, errors.Unauthenticated(err)
	}
	return user, nil
}

// MedicalRecordNumber derives a patient-facing identifier from the
// owning user id: MRN- followed by the last six characters, uppercased.
func MedicalRecordNumber(userID string) string {
	suffix := userID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return "MRN-" + strings.ToUpper(suffix)
}
