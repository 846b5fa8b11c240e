package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/app/repositories"
	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
	"github.com/yigit/admissions-crm/internal/pkg/auth"
	"github.com/yigit/admissions-crm/internal/pkg/latency"
	"github.com/yigit/admissions-crm/internal/pkg/validation"
)

// Session store keys
const (
	SessionUserKey    = "crm_user"
	SessionTokenKey   = "crm_token"
	SessionRefreshKey = "crm_refresh_token"
)

// Session is the signed in staff user and their tokens
type Session struct {
	User             models.StaffUser `json:"user"`
	Token            string           `json:"token"`
	RefreshToken     string           `json:"refreshToken"`
	TokenType        string           `json:"tokenType"`
	ExpiresIn        int              `json:"expiresIn"`
	RefreshExpiresIn int              `json:"refreshExpiresIn"`
}

// AuthService handles staff sign in and the persisted session. The CRM is
// single tenant: one session is stored at a time and a new login replaces it.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.StaffUser, error)
	RefreshToken(ctx context.Context, refreshToken string) (*Session, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.StaffUser, error)
	ValidateSession(ctx context.Context, token string) (*models.StaffUser, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	staff      repositories.StaffRepository
	session    repositories.KeyValueStore
	jwtService *auth.JWTService
	latency    *latency.Simulator
	now        Clock
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	sim *latency.Simulator,
	now Clock,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		staff:      repos.Staff,
		session:    repos.Session,
		jwtService: jwtService,
		latency:    sim,
		now:        clockOrNow(now),
		logger:     logger,
	}
}

// Login checks the credentials and persists a new session
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := validation.First(
		validation.Email("email", email),
		validation.Password(password),
	); err != nil {
		return nil, err
	}

	session, err := latency.Run(ctx, s.latency, func() (*Session, error) {
		user, err := s.staff.GetByEmail(ctx, email)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrResourceNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, storeError("find staff user", err)
		}
		if !auth.CheckPassword(user.Password, password) {
			return nil, apperrors.ErrInvalidCredentials
		}

		loginAt := s.now()
		user, err = s.staff.Update(ctx, user.ID, func(u *models.StaffUser) error {
			u.LastLoginAt = &loginAt
			return nil
		})
		if err != nil {
			return nil, storeError("record login", err)
		}
		return s.issueSession(ctx, user)
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("Login failed")
		return nil, err
	}

	s.logger.Info().Str("userID", session.User.ID).Msg("Staff user signed in")
	return session, nil
}

// Logout clears the persisted session
func (s *authServiceImpl) Logout(ctx context.Context) error {
	err := latency.Exec(ctx, s.latency, func() error {
		for _, key := range []string{SessionUserKey, SessionTokenKey, SessionRefreshKey} {
			if err := s.session.Delete(ctx, key); err != nil {
				return storeError("clear session", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("actor", actorName(ctx)).Msg("Staff user signed out")
	return nil
}

// CurrentUser returns the user of the persisted session
func (s *authServiceImpl) CurrentUser(ctx context.Context) (*models.StaffUser, error) {
	raw, ok, err := s.session.Get(ctx, SessionUserKey)
	if err != nil {
		return nil, storeError("read session", err)
	}
	if !ok {
		return nil, apperrors.ErrNotAuthenticated
	}

	var user models.StaffUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, apperrors.NewOperationFailedError("decode session", err)
	}
	return &user, nil
}

// RefreshToken swaps the stored refresh token for a new token pair
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, apperrors.NewValidationError("refreshToken", "refreshToken is required")
	}

	return latency.Run(ctx, s.latency, func() (*Session, error) {
		stored, ok, err := s.session.Get(ctx, SessionRefreshKey)
		if err != nil {
			return nil, storeError("read session", err)
		}
		if !ok {
			return nil, apperrors.ErrTokenNotFound
		}
		if stored != refreshToken {
			return nil, apperrors.ErrTokenInvalid
		}

		current, err := s.CurrentUser(ctx)
		if err != nil {
			return nil, err
		}
		user, err := s.staff.GetByID(ctx, current.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: session user no longer exists", apperrors.ErrTokenInvalid)
		}
		return s.issueSession(ctx, user)
	})
}

// UpdateProfile changes the signed in user's name or email
func (s *authServiceImpl) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.StaffUser, error) {
	current, ok := auth.UserFromContext(ctx)
	if !ok {
		var err error
		if current, err = s.CurrentUser(ctx); err != nil {
			return nil, err
		}
	}

	return latency.Run(ctx, s.latency, func() (*models.StaffUser, error) {
		user, err := s.staff.Update(ctx, current.ID, func(u *models.StaffUser) error {
			patch.Apply(u)
			if err := validation.First(
				validation.Name("name", u.Name),
				validation.Email("email", u.Email),
			); err != nil {
				return err
			}
			u.UpdatedAt = s.now()
			return nil
		})
		if err != nil {
			return nil, storeError("update profile", err)
		}
		if err := s.storeUser(ctx, user); err != nil {
			return nil, err
		}

		s.logger.Info().Str("userID", user.ID).Msg("Profile updated")
		return user, nil
	})
}

// ValidateSession accepts a token only if it verifies and is the token of the
// persisted session
func (s *authServiceImpl) ValidateSession(ctx context.Context, token string) (*models.StaffUser, error) {
	claims, err := s.jwtService.ValidateAndExtractClaims(token)
	if err != nil {
		return nil, err
	}

	stored, ok, err := s.session.Get(ctx, SessionTokenKey)
	if err != nil {
		return nil, storeError("read session", err)
	}
	if !ok {
		return nil, apperrors.ErrNotAuthenticated
	}
	if stored != token {
		return nil, fmt.Errorf("%w: session has been replaced", apperrors.ErrTokenInvalid)
	}

	user, err := s.staff.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown user", apperrors.ErrTokenInvalid)
	}
	return user, nil
}

// issueSession creates a token pair for user and persists it
func (s *authServiceImpl) issueSession(ctx context.Context, user *models.StaffUser) (*Session, error) {
	pair, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, apperrors.NewOperationFailedError("issue token", err)
	}

	if err := s.storeUser(ctx, user); err != nil {
		return nil, err
	}
	if err := s.session.Set(ctx, SessionTokenKey, pair.AccessToken); err != nil {
		return nil, storeError("write session", err)
	}
	if err := s.session.Set(ctx, SessionRefreshKey, pair.RefreshToken); err != nil {
		return nil, storeError("write session", err)
	}

	return &Session{
		User:             *user,
		Token:            pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        pair.ExpiresIn,
		RefreshExpiresIn: pair.RefreshExpiresIn,
	}, nil
}

func (s *authServiceImpl) storeUser(ctx context.Context, user *models.StaffUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return apperrors.NewOperationFailedError("encode session", err)
	}
	if err := s.session.Set(ctx, SessionUserKey, string(data)); err != nil {
		return storeError("write session", err)
	}
	return nil
}
