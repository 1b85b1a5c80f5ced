package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
)

// DefaultActionTokenTTL is how long emailed approve/reject links stay valid.
const DefaultActionTokenTTL = 7 * 24 * time.Hour

// ActionTokenConfig configures signed approval links.
type ActionTokenConfig struct {
	Secret    string
	TTL       time.Duration
	Issuer    string
	BaseURL   string
	APIPrefix string
}

// ActionTokenService issues and verifies single-purpose approve/reject tokens.
type ActionTokenService struct {
	config ActionTokenConfig
	now    func() time.Time
}

// ActionTokenOption customises the token service.
type ActionTokenOption func(*ActionTokenService)

// WithActionTokenClock overrides the clock used for issuance and expiry checks.
func WithActionTokenClock(now func() time.Time) ActionTokenOption {
	return func(s *ActionTokenService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewActionTokenService validates the configuration and returns a token service.
func NewActionTokenService(cfg ActionTokenConfig, opts ...ActionTokenOption) (*ActionTokenService, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("approval token secret is not configured")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultActionTokenTTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "csm-aviation-approvals"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.APIPrefix = "/" + strings.Trim(cfg.APIPrefix, "/")
	if cfg.APIPrefix == "/" {
		cfg.APIPrefix = ""
	}
	svc := &ActionTokenService{config: cfg, now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Issue signs a token authorizing one action on one submission.
func (s *ActionTokenService) Issue(kind models.SubmissionKind, id string, action models.Action) (string, time.Time, error) {
	if !kind.Valid() || id == "" {
		return "", time.Time{}, fmt.Errorf("cannot issue token for %s %q", kind, id)
	}
	if action != models.ActionApprove && action != models.ActionReject {
		return "", time.Time{}, fmt.Errorf("unknown action %q", action)
	}
	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.config.TTL)
	claims := &models.ActionClaims{
		SubmissionID: id,
		Kind:         kind,
		Action:       action,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// IssuePair signs both links for a freshly created submission.
func (s *ActionTokenService) IssuePair(kind models.SubmissionKind, id string) (*models.ActionLinks, error) {
	approve, expiresAt, err := s.Issue(kind, id, models.ActionApprove)
	if err != nil {
		return nil, err
	}
	reject, _, err := s.Issue(kind, id, models.ActionReject)
	if err != nil {
		return nil, err
	}
	base := s.config.BaseURL + s.config.APIPrefix + kindRoute(kind)
	rejectPath := "/reject/"
	if kind == models.SubmissionKindVendor {
		rejectPath = "/reject-form/"
	}
	return &models.ActionLinks{
		SubmissionID: id,
		ApproveToken: approve,
		RejectToken:  reject,
		ApproveURL:   base + "/approve/" + approve,
		RejectURL:    base + rejectPath + reject,
		ExpiresAt:    expiresAt,
	}, nil
}

// Verify checks the signature and expiry first, then that the token was minted
// for this endpoint's action and kind.
func (s *ActionTokenService) Verify(tokenString string, kind models.SubmissionKind, expected models.Action) (*models.ActionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.ActionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidOrExpiredToken.Code, appErrors.ErrInvalidOrExpiredToken.Status, appErrors.ErrInvalidOrExpiredToken.Message)
	}

	claims, ok := token.Claims.(*models.ActionClaims)
	if !ok || !token.Valid || claims.SubmissionID == "" {
		return nil, appErrors.Clone(appErrors.ErrInvalidOrExpiredToken, "")
	}
	if claims.Action != expected || claims.Kind != kind {
		return nil, appErrors.Clone(appErrors.ErrActionMismatch, "")
	}
	return claims, nil
}

func kindRoute(kind models.SubmissionKind) string {
	if kind == models.SubmissionKindVendor {
		return "/vendor-form"
	}
	return "/testimonials"
}
