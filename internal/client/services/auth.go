// Package services contains application services for the EventHub client:
// authentication, the event catalog and publication flow, and registration
// payments. Each service wraps gateway actions into typed operations and is
// the only layer that touches the wire shapes.
package services

import (
	"context"
	"fmt"

	"github.com/avryabov/eventhub-cli/internal/client/gateway"
	"github.com/avryabov/eventhub-cli/internal/client/models"
	"github.com/avryabov/eventhub-cli/internal/client/repositories/session"
	"github.com/avryabov/eventhub-cli/internal/logging"
)

// AuthService drives the login, registration (password and
// phone-verification variants), and password-reset flows.
//
// Contract:
//   - Login/Register/VerifySMS persist the session on success and return it.
//   - Register validates the password locally before any network call.
//   - RequestReset returns the reset token when the backend includes one,
//     letting the caller jump straight to the password step.
//   - Logout clears the persisted session and the attached token.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, phone, password string) (*session.Session, error)
	Register(ctx context.Context, form RegisterForm) (*session.Session, error)
	SendSMS(ctx context.Context, phone string) error
	VerifySMS(ctx context.Context, phone, code string) (*session.Session, error)
	RequestReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password, confirm string) error
	Logout(ctx context.Context) error
}

// RegisterForm carries the fields of the registration form. Every wire
// field is required by the auth backend; PasswordConfirm never goes over
// the wire.
type RegisterForm struct {
	Phone             string `json:"phone"`
	Password          string `json:"password"`
	PasswordConfirm   string `json:"-"`
	FullName          string `json:"full_name"`
	PassportSeries    string `json:"passport_series"`
	PassportNumber    string `json:"passport_number"`
	PassportIssuedBy  string `json:"passport_issued_by"`
	PassportIssueDate string `json:"passport_issue_date"`
	DateOfBirth       string `json:"date_of_birth"`
}

type authService struct {
	gw       *gateway.Client
	endpoint string
	sessions *session.Manager
	logger   logging.Logger
}

// NewAuthService constructs an AuthService bound to the auth endpoint.
func NewAuthService(gw *gateway.Client, endpoint string, sessions *session.Manager, logger logging.Logger) AuthService {
	return &authService{gw: gw, endpoint: endpoint, sessions: sessions, logger: logger}
}

// authResponse is the success payload shared by login, register, and
// verify_sms.
type authResponse struct {
	Token string             `json:"token"`
	User  models.UserProfile `json:"user"`
}

// establishSession decodes an auth success payload, validates it, persists
// the session, and attaches the token to subsequent gateway calls.
func (a *authService) establishSession(ctx context.Context, raw []byte) (*session.Session, error) {
	var resp authResponse
	if err := gateway.Decode(raw, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: missing token", gateway.ErrMalformedResponse)
	}
	if err := resp.User.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrMalformedResponse, err)
	}

	s := &session.Session{Token: resp.Token, User: resp.User}
	if err := a.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	a.gw.SetToken(s.Token)
	a.logger.Info(ctx, "session established", "user_id", s.User.ID)
	return s, nil
}

func (a *authService) Login(ctx context.Context, phone, password string) (*session.Session, error) {
	raw, err := a.gw.Post(ctx, a.endpoint, "login", map[string]string{
		"phone":    phone,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	return a.establishSession(ctx, raw)
}

func (a *authService) Register(ctx context.Context, form RegisterForm) (*session.Session, error) {
	// Local validation first: violations never reach the network. The field
	// list mirrors what the auth backend rejects as empty.
	if err := ValidateNewPassword(form.Password, form.PasswordConfirm); err != nil {
		return nil, err
	}
	if err := requireFields(
		"phone", form.Phone,
		"full_name", form.FullName,
		"passport_series", form.PassportSeries,
		"passport_number", form.PassportNumber,
		"passport_issued_by", form.PassportIssuedBy,
		"passport_issue_date", form.PassportIssueDate,
		"date_of_birth", form.DateOfBirth,
	); err != nil {
		return nil, err
	}

	raw, err := a.gw.Post(ctx, a.endpoint, "register", form)
	if err != nil {
		return nil, err
	}
	return a.establishSession(ctx, raw)
}

func (a *authService) SendSMS(ctx context.Context, phone string) error {
	if err := requireFields("phone", phone); err != nil {
		return err
	}
	_, err := a.gw.Post(ctx, a.endpoint, "send_sms", map[string]string{"phone": phone})
	return err
}

func (a *authService) VerifySMS(ctx context.Context, phone, code string) (*session.Session, error) {
	raw, err := a.gw.Post(ctx, a.endpoint, "verify_sms", map[string]string{
		"phone": phone,
		"code":  code,
	})
	if err != nil {
		return nil, err
	}
	return a.establishSession(ctx, raw)
}

func (a *authService) RequestReset(ctx context.Context, email string) (string, error) {
	raw, err := a.gw.Post(ctx, a.endpoint, "request_reset", map[string]string{"email": email})
	if err != nil {
		return "", err
	}

	// The token is only present when the backend short-circuits the
	// email-delivered-link flow.
	var resp struct {
		ResetToken string `json:"reset_token"`
	}
	if err := gateway.Decode(raw, &resp); err != nil {
		return "", err
	}
	return resp.ResetToken, nil
}

func (a *authService) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if err := ValidateNewPassword(password, confirm); err != nil {
		return err
	}
	_, err := a.gw.Post(ctx, a.endpoint, "reset_password", map[string]string{
		"token":    token,
		"password": password,
	})
	return err
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	a.gw.ClearToken()
	a.logger.Info(ctx, "logged out")
	return nil
}
