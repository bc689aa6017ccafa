package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avryabov/eventhub-cli/internal/client/catalog"
	"github.com/avryabov/eventhub-cli/internal/client/config"
	"github.com/avryabov/eventhub-cli/internal/client/models"
	"github.com/avryabov/eventhub-cli/internal/client/repositories/saved"
	"github.com/avryabov/eventhub-cli/internal/client/repositories/session"
	"github.com/avryabov/eventhub-cli/internal/client/services"
	"github.com/avryabov/eventhub-cli/internal/client/store"
	"github.com/avryabov/eventhub-cli/internal/logging"
)

// stubInput replaces the interactive input seams with scripted queues.
// Simple-text and multiline prompts pop from lines, password prompts from
// passwords; exhausted queues answer io.EOF, ending the flow.
func stubInput(t *testing.T, lines []string, passwords []string) {
	t.Helper()
	origST, origGP, origML := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})

	pop := func() (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		l := lines[0]
		lines = lines[1:]
		return l, nil
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return pop() }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return pop() }
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
}

// fakeAuth mimics the real service's contract: successful auth calls
// persist the session through the shared manager.
type fakeAuth struct {
	session  *session.Session
	sessions *session.Manager

	loginPhone, loginPass string
	loginErrs             []error

	regForm services.RegisterForm

	smsPhones []string
	smsErr    error

	verifyPhone, verifyCode string
	verifyErr               error

	resetEmail, resetToken string
	resetErr               error

	resetPwToken, resetPwValue string

	logoutCalled bool
}

func (f *fakeAuth) establish(ctx context.Context) (*session.Session, error) {
	if f.sessions != nil {
		if err := f.sessions.Save(ctx, f.session); err != nil {
			return nil, err
		}
	}
	return f.session, nil
}

func (f *fakeAuth) Login(ctx context.Context, phone, password string) (*session.Session, error) {
	f.loginPhone, f.loginPass = phone, password
	if len(f.loginErrs) > 0 {
		err := f.loginErrs[0]
		f.loginErrs = f.loginErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.establish(ctx)
}

func (f *fakeAuth) Register(ctx context.Context, form services.RegisterForm) (*session.Session, error) {
	f.regForm = form
	f.loginPhone, f.loginPass = form.Phone, form.Password
	return f.establish(ctx)
}

func (f *fakeAuth) SendSMS(_ context.Context, phone string) error {
	f.smsPhones = append(f.smsPhones, phone)
	return f.smsErr
}

func (f *fakeAuth) VerifySMS(ctx context.Context, phone, code string) (*session.Session, error) {
	f.verifyPhone, f.verifyCode = phone, code
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.establish(ctx)
}

func (f *fakeAuth) RequestReset(_ context.Context, email string) (string, error) {
	f.resetEmail = email
	return f.resetToken, f.resetErr
}

func (f *fakeAuth) ResetPassword(_ context.Context, token, password, _ string) error {
	f.resetPwToken, f.resetPwValue = token, password
	return nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return nil
}

type fakeEvents struct {
	listEvents []models.Event
	listErr    error

	gotForm   services.CreateEventForm
	createID  int64
	createErr error

	invoice *services.PublicationInvoice
	payErr  error

	confirmedIDs []int64
	confirmErr   error
}

func (f *fakeEvents) List(context.Context) ([]models.Event, error) {
	return f.listEvents, f.listErr
}

func (f *fakeEvents) ListByOrganizer(context.Context, int64) ([]models.Event, error) {
	return f.listEvents, f.listErr
}

func (f *fakeEvents) Create(_ context.Context, form services.CreateEventForm) (int64, error) {
	f.gotForm = form
	return f.createID, f.createErr
}

func (f *fakeEvents) PayPublication(_ context.Context, _, _ int64) (*services.PublicationInvoice, error) {
	return f.invoice, f.payErr
}

func (f *fakeEvents) ConfirmPublication(_ context.Context, publicationID int64) error {
	f.confirmedIDs = append(f.confirmedIDs, publicationID)
	return f.confirmErr
}

type fakePayments struct {
	intent      *services.PaymentIntent
	createCalls int
	createErr   error

	statuses   []*services.PaymentStatus
	checkCalls int

	regs []models.Registration
}

func (f *fakePayments) CreatePayment(_ context.Context, _, _ int64, _ string, _ int) (*services.PaymentIntent, error) {
	f.createCalls++
	return f.intent, f.createErr
}

func (f *fakePayments) CheckPayment(context.Context, int64) (*services.PaymentStatus, error) {
	f.checkCalls++
	st := f.statuses[0]
	if len(f.statuses) > 1 {
		f.statuses = f.statuses[1:]
	}
	return st, nil
}

func (f *fakePayments) UserRegistrations(context.Context, int64) ([]models.Registration, error) {
	return f.regs, nil
}

// newTestApp wires an App over fakes, a real sqlite store in a temp dir,
// and a zero success delay so flows finish instantly.
func newTestApp(t *testing.T) (*App, *fakeAuth, *fakeEvents, *fakePayments, *bytes.Buffer) {
	t.Helper()

	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SuccessCloseDelay = 0

	auth := &fakeAuth{session: &session.Session{
		Token: "tok",
		User:  models.UserProfile{ID: 7, Phone: "+7 999 123-45-67", FullName: "Иван Петров"},
	}}
	events := &fakeEvents{}
	payments := &fakePayments{}
	out := &bytes.Buffer{}

	sessions := session.NewManager(db)
	auth.sessions = sessions

	a := &App{
		config:   cfg,
		logger:   logging.NewTextLogger(io.Discard, slog.LevelError),
		db:       db,
		sessions: sessions,
		saved:    saved.NewSQLiteRepository(db),
		catalog:  catalog.New(),
		auth:     auth,
		events:   events,
		payments: payments,
		out:      out,
	}
	return a, auth, events, payments, out
}

// loginAs persists a session so a.sessions.Current() reports logged in.
func loginAs(t *testing.T, a *App) *session.Session {
	t.Helper()
	s := &session.Session{
		Token: "tok",
		User:  models.UserProfile{ID: 7, Phone: "+7 999 123-45-67", FullName: "Иван Петров"},
	}
	require.NoError(t, a.sessions.Save(context.Background(), s))
	return s
}
