package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	a, auth, _, _, out := newTestApp(t)
	stubInput(t, []string{"+7 999 123-45-67"}, []string{"secret1"})

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "+7 999 123-45-67", auth.loginPhone)
	assert.Equal(t, "secret1", auth.loginPass)
	assert.Contains(t, out.String(), "Успешный вход")
}

func TestLogin_Back(t *testing.T) {
	a, auth, _, _, _ := newTestApp(t)
	stubInput(t, []string{"back"}, nil)

	require.NoError(t, a.Login(context.Background()))
	assert.Empty(t, auth.loginPhone)
}

func TestLogin_RetryAfterFailure(t *testing.T) {
	a, auth, _, _, out := newTestApp(t)
	auth.loginErrs = []error{errors.New("Неверный телефон или пароль"), nil}
	stubInput(t, []string{"+7", "+7"}, []string{"wrong", "secret1"})

	require.NoError(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Неверный телефон или пароль")
	assert.Contains(t, out.String(), "Успешный вход")
	assert.Equal(t, "secret1", auth.loginPass)
}

func TestRegister_Success(t *testing.T) {
	a, auth, _, _, out := newTestApp(t)
	stubInput(t,
		[]string{
			"Иван Петров", "+7 912 000-00-00",
			"1234", "567890", "ОВД Центрального района", "2015-03-10",
			"1990-05-01",
		},
		[]string{"secret1", "secret1"},
	)

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "+7 912 000-00-00", auth.regForm.Phone)
	assert.Equal(t, "1234", auth.regForm.PassportSeries)
	assert.Equal(t, "567890", auth.regForm.PassportNumber)
	assert.Equal(t, "ОВД Центрального района", auth.regForm.PassportIssuedBy)
	assert.Equal(t, "2015-03-10", auth.regForm.PassportIssueDate)
	assert.Equal(t, "1990-05-01", auth.regForm.DateOfBirth)
	assert.Contains(t, out.String(), "Регистрация завершена")
}

func TestRegisterByPhone_VerifyFlow(t *testing.T) {
	a, auth, _, _, out := newTestApp(t)
	stubInput(t, []string{"+7 900 111-22-33", "1234"}, nil)

	require.NoError(t, a.RegisterByPhone(context.Background()))
	assert.Equal(t, []string{"+7 900 111-22-33"}, auth.smsPhones)
	assert.Equal(t, "+7 900 111-22-33", auth.verifyPhone)
	assert.Equal(t, "1234", auth.verifyCode)
	assert.Contains(t, out.String(), "добро пожаловать")
}

func TestRegisterByPhone_ResendGatedByCooldown(t *testing.T) {
	a, auth, _, _, out := newTestApp(t)
	// Send, immediately try to resend (still cooling down), then verify.
	stubInput(t, []string{"+7 900 111-22-33", "resend", "1234"}, nil)

	require.NoError(t, a.RegisterByPhone(context.Background()))
	// The cooldown swallowed the resend: exactly one code was sent.
	assert.Len(t, auth.smsPhones, 1)
	assert.Contains(t, out.String(), "Повторная отправка через")
}

func TestRegisterByPhone_ChangeNumber(t *testing.T) {
	a, auth, _, _, _ := newTestApp(t)
	stubInput(t, []string{"+7 900 000-00-01", "change", "+7 900 000-00-02", "1234"}, nil)

	require.NoError(t, a.RegisterByPhone(context.Background()))
	assert.Equal(t, []string{"+7 900 000-00-01", "+7 900 000-00-02"}, auth.smsPhones)
	assert.Equal(t, "+7 900 000-00-02", auth.verifyPhone)
}

func TestResetPassword_TokenFromBackend(t *testing.T) {
	a, auth, _, _, out := newTestApp(t)
	auth.resetToken = "rt-1"
	stubInput(t, []string{"user@example.com"}, []string{"secret1", "secret1"})

	require.NoError(t, a.ResetPassword(context.Background()))
	assert.Equal(t, "user@example.com", auth.resetEmail)
	assert.Equal(t, "rt-1", auth.resetPwToken)
	assert.Equal(t, "secret1", auth.resetPwValue)
	assert.Contains(t, out.String(), "Пароль изменён")
}

func TestResetPassword_TokenPrompted(t *testing.T) {
	a, auth, _, _, _ := newTestApp(t)
	// Backend did not return the token; the user pastes it.
	stubInput(t, []string{"user@example.com", "rt-mail"}, []string{"secret1", "secret1"})

	require.NoError(t, a.ResetPassword(context.Background()))
	assert.Equal(t, "rt-mail", auth.resetPwToken)
}

func TestLogout(t *testing.T) {
	a, auth, _, _, out := newTestApp(t)

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, auth.logoutCalled)
	assert.Contains(t, out.String(), "Logged out")
}
