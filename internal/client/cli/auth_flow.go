package cli

import (
	"context"
	"fmt"

	"github.com/avryabov/eventhub-cli/internal/client/services"
	"github.com/avryabov/eventhub-cli/internal/client/wizard"
	"github.com/avryabov/eventhub-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Auth wizard steps.
const (
	stepCredentials wizard.Step = "credentials"
	stepForm        wizard.Step = "form"
	stepPhone       wizard.Step = "phone"
	stepCode        wizard.Step = "code"
	stepEmail       wizard.Step = "email"
	stepNewPassword wizard.Step = "new_password"
	stepDone        wizard.Step = "done"
)

// finishWizard shows the success message, keeps it on screen for the
// configured delay, and closes the wizard.
func (a *App) finishWizard(ctx context.Context, w *wizard.Wizard, msg string) {
	fmt.Fprintln(a.out, msg)
	sleepCtx(ctx, a.config.SuccessCloseDelay)
	w.Close()
}

// Login prompts for phone and password and authenticates. Entering "back"
// at the phone prompt abandons the flow. A failed attempt shows the server
// message inline and stays on the credentials step.
func (a *App) Login(ctx context.Context) error {
	w := wizard.New(stepCredentials)
	defer w.Close()

	for w.Step() == stepCredentials {
		phone, err := getSimpleText(a.reader, "Enter phone (or 'back')", a.out)
		if err != nil {
			return err
		}
		if phone == "back" {
			return nil
		}

		password, err := getPassword("Enter password", a.out)
		if err != nil {
			return err
		}

		err = w.Advance(ctx, stepDone, func(ctx context.Context) error {
			_, err := a.auth.Login(ctx, phone, string(password))
			return err
		})
		common.WipeByteArray(password)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", w.Err())
			continue
		}
	}

	a.syncRegistrations(ctx)
	a.finishWizard(ctx, w, "Успешный вход!")
	return nil
}

// Register walks the password-based registration form. All fields are
// required; the backend rejects any empty one.
func (a *App) Register(ctx context.Context) error {
	w := wizard.New(stepForm)
	defer w.Close()

	for w.Step() == stepForm {
		form := services.RegisterForm{}
		var err error

		if form.FullName, err = getSimpleText(a.reader, "Full name (or 'back')", a.out); err != nil {
			return err
		}
		if form.FullName == "back" {
			return nil
		}
		if form.Phone, err = getSimpleText(a.reader, "Phone", a.out); err != nil {
			return err
		}
		if form.PassportSeries, err = getSimpleText(a.reader, "Passport series", a.out); err != nil {
			return err
		}
		if form.PassportNumber, err = getSimpleText(a.reader, "Passport number", a.out); err != nil {
			return err
		}
		if form.PassportIssuedBy, err = getSimpleText(a.reader, "Passport issued by", a.out); err != nil {
			return err
		}
		if form.PassportIssueDate, err = getSimpleText(a.reader, "Passport issue date YYYY-MM-DD", a.out); err != nil {
			return err
		}
		if form.DateOfBirth, err = getSimpleText(a.reader, "Date of birth YYYY-MM-DD", a.out); err != nil {
			return err
		}

		password, err := getPassword("Enter password", a.out)
		if err != nil {
			return err
		}
		confirm, err := getPassword("Confirm password", a.out)
		if err != nil {
			return err
		}
		form.Password, form.PasswordConfirm = string(password), string(confirm)
		common.WipeByteArray(password)
		common.WipeByteArray(confirm)

		err = w.Advance(ctx, stepDone, func(ctx context.Context) error {
			_, err := a.auth.Register(ctx, form)
			return err
		})
		if err != nil {
			fmt.Fprintln(a.out, "Error:", w.Err())
			continue
		}
	}

	a.finishWizard(ctx, w, "Регистрация завершена!")
	return nil
}

// RegisterByPhone runs the SMS-verification variant: request a code, then
// verify it. The resend control is gated by a cooldown countdown bound to
// the wizard's lifetime; "change" returns to the phone step, "resend"
// re-requests a code for the same number.
func (a *App) RegisterByPhone(ctx context.Context) error {
	w := wizard.New(stepPhone)
	defer w.Close()

	countdown := wizard.NewCountdown(int(a.config.ResendCooldown.Seconds()))
	defer countdown.Stop()

	var phone string

	for {
		switch w.Step() {
		case stepPhone:
			p, err := getSimpleText(a.reader, "Enter phone (or 'back')", a.out)
			if err != nil {
				return err
			}
			if p == "back" {
				return nil
			}
			phone = p

			err = w.Advance(ctx, stepCode, func(ctx context.Context) error {
				return a.auth.SendSMS(ctx, phone)
			})
			if err != nil {
				fmt.Fprintln(a.out, "Error:", w.Err())
				continue
			}
			countdown.Start(w.Context())
			fmt.Fprintln(a.out, "Код отправлен на номер", phone)

		case stepCode:
			code, err := getSimpleText(a.reader, "Enter SMS code (or 'resend', 'change')", a.out)
			if err != nil {
				return err
			}

			switch code {
			case "resend":
				if !countdown.CanResend() {
					fmt.Fprintf(a.out, "Повторная отправка через %d сек.\n", countdown.Remaining())
					continue
				}
				err = w.Advance(ctx, stepCode, func(ctx context.Context) error {
					return a.auth.SendSMS(ctx, phone)
				})
				if err != nil {
					fmt.Fprintln(a.out, "Error:", w.Err())
					continue
				}
				countdown.Start(w.Context())
				fmt.Fprintln(a.out, "Код отправлен повторно")

			case "change":
				// Back to the initial step with the inline error cleared;
				// the code and cooldown belong to the abandoned number.
				countdown.Stop()
				w.Reset()

			default:
				err = w.Advance(ctx, stepDone, func(ctx context.Context) error {
					_, err := a.auth.VerifySMS(ctx, phone, code)
					return err
				})
				if err != nil {
					fmt.Fprintln(a.out, "Error:", w.Err())
				}
			}

		case stepDone:
			a.finishWizard(ctx, w, "Номер подтверждён, добро пожаловать!")
			return nil
		}
	}
}

// ResetPassword runs the two-step reset: request a token by email, then set
// a new password. When the backend does not return the token directly the
// user pastes the one delivered by email.
func (a *App) ResetPassword(ctx context.Context) error {
	w := wizard.New(stepEmail)
	defer w.Close()

	var token string

	for {
		switch w.Step() {
		case stepEmail:
			email, err := getSimpleText(a.reader, "Enter email (or 'back')", a.out)
			if err != nil {
				return err
			}
			if email == "back" {
				return nil
			}

			err = w.Advance(ctx, stepNewPassword, func(ctx context.Context) error {
				token, err = a.auth.RequestReset(ctx, email)
				return err
			})
			if err != nil {
				fmt.Fprintln(a.out, "Error:", w.Err())
			}

		case stepNewPassword:
			if token == "" {
				t, err := getSimpleText(a.reader, "Enter the reset token from the email", a.out)
				if err != nil {
					return err
				}
				token = t
			}

			password, err := getPassword("New password", a.out)
			if err != nil {
				return err
			}
			confirm, err := getPassword("Confirm password", a.out)
			if err != nil {
				return err
			}

			err = w.Advance(ctx, stepDone, func(ctx context.Context) error {
				return a.auth.ResetPassword(ctx, token, string(password), string(confirm))
			})
			common.WipeByteArray(password)
			common.WipeByteArray(confirm)
			if err != nil {
				fmt.Fprintln(a.out, "Error:", w.Err())
			}

		case stepDone:
			a.finishWizard(ctx, w, "Пароль изменён, войдите с новым паролем")
			return nil
		}
	}
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
