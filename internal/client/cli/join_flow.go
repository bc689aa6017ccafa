package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avryabov/eventhub-cli/internal/client/catalog"
	"github.com/avryabov/eventhub-cli/internal/client/services"
	"github.com/avryabov/eventhub-cli/internal/client/wizard"
	"github.com/avryabov/eventhub-cli/internal/common"
)

// JoinEvent registers the logged-in user for an event. Paid events go
// through the payment link; free ones are registered immediately. When
// payment confirmation is enabled in the config, "paid" is verified
// server-side before the success screen.
func (a *App) JoinEvent(ctx context.Context, key string) error {
	s := a.sessions.Current()
	if s == nil {
		fmt.Fprintln(a.out, "Login first")
		return common.ErrNotAuthenticated
	}

	e, ok := a.catalog.Find(key)
	if !ok {
		fmt.Fprintln(a.out, "No such event:", key)
		return common.ErrNotFound
	}

	fmt.Fprintf(a.out, "%s — %s, %s %s, %s\n", e.Title, e.City, e.Date, e.Time, e.PriceLabel())
	answer, err := getSimpleText(a.reader, "Register for this event? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" && answer != "y" {
		return nil
	}

	w := wizard.New(stepPayment)
	defer w.Close()

	var intent *services.PaymentIntent

	if err := w.Advance(ctx, stepPayment, func(ctx context.Context) error {
		intent, err = a.payments.CreatePayment(ctx, s.User.ID, e.ID, e.Title, e.ParticipantPrice)
		return err
	}); err != nil {
		fmt.Fprintln(a.out, "Error:", w.Err())
		return err
	}

	msg := "Вы зарегистрированы!"

	// Free events skip the payment step entirely.
	if intent.Amount == 0 || intent.PaymentURL == "" {
		w.SetStep(stepDone)
	}

	for {
		switch w.Step() {
		case stepPayment:
			fmt.Fprintf(a.out, "К оплате: %d ₽\n", intent.Amount)
			fmt.Fprintln(a.out, "Оплатите по ссылке:", intent.PaymentURL)

			answer, err := getSimpleText(a.reader, "Type 'paid' when done (or 'cancel')", a.out)
			if err != nil {
				return err
			}
			if answer == "cancel" {
				fmt.Fprintln(a.out, "Регистрация не завершена, оплатить можно позже")
				return nil
			}
			if answer != "paid" {
				continue
			}

			err = w.Advance(ctx, stepDone, func(ctx context.Context) error {
				if !a.config.ConfirmRegistrationPayment {
					// Trust-based close-out: no server round trip, the
					// backend settles the registration on its own.
					return nil
				}
				status, err := a.payments.CheckPayment(ctx, intent.RegistrationID)
				if err != nil {
					return err
				}
				if !status.Paid {
					return errors.New("платёж ещё не подтверждён, попробуйте позже")
				}
				return nil
			})
			if err != nil {
				fmt.Fprintln(a.out, "Error:", w.Err())
				continue
			}
			msg = "Оплата прошла, вы зарегистрированы!"

		case stepDone:
			a.rememberRegistration(ctx, key)
			a.finishWizard(ctx, w, msg)
			return nil
		}
	}
}

// rememberRegistration adds the event to the locally saved set on wizard
// success. Optimistic: a store failure is logged, not surfaced, since the
// registration itself already went through.
func (a *App) rememberRegistration(ctx context.Context, key string) {
	if err := a.saved.Add(ctx, key); err != nil {
		a.logger.Warn(ctx, "saving registered event failed", "key", key, "error", err)
	}
}

// syncRegistrations reconciles the saved set with the server's view of the
// user's registrations. Server-known registrations are merged in; locally
// saved events are kept.
func (a *App) syncRegistrations(ctx context.Context) {
	s := a.sessions.Current()
	if s == nil {
		return
	}
	regs, err := a.payments.UserRegistrations(ctx, s.User.ID)
	if err != nil {
		a.logger.Warn(ctx, "registration sync failed", "error", err)
		return
	}
	for _, r := range regs {
		key := fmt.Sprintf("%s:%d", catalog.SourceRemote, r.EventID)
		if err := a.saved.Add(ctx, key); err != nil {
			a.logger.Warn(ctx, "registration sync failed", "key", key, "error", err)
			return
		}
	}
}
