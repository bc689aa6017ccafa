package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avryabov/eventhub-cli/internal/client/catalog"
	"github.com/avryabov/eventhub-cli/internal/client/services"
	"github.com/avryabov/eventhub-cli/internal/client/wizard"
	"github.com/avryabov/eventhub-cli/internal/common"
)

// Event wizard steps.
const (
	stepPayment wizard.Step = "payment"
)

// Default venue coordinates (Moscow city center), used when the organizer
// skips the location prompts.
const (
	defaultLatitude  = 55.7558
	defaultLongitude = 37.6173
)

func (a *App) promptInt(prompt string, def int) (int, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func (a *App) promptFloat(prompt string, def float64) (float64, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

// CreateEvent walks the organizer through the creation form, the
// publication-fee payment, and the manual confirmation. The event stays
// unpublished until the fee is confirmed.
func (a *App) CreateEvent(ctx context.Context) error {
	s := a.sessions.Current()
	if s == nil {
		fmt.Fprintln(a.out, "Login first")
		return common.ErrNotAuthenticated
	}

	w := wizard.New(stepForm)
	defer w.Close()

	var invoice *services.PublicationInvoice

	for {
		switch w.Step() {
		case stepForm:
			form := services.CreateEventForm{OrganizerID: s.User.ID}
			var err error

			if form.Title, err = getSimpleText(a.reader, "Title (or 'back')", a.out); err != nil {
				return err
			}
			if form.Title == "back" {
				return nil
			}
			if form.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
				return err
			}
			categories := fmt.Sprintf("Category %v", catalog.Categories)
			if form.Category, err = getSimpleText(a.reader, categories, a.out); err != nil {
				return err
			}
			if form.City, err = getSimpleText(a.reader, "City", a.out); err != nil {
				return err
			}
			if form.EventDate, err = getSimpleText(a.reader, "Date YYYY-MM-DD", a.out); err != nil {
				return err
			}
			if form.EventTime, err = getSimpleText(a.reader, "Time HH:MM", a.out); err != nil {
				return err
			}
			if form.ParticipantPrice, err = a.promptInt("Ticket price, ₽ (0 = free)", 0); err != nil {
				fmt.Fprintln(a.out, "Error: not a number")
				continue
			}
			if form.MaxParticipants, err = a.promptInt("Max participants", 50); err != nil {
				fmt.Fprintln(a.out, "Error: not a number")
				continue
			}
			if form.Latitude, err = a.promptFloat(fmt.Sprintf("Latitude (default %v)", defaultLatitude), defaultLatitude); err != nil {
				fmt.Fprintln(a.out, "Error: not a number")
				continue
			}
			if form.Longitude, err = a.promptFloat(fmt.Sprintf("Longitude (default %v)", defaultLongitude), defaultLongitude); err != nil {
				fmt.Fprintln(a.out, "Error: not a number")
				continue
			}

			// One submission covers both calls: create the draft, then
			// open the publication invoice.
			err = w.Advance(ctx, stepPayment, func(ctx context.Context) error {
				eventID, err := a.events.Create(ctx, form)
				if err != nil {
					return err
				}
				invoice, err = a.events.PayPublication(ctx, eventID, s.User.ID)
				return err
			})
			if err != nil {
				fmt.Fprintln(a.out, "Error:", w.Err())
			}

		case stepPayment:
			fmt.Fprintf(a.out, "Стоимость публикации: %d ₽\n", invoice.Amount)
			fmt.Fprintln(a.out, "Оплатите по ссылке:", invoice.PaymentURL)

			answer, err := getSimpleText(a.reader, "Type 'paid' when done (or 'cancel')", a.out)
			if err != nil {
				return err
			}
			if answer == "cancel" {
				fmt.Fprintln(a.out, "Событие сохранено как черновик")
				return nil
			}
			if answer != "paid" {
				continue
			}

			err = w.Advance(ctx, stepDone, func(ctx context.Context) error {
				return a.events.ConfirmPublication(ctx, invoice.PublicationID)
			})
			if err != nil {
				fmt.Fprintln(a.out, "Error:", w.Err())
			}

		case stepDone:
			if err := a.refreshCatalog(ctx); err != nil {
				a.logger.Warn(ctx, "catalog refresh after publication failed", "error", err)
			}
			a.finishWizard(ctx, w, "Событие опубликовано!")
			return nil
		}
	}
}
