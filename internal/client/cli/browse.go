package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avryabov/eventhub-cli/internal/client/catalog"
)

func (a *App) printEntries(entries []catalog.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Мероприятия не найдены")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "%-14s %s — %s, %s %s, %s (%d/%d)\n",
			e.Key(), e.Title, e.City, e.Date, e.Time, e.PriceLabel(), e.Attendees, e.MaxParticipants)
	}
}

// list shows the merged catalog through the active filter.
func (a *App) list() {
	a.printEntries(a.catalog.Filter(a.filter))
}

func (a *App) search(query string) {
	a.filter.Query = query
	a.list()
}

func (a *App) city(city string) {
	if city == "" {
		city = catalog.FilterAll
	}
	a.filter.City = city
	if city != catalog.FilterAll {
		fmt.Fprintf(a.out, "%s: %d мероприятий\n", city, a.catalog.CountByCity(city))
	}
	a.list()
}

func (a *App) category(cat string) {
	if cat == "" {
		cat = catalog.FilterAll
	}
	a.filter.Category = cat
	a.list()
}

func (a *App) show(key string) {
	e, ok := a.catalog.Find(key)
	if !ok {
		fmt.Fprintln(a.out, "No such event:", key)
		return
	}
	fmt.Fprintln(a.out, e.Title)
	fmt.Fprintln(a.out, e.Description)
	fmt.Fprintf(a.out, "Категория: %s | Город: %s | %s %s\n", e.Category, e.City, e.Date, e.Time)
	fmt.Fprintf(a.out, "Цена: %s | Участники: %d/%d\n", e.PriceLabel(), e.Attendees, e.MaxParticipants)
	if e.OrganizerName != "" {
		fmt.Fprintln(a.out, "Организатор:", e.OrganizerName)
	}
}

func (a *App) save(ctx context.Context, key string) {
	if _, ok := a.catalog.Find(key); !ok {
		fmt.Fprintln(a.out, "No such event:", key)
		return
	}
	if err := a.saved.Add(ctx, key); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Saved", key)
}

func (a *App) unsave(ctx context.Context, key string) {
	if err := a.saved.Remove(ctx, key); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Removed", key)
}

// listSaved shows the saved set. Keys whose event is no longer in the
// catalog are listed bare rather than dropped.
func (a *App) listSaved(ctx context.Context) {
	keys, err := a.saved.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(keys) == 0 {
		fmt.Fprintln(a.out, "Nothing saved yet")
		return
	}
	for _, key := range keys {
		if e, ok := a.catalog.Find(key); ok {
			fmt.Fprintf(a.out, "%-14s %s — %s, %s\n", key, e.Title, e.City, e.Date)
		} else {
			fmt.Fprintln(a.out, key)
		}
	}
}

func (a *App) whoami() {
	s := a.sessions.Current()
	if s == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s (%s), id %d\n", s.User.FullName, s.User.Phone, s.User.ID)
}

// registrations lists the logged-in user's event registrations.
func (a *App) registrations(ctx context.Context) {
	s := a.sessions.Current()
	if s == nil {
		fmt.Fprintln(a.out, "Login first")
		return
	}
	regs, err := a.payments.UserRegistrations(ctx, s.User.ID)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(regs) == 0 {
		fmt.Fprintln(a.out, "No registrations")
		return
	}
	for _, r := range regs {
		fmt.Fprintf(a.out, "#%d event %d — %s, %d ₽\n", r.ID, r.EventID, r.Status, r.Amount)
	}
}

// paymentStatus queries the server-side state of one registration payment.
func (a *App) paymentStatus(ctx context.Context, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Not a registration id:", arg)
		return
	}
	status, err := a.payments.CheckPayment(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Registration #%d: %s\n", status.RegistrationID, status.Status)
}

// myEvents lists the events the logged-in user organizes, published or not.
func (a *App) myEvents(ctx context.Context) {
	s := a.sessions.Current()
	if s == nil {
		fmt.Fprintln(a.out, "Login first")
		return
	}
	events, err := a.events.ListByOrganizer(ctx, s.User.ID)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(events) == 0 {
		fmt.Fprintln(a.out, "You have no events yet")
		return
	}
	for _, e := range events {
		status := e.Status
		if status == "" {
			status = "published"
		}
		fmt.Fprintf(a.out, "#%d %s — %s, %s [%s]\n", e.ID, e.Title, e.City, e.Date, status)
	}
}
