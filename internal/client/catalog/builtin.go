package catalog

import "github.com/avryabov/eventhub-cli/internal/client/models"

// Categories the catalog filter recognizes.
var Categories = []models.EventCategory{
	models.CategoryConcert,
	models.CategoryMasterclass,
	models.CategorySport,
	models.CategoryParty,
	models.CategoryLecture,
}

// builtinEvents is the fixed, compiled-in event set shown alongside events
// fetched from the backend.
func builtinEvents() []Entry {
	events := []models.Event{
		{
			ID:               1,
			Title:            `Рок-концерт "Звёздная ночь"`,
			Description:      "Грандиозное выступление рок-групп",
			Category:         models.CategoryConcert,
			City:             "Москва",
			Date:             "2025-01-15",
			Time:             "20:00",
			ParticipantPrice: 1500,
			Attendees:        234,
			Latitude:         55.7558,
			Longitude:        37.6173,
		},
		{
			ID:               2,
			Title:            "Мастер-класс по керамике",
			Description:      "Создайте уникальную керамику своими руками",
			Category:         models.CategoryMasterclass,
			City:             "Санкт-Петербург",
			Date:             "2025-01-20",
			Time:             "14:00",
			ParticipantPrice: 2000,
			Attendees:        15,
			Latitude:         59.9343,
			Longitude:        30.3351,
		},
		{
			ID:               3,
			Title:            "Утренняя пробежка в парке",
			Description:      "Совместная пробежка для всех уровней подготовки",
			Category:         models.CategorySport,
			City:             "Москва",
			Date:             "2025-01-10",
			Time:             "08:00",
			ParticipantPrice: 0,
			Attendees:        48,
			Latitude:         55.7522,
			Longitude:        37.6156,
		},
		{
			ID:               4,
			Title:            "Танцевальная вечеринка 90-х",
			Description:      "Вечеринка в стиле лихих 90-х",
			Category:         models.CategoryParty,
			City:             "Казань",
			Date:             "2025-01-18",
			Time:             "21:00",
			ParticipantPrice: 800,
			Attendees:        156,
			Latitude:         55.7887,
			Longitude:        49.1221,
		},
		{
			ID:               5,
			Title:            "Йога на рассвете",
			Description:      "Встречаем рассвет с практикой йоги",
			Category:         models.CategorySport,
			City:             "Санкт-Петербург",
			Date:             "2025-01-12",
			Time:             "06:30",
			ParticipantPrice: 500,
			Attendees:        22,
			Latitude:         59.9386,
			Longitude:        30.3141,
		},
		{
			ID:               6,
			Title:            "Джазовый вечер",
			Description:      "Импровизация и классика джаза",
			Category:         models.CategoryConcert,
			City:             "Екатеринбург",
			Date:             "2025-01-25",
			Time:             "19:00",
			ParticipantPrice: 1200,
			Attendees:        89,
			Latitude:         56.8389,
			Longitude:        60.6057,
		},
	}

	entries := make([]Entry, 0, len(events))
	for _, e := range events {
		entries = append(entries, Entry{Event: e, Source: SourceBuiltin})
	}
	return entries
}
