package taskutil

import (
	"sort"

	"github.com/taskpanel/core/internal/domain/entities"
)

// DefaultCategoryIcon is shown when a task resolves to no category.
const DefaultCategoryIcon = "fa-solid fa-layer-group"

// categoryIcons is the fixed catalog of icon keys a category may reference,
// with the labels the icon picker shows.
var categoryIcons = map[string]string{
	"fa-briefcase":           "Teczka",
	"fa-house":               "Dom",
	"fa-notes-medical":       "Notatki Medyczne",
	"fa-palette":             "Paleta z Kolorami",
	"fa-heart":               "Serce",
	"fa-plane":               "Samolot",
	"fa-book":                "Książka",
	"fa-medal":               "Medal",
	"fa-image":               "Obraz",
	"fa-user":                "Osoba",
	"fa-volleyball":          "Piłka do siatkówki",
	"fa-gamepad":             "Gamepad",
	"fa-wand-magic-sparkles": "Różczka",
	"fa-music":               "Nuta",
	"fa-truck":               "Ciężarówka",
	"fa-shield-halved":       "Tarcza",
	"fa-film":                "Taśma Filmowa",
	"fa-fire":                "Ogień",
	"fa-tree":                "Drzewo",
	"fa-spa":                 "Spa",
	"fa-flask":               "Szklana Kolba",
}

// CategoryIcon resolves a category's icon key to a renderable glyph class.
// A nil category or an icon outside the catalog yields the neutral default.
func CategoryIcon(category *entities.TaskCategory) string {
	if category == nil {
		return DefaultCategoryIcon
	}
	if _, ok := categoryIcons[category.Icon]; !ok {
		return DefaultCategoryIcon
	}
	return "fa-solid " + category.Icon
}

// IconLabel returns the catalog label for an icon key, or "" when the key is
// not part of the catalog.
func IconLabel(icon string) string {
	return categoryIcons[icon]
}

// IconKeys lists the catalog's icon keys in a stable order.
func IconKeys() []string {
	keys := make([]string, 0, len(categoryIcons))
	for key := range categoryIcons {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
