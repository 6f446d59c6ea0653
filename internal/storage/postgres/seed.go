package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
)

type seedItem struct {
	name        string
	description string
	price       float64
	category    model.MenuCategory
	image       string
}

var defaultMenu = []seedItem{
	{"Masala Chai", "Spiced milk tea brewed with ginger and cardamom", 25, model.CategoryTea, "/images/masala-chai.jpg"},
	{"Adrak Chai", "Strong ginger tea", 25, model.CategoryTea, "/images/adrak-chai.jpg"},
	{"Filter Coffee", "South Indian filter coffee", 40, model.CategoryCoffee, "/images/filter-coffee.jpg"},
	{"Cold Coffee", "Blended iced coffee with cream", 80, model.CategoryCoffee, "/images/cold-coffee.jpg"},
	{"Khaman Dhokla", "Steamed gram flour squares with tempering", 60, model.CategoryGujaratiSpecials, "/images/khaman-dhokla.jpg"},
	{"Methi Thepla", "Fenugreek flatbread served with pickle", 50, model.CategoryGujaratiSpecials, "/images/thepla.jpg"},
	{"Fafda Jalebi", "Crispy fafda with hot jalebi", 70, model.CategoryGujaratiSpecials, "/images/fafda-jalebi.jpg"},
	{"Veg Sandwich", "Grilled sandwich with mint chutney", 55, model.CategorySnacks, "/images/veg-sandwich.jpg"},
	{"Samosa Plate", "Two samosas with chutneys", 40, model.CategorySnacks, "/images/samosa.jpg"},
	{"Gulab Jamun", "Warm gulab jamun, two pieces", 45, model.CategoryDesserts, "/images/gulab-jamun.jpg"},
	{"Rasmalai", "Chilled rasmalai in saffron milk", 65, model.CategoryDesserts, "/images/rasmalai.jpg"},
	{"Fresh Lime Soda", "Sweet and salted lime soda", 35, model.CategoryBeverages, "/images/lime-soda.jpg"},
	{"Mango Lassi", "Thick mango yogurt drink", 60, model.CategoryBeverages, "/images/mango-lassi.jpg"},
}

// SeedMenu inserts the default catalog when the menu table is empty.
func (s *Storage) SeedMenu(ctx context.Context) error {
	menu := s.Menu()
	count, err := menu.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, entry := range defaultMenu {
		item := &model.MenuItem{
			ID:          uuid.NewString(),
			Name:        entry.name,
			Description: entry.description,
			Price:       entry.price,
			Category:    entry.category,
			Image:       entry.image,
			IsAvailable: true,
		}
		if err := menu.Create(ctx, item); err != nil {
			return err
		}
	}
	s.logger.Info("seeded default menu", slog.Int("items", len(defaultMenu)))
	return nil
}

// SeedAdmin ensures a staff account with the given login exists.
func (s *Storage) SeedAdmin(ctx context.Context, login, passwordHash string) error {
	admins := s.Admins()
	if _, err := admins.GetByLogin(ctx, login); err == nil {
		return nil
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}

	if _, err := admins.Create(ctx, login, passwordHash); err != nil {
		// Concurrent startup already created the account.
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil
		}
		return err
	}
	s.logger.Info("seeded admin account", slog.String("login", login))
	return nil
}
