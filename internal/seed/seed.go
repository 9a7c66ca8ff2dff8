// Package seed populates an empty store from the bundled JSON data files.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"work_market/internal/model"
	"work_market/internal/repository"

	"go.uber.org/zap"
)

// Seeder loads the users, orders and offers bundles and inserts them on
// first start. Any load failure is fatal to startup: the service must not
// run partially seeded.
type Seeder struct {
	dir    string
	users  repository.UserRepository
	orders repository.OrderRepository
	offers repository.OfferRepository
	log    *zap.Logger
}

// New creates a Seeder reading from dir.
func New(dir string, users repository.UserRepository, orders repository.OrderRepository, offers repository.OfferRepository, log *zap.Logger) *Seeder {
	return &Seeder{dir: dir, users: users, orders: orders, offers: offers, log: log}
}

// Run seeds the store, but only when all three tables are empty. The
// original dataset is a bootstrap for a fresh database; re-seeding an
// already populated store would collide on primary keys.
func (s *Seeder) Run(ctx context.Context) error {
	empty, err := s.storeEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		s.log.Info("store already populated, skipping seed")
		return nil
	}

	// Parse all three bundles before touching the store, so a malformed
	// file cannot leave it half seeded.
	users, err := LoadUsers(filepath.Join(s.dir, "users.json"))
	if err != nil {
		return err
	}
	orders, err := LoadOrders(filepath.Join(s.dir, "orders.json"))
	if err != nil {
		return err
	}
	offers, err := LoadOffers(filepath.Join(s.dir, "offers.json"))
	if err != nil {
		return err
	}

	for i := range users {
		if err := s.users.Insert(ctx, &users[i]); err != nil {
			return fmt.Errorf("failed to seed user %d: %w", users[i].ID, err)
		}
	}
	for i := range orders {
		if err := s.orders.Insert(ctx, &orders[i]); err != nil {
			return fmt.Errorf("failed to seed order %d: %w", orders[i].ID, err)
		}
	}
	for i := range offers {
		if err := s.offers.Insert(ctx, &offers[i]); err != nil {
			return fmt.Errorf("failed to seed offer %d: %w", offers[i].ID, err)
		}
	}

	s.log.Info("store seeded",
		zap.Int("users", len(users)),
		zap.Int("orders", len(orders)),
		zap.Int("offers", len(offers)),
	)
	return nil
}

func (s *Seeder) storeEmpty(ctx context.Context) (bool, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check users count: %w", err)
	}
	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check orders count: %w", err)
	}
	offerCount, err := s.offers.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check offers count: %w", err)
	}
	return userCount == 0 && orderCount == 0 && offerCount == 0, nil
}

// LoadUsers reads and validates the users bundle.
func LoadUsers(path string) ([]model.User, error) {
	var reqs []model.UserRequest
	if err := readJSON(path, &reqs); err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(reqs))
	for i, r := range reqs {
		if field := missingUserField(r); field != "" {
			return nil, recordError(path, i, field)
		}
		users = append(users, *r.ToUser())
	}
	return users, nil
}

// LoadOrders reads and validates the orders bundle.
func LoadOrders(path string) ([]model.Order, error) {
	var reqs []model.OrderRequest
	if err := readJSON(path, &reqs); err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(reqs))
	for i, r := range reqs {
		if field := missingOrderField(r); field != "" {
			return nil, recordError(path, i, field)
		}
		orders = append(orders, *r.ToOrder())
	}
	return orders, nil
}

// LoadOffers reads and validates the offers bundle.
func LoadOffers(path string) ([]model.Offer, error) {
	var reqs []model.OfferRequest
	if err := readJSON(path, &reqs); err != nil {
		return nil, err
	}
	offers := make([]model.Offer, 0, len(reqs))
	for i, r := range reqs {
		if field := missingOfferField(r); field != "" {
			return nil, recordError(path, i, field)
		}
		offers = append(offers, *r.ToOffer())
	}
	return offers, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("malformed seed file %s: %w", path, err)
	}
	return nil
}

func recordError(path string, index int, field string) error {
	return fmt.Errorf("%s: record %d: missing field %q", filepath.Base(path), index, field)
}

// The seed bundles go through the same pointer-field request types the HTTP
// layer binds, so a record with an absent key is detectable here.

func missingUserField(r model.UserRequest) string {
	switch {
	case r.ID == nil:
		return "id"
	case r.FirstName == nil:
		return "first_name"
	case r.LastName == nil:
		return "last_name"
	case r.Age == nil:
		return "age"
	case r.Email == nil:
		return "email"
	case r.Role == nil:
		return "role"
	case r.Phone == nil:
		return "phone"
	}
	return ""
}

func missingOrderField(r model.OrderRequest) string {
	switch {
	case r.ID == nil:
		return "id"
	case r.Name == nil:
		return "name"
	case r.Description == nil:
		return "description"
	case r.StartDate == nil:
		return "start_date"
	case r.EndDate == nil:
		return "end_date"
	case r.Address == nil:
		return "address"
	case r.Price == nil:
		return "price"
	case r.CustomerID == nil:
		return "customer_id"
	case r.ExecutorID == nil:
		return "executor_id"
	}
	return ""
}

func missingOfferField(r model.OfferRequest) string {
	switch {
	case r.ID == nil:
		return "id"
	case r.OrderID == nil:
		return "order_id"
	case r.ExecutorID == nil:
		return "executor_id"
	}
	return ""
}
