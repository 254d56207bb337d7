// Package seed fills the relational store with fake users and tasks.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"

	"dbmanager/internal/repository"
)

var (
	// ErrNoUsers is returned when tasks are requested but no user exists to own them.
	ErrNoUsers = errors.New("no users to assign tasks to")
	// ErrNoStatuses is returned when the status table is empty.
	ErrNoStatuses = errors.New("no statuses, run create_tables first")
)

// maxEmailAttempts bounds retries while looking for an unused fake e-mail.
const maxEmailAttempts = 100

// Options controls how many rows are generated.
type Options struct {
	Users int
	Tasks int
}

// DefaultOptions matches the seed size used by the CLI.
func DefaultOptions() Options {
	return Options{Users: 10, Tasks: 100}
}

// Result reports the number of inserted rows.
type Result struct {
	Users int
	Tasks int
}

// Seeder generates fake rows.
type Seeder struct {
	db    *gorm.DB
	faker *gofakeit.Faker
}

// New returns a Seeder. A nil faker gets a randomly seeded one.
func New(db *gorm.DB, faker *gofakeit.Faker) *Seeder {
	if faker == nil {
		faker = gofakeit.New(0)
	}
	return &Seeder{db: db, faker: faker}
}

// Run inserts users first, then tasks owned by random existing users with
// random statuses, all in one transaction.
func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Users < 0 || opts.Tasks < 0 {
		return Result{}, fmt.Errorf("seed: counts must not be negative")
	}

	var res Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.insertUsers(ctx, repository.NewUserRepository(tx), opts.Users)
		if err != nil {
			return err
		}
		res.Users = n

		n, err = s.insertTasks(ctx, tx, opts.Tasks)
		if err != nil {
			return err
		}
		res.Tasks = n
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("seed: %w", err)
	}

	log.Printf("[info] seeded %d users and %d tasks", res.Users, res.Tasks)
	return res, nil
}

func (s *Seeder) insertUsers(ctx context.Context, users *repository.UserRepository, count int) (int, error) {
	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		email, err := s.uniqueEmail(seen)
		if err != nil {
			return i, err
		}
		if _, err := users.Create(ctx, s.faker.Name(), email); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (s *Seeder) uniqueEmail(seen map[string]struct{}) (string, error) {
	for attempt := 0; attempt < maxEmailAttempts; attempt++ {
		email := s.faker.Email()
		if _, dup := seen[email]; !dup {
			seen[email] = struct{}{}
			return email, nil
		}
	}
	return "", fmt.Errorf("no unique email after %d attempts", maxEmailAttempts)
}

func (s *Seeder) insertTasks(ctx context.Context, tx *gorm.DB, count int) (int, error) {
	if count == 0 {
		return 0, nil
	}

	userIDs, err := repository.NewUserRepository(tx).ListIDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(userIDs) == 0 {
		return 0, ErrNoUsers
	}
	statusIDs, err := repository.NewStatusRepository(tx).ListIDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(statusIDs) == 0 {
		return 0, ErrNoStatuses
	}

	tasks := repository.NewTaskRepository(tx)
	for i := 0; i < count; i++ {
		title := truncate(s.faker.Sentence(6), 100)
		description := s.faker.Paragraph(1, 3, 12, " ")
		statusID := statusIDs[s.faker.Number(0, len(statusIDs)-1)]
		userID := userIDs[s.faker.Number(0, len(userIDs)-1)]
		if err := tasks.CreateWithStatusID(ctx, title, description, statusID, userID); err != nil {
			return i, err
		}
	}
	return count, nil
}

// truncate keeps titles inside the VARCHAR(100) column.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
