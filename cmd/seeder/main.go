// Command seeder populates the database with a demo account so the API can
// be explored right after a fresh start. It is idempotent: if the demo user
// already exists the seeder exits without touching anything.
//
// Demo credentials: user@example.com / password123.
//
// Requires DATABASE_DSN; respects the usual AUTH_* and LOG_* variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/financanvas/backend/internal/adapter/postgres"
	categoryrepo "github.com/financanvas/backend/internal/adapter/postgres/category"
	transactionrepo "github.com/financanvas/backend/internal/adapter/postgres/transaction"
	userrepo "github.com/financanvas/backend/internal/adapter/postgres/user"
	"github.com/financanvas/backend/internal/app"
	"github.com/financanvas/backend/internal/config"
	"github.com/financanvas/backend/internal/domain"
)

const (
	demoEmail    = "user@example.com"
	demoName     = "Demo User"
	demoPassword = "password123"
)

var demoCategories = []string{"Salário", "Moradia", "Lazer", "Alimentação"}

type demoTransaction struct {
	description string
	amount      string
	txType      domain.TransactionType
	day         int
	category    string
}

// One income and three expenses in June 2025, enough to make the monthly
// report endpoint show something interesting.
var demoTransactions = []demoTransaction{
	{"Salário", "8000", domain.TransactionIncome, 5, "Salário"},
	{"Aluguel", "2500", domain.TransactionExpense, 6, "Moradia"},
	{"Jantar fora", "150", domain.TransactionExpense, 10, "Lazer"},
	{"Compras do mês", "950", domain.TransactionExpense, 12, "Alimentação"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := seed(ctx, logger, pool, cfg.Auth.PasswordHashCost); err != nil {
		logger.Error("seed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func seed(ctx context.Context, logger *slog.Logger, pool *pgxpool.Pool, hashCost int) error {
	users := userrepo.New(pool)
	categories := categoryrepo.New(pool)
	transactions := transactionrepo.New(pool)

	if _, err := users.GetByEmail(ctx, demoEmail); err == nil {
		logger.Info("demo user already exists, nothing to do", slog.String("email", demoEmail))
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check demo user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        demoEmail,
		Name:         demoName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}

	categoryIDs := make(map[string]uuid.UUID, len(demoCategories))
	for _, name := range demoCategories {
		c, err := categories.Create(ctx, &domain.Category{
			ID:        uuid.New(),
			Name:      name,
			UserID:    user.ID,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create category %q: %w", name, err)
		}
		categoryIDs[name] = c.ID
	}

	for _, dt := range demoTransactions {
		amount, err := decimal.NewFromString(dt.amount)
		if err != nil {
			return fmt.Errorf("parse amount %q: %w", dt.amount, err)
		}

		_, err = transactions.Create(ctx, &domain.Transaction{
			ID:          uuid.New(),
			Description: dt.description,
			Amount:      amount,
			Type:        dt.txType,
			Date:        time.Date(2025, time.June, dt.day, 12, 0, 0, 0, time.UTC),
			CategoryID:  categoryIDs[dt.category],
			UserID:      user.ID,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create transaction %q: %w", dt.description, err)
		}
	}

	logger.Info("demo data seeded",
		slog.String("email", demoEmail),
		slog.Int("categories", len(demoCategories)),
		slog.Int("transactions", len(demoTransactions)),
	)
	return nil
}
