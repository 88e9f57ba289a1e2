// Command seed creates a demo user and a demo group for local
// development. Safe to re-run: duplicates are detected and skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joho/godotenv"

	"github.com/evenly-app/backend/config"
	"github.com/evenly-app/backend/internal/domain/entity"
	pginfra "github.com/evenly-app/backend/internal/infrastructure/postgres"
	"github.com/evenly-app/backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	email := "demo@evenly.local"
	password := "demopassword1"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := pginfra.NewUserRepository(pool, cfg.DBQueryTimeout)
	u := &entity.User{Email: email, Name: "Demo User", PasswordHash: hash}
	if err := users.Create(ctx, u); err != nil {
		existing, getErr := users.GetByEmail(ctx, email)
		if getErr != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
		u = existing
		fmt.Printf("demo user already exists: id=%s\n", u.ID)
	} else {
		fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, email, password)
	}

	groups := pginfra.NewGroupRepository(pool, cfg.DBQueryTimeout)
	existing, err := groups.ListByMember(ctx, u.ID)
	if err != nil {
		log.Fatalf("failed to list demo groups: %v", err)
	}
	for _, eg := range existing {
		if eg.Name == "Demo Trip" {
			fmt.Printf("demo group already exists: id=%s\n", eg.ID)
			return
		}
	}

	g := &entity.Group{Name: "Demo Trip", Description: "seeded example group", CreatedByID: u.ID}
	if err := groups.CreateWithOwner(ctx, g); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			fmt.Println("demo group membership already exists, skipping")
			return
		}
		log.Fatalf("failed to seed group: %v", err)
	}
	fmt.Printf("seeded group: id=%s name=%s owner=%s\n", g.ID, g.Name, u.ID)
}
