package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/connectik/connectik_api/internal/config"
	"github.com/connectik/connectik_api/internal/database"
	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/repository"
	"github.com/connectik/connectik_api/internal/service"
	"github.com/connectik/connectik_api/internal/utils"
)

const usage = "expected 'add-user', 'show-user', 'hash-password' or 'migrate' subcommand"

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	addUserCmd := flag.NewFlagSet("add-user", flag.ExitOnError)
	addUsername := addUserCmd.String("username", "", "Username for the new user")
	addPassword := addUserCmd.String("password", "", "Password for the new user")

	showUserCmd := flag.NewFlagSet("show-user", flag.ExitOnError)
	showUsername := showUserCmd.String("username", "", "Username to look up")

	hashCmd := flag.NewFlagSet("hash-password", flag.ExitOnError)
	hashPassword := hashCmd.String("password", "", "Password to hash for ADMIN_PASSWORD_HASH")

	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-user":
		_ = addUserCmd.Parse(os.Args[2:])
		if *addUsername == "" || *addPassword == "" {
			fmt.Fprintln(os.Stderr, "username and password are required")
			addUserCmd.PrintDefaults()
			os.Exit(1)
		}
		createUser(*addUsername, *addPassword)
	case "show-user":
		_ = showUserCmd.Parse(os.Args[2:])
		if *showUsername == "" {
			fmt.Fprintln(os.Stderr, "username is required")
			showUserCmd.PrintDefaults()
			os.Exit(1)
		}
		showUser(*showUsername)
	case "hash-password":
		_ = hashCmd.Parse(os.Args[2:])
		if *hashPassword == "" {
			fmt.Fprintln(os.Stderr, "password is required")
			hashCmd.PrintDefaults()
			os.Exit(1)
		}
		hashed, err := service.HashPassword(*hashPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash password")
		}
		fmt.Println(hashed)
	case "migrate":
		_ = migrateCmd.Parse(os.Args[2:])
		cfg, db := connect()
		defer db.Close()
		if err := database.RunMigrations(db.DB, cfg.DB.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
		fmt.Println("Migrations applied.")
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
}

// connect loads the configuration and opens the database.
func connect() (*config.Config, *sqlx.DB) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	db, err := database.Connect(context.Background(), &cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	return cfg, db
}

func createUser(username, password string) {
	cfg, db := connect()
	defer db.Close()

	// Ensure tables exist if running cli before server
	if err := database.RunMigrations(db.DB, cfg.DB.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := service.NewUserService(repository.NewUserRepository(db))
	user, err := users.Register(ctx, &models.CreateUserInput{Username: username, Password: password})
	var cerr *utils.ConstraintError
	if errors.As(err, &cerr) {
		log.Fatal().Str("username", username).Msg("User already exists")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	fmt.Printf("User '%s' created successfully (id %s).\n", user.Username, user.ID)
}

func showUser(username string) {
	_, db := connect()
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := service.NewUserService(repository.NewUserRepository(db))
	user, err := users.GetByUsername(ctx, username)
	if errors.Is(err, utils.ErrNotFound) {
		log.Fatal().Str("username", username).Msg("User not found")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load user")
	}

	fmt.Printf("%s\t%s\n", user.ID, user.Username)
}
