// Command reset_password sets a user's password from the command line.
//
//	RESET_PASSWORD=... reset_password -admin <adminUserID> -user <userID>
//	reset_password -admin <adminUserID> -user <userID> -generate
//
// The password is never taken from a flag so it stays out of shell history.
// The acting admin must exist and hold admin rights.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/zcred_app/internal/core/services"
	"github.com/SscSPs/zcred_app/internal/platform/config"
	"github.com/SscSPs/zcred_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/zcred_app/pkg/database"
)

const passwordEnv = "RESET_PASSWORD"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(os.Args[1:]); err != nil {
		logger.Error("Password reset failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("reset_password", flag.ContinueOnError)
	targetUserID := fs.String("user", "", "ID of the user whose password is reset")
	adminUserID := fs.String("admin", "", "ID of the admin performing the reset")
	generate := fs.Bool("generate", false, "generate a random password and print it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	newPassword, err := choosePassword(*targetUserID, *adminUserID, *generate, os.Getenv(passwordEnv))
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	userService := services.NewUserService(repos.UserRepo)

	generated, err := userService.ResetPassword(ctx, *targetUserID, newPassword, *adminUserID)
	if err != nil {
		return err
	}
	if generated != "" {
		fmt.Fprintf(os.Stdout, "Generated password for %s: %s\n", *targetUserID, generated)
	} else {
		fmt.Fprintf(os.Stdout, "Password updated for %s\n", *targetUserID)
	}
	return nil
}

// choosePassword validates the flag combination. An empty result asks the
// service to generate a password.
func choosePassword(targetUserID, adminUserID string, generate bool, envPassword string) (string, error) {
	if targetUserID == "" || adminUserID == "" {
		return "", errors.New("both -user and -admin are required")
	}
	switch {
	case generate && envPassword != "":
		return "", fmt.Errorf("-generate cannot be combined with %s", passwordEnv)
	case generate:
		return "", nil
	case envPassword == "":
		return "", fmt.Errorf("set %s or pass -generate", passwordEnv)
	default:
		return envPassword, nil
	}
}
