package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tragkas/portfolio/internal/api"
	"github.com/tragkas/portfolio/internal/auth"
	"github.com/tragkas/portfolio/internal/config"
	"github.com/tragkas/portfolio/internal/store"
)

var dbPath string

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio link-hub backend",
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "database path")

	rootCmd.AddCommand(serveCmd(cfg))
	rootCmd.AddCommand(seedCmd(cfg))
	rootCmd.AddCommand(resetPasswordCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getStore() (*store.Store, error) {
	return store.New(dbPath)
}

func serveCmd(cfg config.Config) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			cfg.Addr = addr

			s, err := getStore()
			if err != nil {
				return err
			}
			// Note: don't defer s.Close() as server runs indefinitely

			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}))

			server := api.New(cfg, s, logger)
			return server.Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", cfg.Addr, "server address")
	return cmd
}

func seedCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the initial dataset and admin user into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := getStore()
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := context.Background()

			hash, err := auth.HashPassword("admin", cfg.BcryptCost)
			if err != nil {
				return err
			}
			created, err := s.EnsureAdminUser(ctx, "admin", hash)
			if err != nil {
				return err
			}
			if created {
				fmt.Println("Admin user created (admin/admin, change it after first login)")
			}

			seeded, err := s.Seed(ctx)
			if err != nil {
				return err
			}
			if seeded {
				fmt.Println("Database seeded with initial data")
			} else {
				fmt.Println("Categories already present, seed skipped")
			}

			return nil
		},
	}
}

func resetPasswordCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password [password]",
		Short: "Reset the admin password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := getStore()
			if err != nil {
				return err
			}
			defer s.Close()

			hash, err := auth.HashPassword(args[0], cfg.BcryptCost)
			if err != nil {
				return err
			}

			username, err := s.ResetPassword(context.Background(), "admin", hash)
			if err != nil {
				return err
			}

			fmt.Printf("Password updated for user %q\n", username)
			return nil
		},
	}
}
