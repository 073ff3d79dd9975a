package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/laleethkumar26/atm-machine-project/config"
	"github.com/laleethkumar26/atm-machine-project/console"
	"github.com/laleethkumar26/atm-machine-project/service/teller"
)

const versionTimeFormat = "20060102150405"

func main() {
	rootCmd := &cobra.Command{
		Use:   "atm",
		Short: "single-user console ATM over MySQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runATM(cmd.Context())
		},
	}
	rootCmd.AddCommand(
		createMigrationCommand(),
		migrateCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("atm: %v", err)
	}
}

// runATM owns the whole process lifecycle: connect, initialize, run the
// console loop, close the connection on every exit path. A connection
// or initialization failure aborts before any session starts.
func runATM(ctx context.Context) error {
	conf := config.DefaultConfig

	db, err := sqlx.Connect("mysql", conf.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("connect to store: %w", err)
	}
	defer db.Close()

	svc := teller.NewService(teller.NewRepo(db), conf.SeedAccounts)
	if err := svc.Init(ctx); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}

	return console.New(svc, os.Stdin, os.Stdout, conf.CurrencySymbol).Run(ctx)
}

func createMigrationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-create [name]",
		Short: "create sql migrations",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			now := time.Now()
			version := now.Format(versionTimeFormat)
			name := args[0]
			migrationDir := config.DefaultConfig.MigrationDir
			up := fmt.Sprintf("%s/%s_%s.up.sql", migrationDir, version, name)
			down := fmt.Sprintf("%s/%s_%s.down.sql", migrationDir, version, name)

			err := os.WriteFile(up, []byte{}, 0644)
			if err != nil {
				panic(err)
			}

			err = os.WriteFile(down, []byte{}, 0644)
			if err != nil {
				panic(err)
			}

			fmt.Println("Created SQL up script:", up)
			fmt.Println("Created SQL down script:", down)
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-up",
		Short: "migrate all the way up",
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.DefaultConfig
			m, err := migrate.New(
				fmt.Sprintf("file://%s", conf.MigrationDir),
				fmt.Sprintf("mysql://%s", conf.DatabaseDSN),
			)
			if err != nil {
				panic(err)
			}

			err = m.Up()
			if err == migrate.ErrNoChange {
				fmt.Println("No change in migration")
				return
			}
			if err != nil {
				panic(err)
			}
			fmt.Println("Migrated up")
		},
	}
}
