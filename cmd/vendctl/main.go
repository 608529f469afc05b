package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Vending-api/internal/application/usecase"
	"github.com/jhoicas/Vending-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Vending-api/pkg/config"
	"github.com/jhoicas/Vending-api/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vendctl",
		Short:         "Herramientas de operación del Vending API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "vendctl"})
			return nil
		},
	}

	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newSeedCommand())
	return cmd
}

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Aplica o revierte las migraciones SQL embebidas",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(postgres.MigrateUp), string(postgres.MigrateDown), string(postgres.MigrateStatus)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := postgres.MigrateDirection(args[0])
			switch dir {
			case postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus:
			default:
				return fmt.Errorf("dirección desconocida %q (up|down|status)", args[0])
			}
			return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
				return postgres.Migrate(ctx, pool, dir)
			})
		},
	}
	return cmd
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga el catálogo desde archivos CSV (todo o nada)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newSeedKindCommand("machines", "Carga máquinas (id?, location, description)",
		func(uc *usecase.CatalogImportUseCase) importFunc { return uc.ImportMachines }))
	cmd.AddCommand(newSeedKindCommand("products", "Carga productos (name, price, unit?)",
		func(uc *usecase.CatalogImportUseCase) importFunc { return uc.ImportProducts }))
	return cmd
}

type importFunc func(ctx context.Context, r io.Reader) (int, error)

func newSeedKindCommand(use, short string, pick func(*usecase.CatalogImportUseCase) importFunc) *cobra.Command {
	var (
		file    string
		charset string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openCSV(file, charset)
			if err != nil {
				return err
			}
			defer in.Close()

			return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
				uc := usecase.NewCatalogImportUseCase(postgres.NewTxRunner(pool))
				n, err := pick(uc)(ctx, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s importados\n", n, use)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Ruta del CSV con encabezado")
	cmd.Flags().StringVar(&charset, "charset", "utf8", "Codificación del archivo (utf8|latin1)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// openCSV abre el archivo y, si es Latin-1, lo transcodifica a UTF-8 al leer.
func openCSV(path, charset string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	switch strings.ToLower(charset) {
	case "", "utf8", "utf-8":
		return f, nil
	case "latin1", "iso-8859-1":
		return readCloser{Reader: charmap.ISO8859_1.NewDecoder().Reader(f), Closer: f}, nil
	default:
		f.Close()
		return nil, fmt.Errorf("charset no soportado %q (utf8|latin1)", charset)
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}

func withPool(ctx context.Context, fn func(context.Context, *pgxpool.Pool) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()
	return fn(ctx, pool)
}
