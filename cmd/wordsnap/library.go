package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsnap-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordsnap-backend/internal/adapter/postgres/savedset"
	"github.com/heartmarshall/wordsnap-backend/internal/service/library"
	"github.com/heartmarshall/wordsnap-backend/pkg/ctxutil"
)

// openLibrary connects to the database and returns a library service bound
// to the given device. The caller closes the pool.
func openLibrary(ctx context.Context, device string) (*library.Service, *pgxpool.Pool, context.Context, error) {
	id, err := uuid.Parse(device)
	if err != nil || id == uuid.Nil {
		return nil, nil, nil, fmt.Errorf("--device: %q is not a device ID", device)
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("database: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}

	svc := library.NewService(logger, cfg.Library, savedset.New(pool), postgres.NewTxManager(pool))
	logger.Debug("library opened", slog.String("device_id", id.String()))

	return svc, pool, ctxutil.WithDeviceID(ctx, id), nil
}

func exportCmd() *cobra.Command {
	var device, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a device library as an export file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, pool, ctx, err := openLibrary(cmd.Context(), device)
			if err != nil {
				return err
			}
			defer pool.Close()

			data, err := svc.Export(ctx)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "device ID that owns the library")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout when empty)")
	_ = cmd.MarkFlagRequired("device")
	return cmd
}

func importCmd() *cobra.Command {
	var device, mode string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Load an export file into a device library",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			importMode, err := library.ParseImportMode(mode)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			svc, pool, ctx, err := openLibrary(cmd.Context(), device)
			if err != nil {
				return err
			}
			defer pool.Close()

			res, err := svc.Import(ctx, data, importMode)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "imported %d sets, skipped %d sets and %d words, removed %d sets\n",
				res.Imported, res.Skipped, res.SkippedWords, res.Removed)
			for _, e := range res.Errors {
				fmt.Fprintf(w, "  #%d %q: %s\n", e.Index, e.Name, e.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "device ID that owns the library")
	cmd.Flags().StringVar(&mode, "mode", string(library.ImportMerge), "merge or replace")
	_ = cmd.MarkFlagRequired("device")
	return cmd
}
