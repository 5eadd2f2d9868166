package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"modcon/internal/adapter/repo"
	"modcon/internal/infra"
	"modcon/internal/infra/credentials"
)

func newAgentKeyCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agentkey",
		Short: "Manage brief agent API keys stored in PostgreSQL",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <openai|gemini> [key|-]",
		Short: "Store an API key; reads stdin when the key is - or omitted",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 2 && args[1] != "-" {
				key = args[1]
			} else {
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read key from stdin: %w", err)
				}
				key = line
			}
			store, closeFn, err := credentialStore(cmd, ctx)
			if err != nil {
				return err
			}
			defer closeFn()
			if err := store.SetToken(cmd.Context(), args[0], key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %s key\n", args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <openai|gemini>",
		Short: "Print a masked stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := credentialStore(cmd, ctx)
			if err != nil {
				return err
			}
			defer closeFn()
			key, err := store.Token(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if key == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "no %s key stored\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], mask(key))
			return nil
		},
	})
	return cmd
}

func credentialStore(cmd *cobra.Command, ctx *commandContext) (*credentials.Store, func(), error) {
	cfg, err := ctx.config()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.HasDatabase() {
		return nil, nil, fmt.Errorf("DATABASE_URL is required to store agent keys")
	}
	pool, err := infra.NewDBPool(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	runner := infra.NewSQLRunner(pool, ctx.logger())
	if err := repo.NewProductionPG(runner).EnsureSchema(cmd.Context()); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return credentials.NewStore(runner), pool.Close, nil
}

func mask(key string) string {
	key = strings.TrimSpace(key)
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
