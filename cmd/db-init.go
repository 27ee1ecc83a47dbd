/*
Copyright © 2026 The LingoLog Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	adapterrepo "github.com/lingolog/lingolog/internal/adapter/repository"
	"github.com/lingolog/lingolog/internal/entity"
	"github.com/lingolog/lingolog/internal/infrastructure/config"
	"github.com/lingolog/lingolog/internal/infrastructure/database"
)

// dbInitCmd applies the ent-managed schema and optionally installs the
// built-in unit and tag catalogs.
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Initialize the database schema",
	Long:  "Apply ent-managed schema migrations. Pass --seed to install the built-in unit and tag catalogs as well. Note: go-sqlite3 requires CGO_ENABLED=1.",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetBool("seed")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		client, cleanup, err := database.NewEntClient(cfg)
		if err != nil {
			return fmt.Errorf("create ent client: %w", err)
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := client.Schema.Create(ctx); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		cmd.Println("database migrations complete")

		if !seed {
			return nil
		}
		catalog := adapterrepo.NewCatalogRepository(client)
		if err := catalog.SeedCatalog(ctx, entity.BuiltinUnits(), entity.BuiltinTags()); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		cmd.Println("catalog seeded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
	dbInitCmd.Flags().Bool("seed", false, "install the built-in unit and tag catalogs after migrating")
}
