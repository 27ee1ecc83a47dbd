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
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lingolog/lingolog/internal/infrastructure/config"
	"github.com/lingolog/lingolog/internal/infrastructure/database"
)

const (
	exportOutputKey = "export.output"
	exportGzipKey   = "export.gzip"
	exportUserKey   = "export.user"
)

// exportRecord is one NDJSON line of the log export.
type exportRecord struct {
	ID              string    `json:"id"`
	UserID          int64     `json:"user_id"`
	LanguageCode    string    `json:"language_code"`
	ActivityID      int32     `json:"activity_id"`
	Amount          *float64  `json:"amount,omitempty"`
	UnitName        string    `json:"unit_name,omitempty"`
	DurationSeconds *int64    `json:"duration_seconds,omitempty"`
	Score           float64   `json:"score"`
	Tags            []string  `json:"tags,omitempty"`
	Description     string    `json:"description,omitempty"`
	RegistrationIDs []string  `json:"registration_ids,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// exportCmd streams immersion logs as NDJSON for backups and offline analysis.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export immersion logs as NDJSON",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		outputPath := viper.GetString(exportOutputKey)
		gzipEnabled := viper.GetBool(exportGzipKey)
		userID := viper.GetInt64(exportUserKey)

		if outputPath == "" {
			outputPath = defaultExportFilename(gzipEnabled)
		}
		if !gzipEnabled && outputPath != "-" && strings.HasSuffix(strings.ToLower(outputPath), ".gz") {
			gzipEnabled = true
		}

		pool, cleanup, err := database.NewConnection(cfg)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer cleanup()

		var (
			writer   = cmd.OutOrStdout()
			closeFns []func() error
		)

		if outputPath != "-" {
			if dir := filepath.Dir(outputPath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}
			file, openErr := os.Create(outputPath)
			if openErr != nil {
				return fmt.Errorf("create export file: %w", openErr)
			}
			writer = file
			closeFns = append(closeFns, file.Close)
		}

		if gzipEnabled {
			gz := gzip.NewWriter(writer)
			writer = gz
			closeFns = append([]func() error{gz.Close}, closeFns...)
		}

		defer func() {
			for _, closer := range closeFns {
				if cerr := closer(); cerr != nil && err == nil {
					err = cerr
				}
			}
		}()

		total, err := exportLogs(ctx, pool, writer, userID)
		if err != nil {
			return fmt.Errorf("export logs: %w", err)
		}

		if outputPath == "-" {
			cmd.PrintErrf("exported %d logs to stdout\n", total)
		} else {
			cmd.Printf("exported %d logs to %s\n", total, outputPath)
		}
		return nil
	},
}

func exportLogs(ctx context.Context, pool *pgxpool.Pool, w io.Writer, userID int64) (int, error) {
	const query = `
		SELECT l.id::text, l.user_id, l.language_code, l.activity_id, l.amount,
		       l.unit_name, l.duration_seconds, l.score, l.tags, l.description, l.created_at,
		       COALESCE(array_agg(a.registration_id::text) FILTER (WHERE a.registration_id IS NOT NULL), '{}')
		FROM immersion_logs l
		LEFT JOIN log_attachments a ON a.log_id = l.id
		WHERE ($1 = 0 OR l.user_id = $1)
		GROUP BY l.id
		ORDER BY l.created_at, l.id`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	encoder := json.NewEncoder(w)
	total := 0
	for rows.Next() {
		var (
			rec     exportRecord
			rawTags []byte
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.LanguageCode, &rec.ActivityID, &rec.Amount,
			&rec.UnitName, &rec.DurationSeconds, &rec.Score, &rawTags, &rec.Description,
			&rec.CreatedAt, &rec.RegistrationIDs,
		); err != nil {
			return total, err
		}
		if len(rawTags) > 0 {
			if err := json.Unmarshal(rawTags, &rec.Tags); err != nil {
				return total, fmt.Errorf("decode tags for log %s: %w", rec.ID, err)
			}
		}
		if err := encoder.Encode(rec); err != nil {
			return total, err
		}
		total++
	}
	return total, rows.Err()
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "export file path, - for stdout")
	exportCmd.Flags().Bool("gzip", false, "gzip-compress the output")
	exportCmd.Flags().Int64("user", 0, "only export logs of one user id")

	bindFlagToViper(exportOutputKey, exportCmd.Flags().Lookup("output"))
	bindFlagToViper(exportGzipKey, exportCmd.Flags().Lookup("gzip"))
	bindFlagToViper(exportUserKey, exportCmd.Flags().Lookup("user"))
}

func defaultExportFilename(gzipEnabled bool) string {
	ts := time.Now().UTC().Format("20060102-150405")
	filename := fmt.Sprintf("lingolog-export-%s.jsonl", ts)
	if gzipEnabled {
		filename += ".gz"
	}
	return filename
}
