// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/metrics"
)

// LoadGames scans the catalog file at path with read_csv and converts each
// row through catalog.Rows. It returns the accepted games in file order and
// one *catalog.RecordError per rejected row. Line numbers assume one physical
// line per record with the header on line 1.
func (db *DB) LoadGames(ctx context.Context, path string) (games []catalog.Game, rejected []error, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("read_csv", time.Since(start), err)
	}()

	if _, statErr := os.Stat(path); statErr != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", statErr)
	}

	query := fmt.Sprintf(
		"SELECT * FROM read_csv(%s, header = true, all_varchar = true, null_padding = true)",
		quoteLiteral(path),
	)
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("read_csv %s: %w", path, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	header, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("read columns: %w", err)
	}
	columns, err := catalog.IndexColumns(header)
	if err != nil {
		return nil, nil, err
	}

	values := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range values {
		dest[i] = &values[i]
	}
	field := func(name string) string {
		return values[columns[name]].String
	}

	collected := catalog.NewRows()
	line := 1
	for rows.Next() {
		line++
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("scan line %d: %w", line, err)
		}
		collected.Add(&catalog.Row{
			Line:    line,
			Rank:    field(catalog.ColumnRank),
			Title:   field(catalog.ColumnGame),
			Release: field(catalog.ColumnRelease),
			Genres: [catalog.MaxGenres]string{
				field(catalog.ColumnGenre1),
				field(catalog.ColumnGenre2),
				field(catalog.ColumnGenre3),
			},
			Score: field(catalog.ColumnScore),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("read catalog rows: %w", err)
	}

	return collected.Games(), collected.Rejected(), nil
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
