// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names of the catalog exchange format. Header matching is case-insensitive.
const (
	ColumnRank    = "rank"
	ColumnGame    = "game"
	ColumnRelease = "release"
	ColumnGenre1  = "genre1"
	ColumnGenre2  = "genre2"
	ColumnGenre3  = "genre3"
	ColumnScore   = "score"
)

var requiredColumns = []string{
	ColumnRank, ColumnGame, ColumnRelease,
	ColumnGenre1, ColumnGenre2, ColumnGenre3,
	ColumnScore,
}

// Row is one raw catalog row before type conversion.
type Row struct {
	Line    int
	Rank    string
	Title   string
	Release string
	Genres  [MaxGenres]string
	Score   string
}

// Parse converts the raw row into a Game.
// Failures are returned as *RecordError.
func (r *Row) Parse() (Game, error) {
	rank, err := strconv.Atoi(strings.TrimSpace(r.Rank))
	if err != nil {
		return Game{}, &RecordError{Line: r.Line, Field: "Rank", Err: fmt.Errorf("invalid rank %q", r.Rank)}
	}
	if rank <= 0 {
		return Game{}, &RecordError{Line: r.Line, Field: "Rank", Err: fmt.Errorf("rank %d is not positive", rank)}
	}

	title := strings.TrimSpace(r.Title)
	if title == "" {
		return Game{}, &RecordError{Line: r.Line, Field: "Game", Err: errors.New("empty title")}
	}

	release, err := ParseRelease(r.Release)
	if err != nil {
		return Game{}, &RecordError{Line: r.Line, Field: "Release", Err: err}
	}

	score, err := ParseScore(r.Score)
	if err != nil {
		return Game{}, &RecordError{Line: r.Line, Field: "Score", Err: err}
	}

	genres := make([]string, MaxGenres)
	for i, genre := range r.Genres {
		genres[i] = strings.TrimSpace(genre)
	}

	return Game{
		Rank:    rank,
		Title:   title,
		Release: release,
		Genres:  genres,
		Score:   score,
	}, nil
}

// Rows collects parsed games and rejects rows that break the catalog
// invariants (rank collisions keep the first occurrence).
type Rows struct {
	games    []Game
	rejected []error
	seen     map[int]int // rank -> line
}

// NewRows creates an empty row collector.
func NewRows() *Rows {
	return &Rows{seen: make(map[int]int)}
}

// Add parses the row and keeps it when valid.
func (rs *Rows) Add(r *Row) {
	g, err := r.Parse()
	if err != nil {
		rs.rejected = append(rs.rejected, err)
		return
	}
	if first, dup := rs.seen[g.Rank]; dup {
		rs.rejected = append(rs.rejected, &RecordError{
			Line:  r.Line,
			Field: "Rank",
			Err:   fmt.Errorf("rank %d already used on line %d", g.Rank, first),
		})
		return
	}
	rs.seen[g.Rank] = r.Line
	rs.games = append(rs.games, g)
}

// Games returns the accepted games in input order.
func (rs *Rows) Games() []Game {
	return rs.games
}

// Rejected returns one *RecordError per rejected row.
func (rs *Rows) Rejected() []error {
	return rs.rejected
}

// ReadCSV reads the catalog exchange format.
// It returns the accepted games, the rejected rows, and an error only when the
// input as a whole is unusable (unreadable or missing required columns).
func ReadCSV(r io.Reader) (games []Game, rejected []error, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("read header: empty input")
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	columns, err := IndexColumns(header)
	if err != nil {
		return nil, nil, err
	}

	rows := NewRows()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				rows.rejected = append(rows.rejected, &RecordError{Line: parseErr.Line, Err: parseErr.Err})
				continue
			}
			return nil, nil, fmt.Errorf("read catalog: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		rows.Add(&Row{
			Line:    line,
			Rank:    field(record, columns[ColumnRank]),
			Title:   field(record, columns[ColumnGame]),
			Release: field(record, columns[ColumnRelease]),
			Genres: [MaxGenres]string{
				field(record, columns[ColumnGenre1]),
				field(record, columns[ColumnGenre2]),
				field(record, columns[ColumnGenre3]),
			},
			Score: field(record, columns[ColumnScore]),
		})
	}

	return rows.Games(), rows.Rejected(), nil
}

// LoadFile reads a catalog CSV file from disk.
func LoadFile(path string) (games []Game, rejected []error, err error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return ReadCSV(f)
}

// IndexColumns maps the required lower-case column names to their header
// positions. Matching ignores case, surrounding space and a UTF-8 BOM.
func IndexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("catalog header missing columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

// field returns record[i] or "" when the row is short.
func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
