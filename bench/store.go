package bench

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tourlab/tourlab/tsp"
)

// ErrNoRuns is returned by Store queries that match nothing.
var ErrNoRuns = errors.New("bench: no matching runs")

// Store archives solver runs in a SQLite database so batches can be
// compared after the fact.
type Store struct {
	*sql.DB
}

// OpenStore opens (creating if needed) the archive at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			instance    TEXT NOT NULL,
			algorithm   TEXT NOT NULL,
			cutoff_ms   BIGINT,
			seed        BIGINT,
			has_seed    INTEGER,
			length      DOUBLE,
			tour        TEXT,
			elapsed_ms  BIGINT,
			iterations  BIGINT,
			created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

// RunRecord is one archived solver run.
type RunRecord struct {
	ID         string
	Instance   string
	Algorithm  tsp.Algorithm
	Cutoff     time.Duration
	Seed       int64
	HasSeed    bool
	Length     float64
	Tour       []int
	Elapsed    time.Duration
	Iterations int64
}

// RecordRun inserts rec, assigning a fresh uuid when rec.ID is empty.
// The stored ID is returned.
func (s *Store) RecordRun(rec RunRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	hasSeed := 0
	if rec.HasSeed {
		hasSeed = 1
	}
	_, err := s.Exec(
		`INSERT INTO runs (
			id, instance, algorithm, cutoff_ms, seed, has_seed,
			length, tour, elapsed_ms, iterations
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Instance, rec.Algorithm.String(), rec.Cutoff.Milliseconds(),
		rec.Seed, hasSeed, rec.Length, encodeTour(rec.Tour),
		rec.Elapsed.Milliseconds(), rec.Iterations,
	)
	if err != nil {
		return "", err
	}

	return rec.ID, nil
}

// Runs returns every archived run for instance, newest first.
func (s *Store) Runs(instance string) ([]RunRecord, error) {
	rows, err := s.Query(
		`SELECT id, instance, algorithm, cutoff_ms, seed, has_seed,
			length, tour, elapsed_ms, iterations
		 FROM runs WHERE instance = ? ORDER BY created_at DESC, id`,
		instance,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, scanErr := scanRun(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// BestRun returns the shortest archived run of algo on instance.
//
// Errors: ErrNoRuns when the archive holds no such run.
func (s *Store) BestRun(instance string, algo tsp.Algorithm) (RunRecord, error) {
	rows, err := s.Query(
		`SELECT id, instance, algorithm, cutoff_ms, seed, has_seed,
			length, tour, elapsed_ms, iterations
		 FROM runs WHERE instance = ? AND algorithm = ?
		 ORDER BY length ASC LIMIT 1`,
		instance, algo.String(),
	)
	if err != nil {
		return RunRecord{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return RunRecord{}, err
		}
		return RunRecord{}, fmt.Errorf("%w: %s/%s", ErrNoRuns, instance, algo)
	}

	return scanRun(rows)
}

// scanRun decodes one SELECT row in the column order used above.
func scanRun(rows *sql.Rows) (RunRecord, error) {
	var (
		rec       RunRecord
		algorithm string
		cutoffMs  int64
		hasSeed   int
		tour      string
		elapsedMs int64
	)
	if err := rows.Scan(
		&rec.ID, &rec.Instance, &algorithm, &cutoffMs, &rec.Seed, &hasSeed,
		&rec.Length, &tour, &elapsedMs, &rec.Iterations,
	); err != nil {
		return RunRecord{}, err
	}

	algo, err := tsp.ParseAlgorithm(algorithm)
	if err != nil {
		return RunRecord{}, fmt.Errorf("bench: archived run %s: %w", rec.ID, err)
	}
	rec.Algorithm = algo
	rec.Cutoff = time.Duration(cutoffMs) * time.Millisecond
	rec.HasSeed = hasSeed != 0
	rec.Elapsed = time.Duration(elapsedMs) * time.Millisecond
	rec.Tour, err = decodeTour(tour)
	if err != nil {
		return RunRecord{}, fmt.Errorf("bench: archived run %s: %w", rec.ID, err)
	}

	return rec, nil
}

// encodeTour stores tours in the same comma-and-space form as .sol files.
func encodeTour(tour []int) string {
	ids := make([]string, len(tour))
	var i int
	for i = range tour {
		ids[i] = strconv.Itoa(tour[i])
	}

	return strings.Join(ids, ", ")
}

func decodeTour(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}

	parts := strings.Split(s, ",")
	tour := make([]int, 0, len(parts))
	var part string
	for _, part = range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad tour entry %q", part)
		}
		tour = append(tour, id)
	}

	return tour, nil
}
