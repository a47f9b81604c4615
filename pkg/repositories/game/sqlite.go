package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fadedpez/drawpoker/internal/logging"
	"github.com/fadedpez/drawpoker/pkg/db/migrations"
	"github.com/fadedpez/drawpoker/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// memoryDSN opens a private in-memory database. It lives as long as its single connection.
const memoryDSN = ":memory:"

const roundColumns = `id, session_id, number, dealt_cards, final_cards, discarded, category, score, total_score, completed_at`

// SQLiteRepository implements the Repository interface on an in-memory SQLite database
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens an in-memory SQLite database and applies the schema.
// Nothing is written to disk, so the history ends with the process.
func NewSQLiteRepository(ctx context.Context, logger *logging.Logger) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	migrator := migrations.NewMigrator(db, logger)
	if err := migrator.MigrateUp(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRound stores a round
func (r *SQLiteRepository) SaveRound(ctx context.Context, round *entities.RoundResult) error {
	if round == nil {
		return fmt.Errorf("round cannot be nil")
	}

	dealt, err := encodeCodes(round.DealtCards)
	if err != nil {
		return err
	}
	final, err := encodeCodes(round.FinalCards)
	if err != nil {
		return err
	}
	discarded, err := encodeCodes(round.Discarded)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO rounds (
			id, session_id, number, dealt_cards, final_cards, discarded,
			exchanged, category, score, total_score, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.ExecContext(ctx, query,
		round.ID, round.SessionID, round.Number, dealt, final, discarded,
		round.Exchanged(), round.Category, round.Score, round.TotalScore, round.CompletedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert round %s: %w", round.ID, err)
	}

	return tx.Commit()
}

// GetSessionRounds retrieves the most recent rounds of a session, oldest first
func (r *SQLiteRepository) GetSessionRounds(ctx context.Context, sessionID string, limit int) ([]*entities.RoundResult, error) {
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}

	query := `
		SELECT ` + roundColumns + `
		FROM rounds
		WHERE session_id = ?
		ORDER BY number DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []*entities.RoundResult
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rounds: %w", err)
	}

	// Newest first from the query, oldest first to the caller
	for i, j := 0, len(rounds)-1; i < j; i, j = i+1, j-1 {
		rounds[i], rounds[j] = rounds[j], rounds[i]
	}

	return rounds, nil
}

// GetSessionStatistics aggregates the rounds of a session in SQL
func (r *SQLiteRepository) GetSessionStatistics(ctx context.Context, sessionID string) (*entities.SessionStatistics, error) {
	stats := entities.NewSessionStatistics(sessionID)

	query := `
		SELECT COUNT(*), COALESCE(SUM(score), 0), COALESCE(MAX(score), 0), COALESCE(SUM(exchanged), 0)
		FROM rounds
		WHERE session_id = ?`

	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&stats.RoundsPlayed, &stats.TotalScore, &stats.BestScore, &stats.CardsExchanged,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get session statistics: %w", err)
	}

	if stats.RoundsPlayed == 0 {
		return stats, nil
	}

	// The earliest round reaching the best score names the best category
	query = `
		SELECT category
		FROM rounds
		WHERE session_id = ?
		ORDER BY score DESC, number ASC
		LIMIT 1`
	if err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&stats.BestCategory); err != nil {
		return nil, fmt.Errorf("failed to get best category: %w", err)
	}

	query = `SELECT completed_at FROM rounds WHERE session_id = ? ORDER BY number DESC LIMIT 1`
	if err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&stats.LastUpdated); err != nil {
		return nil, fmt.Errorf("failed to get last round time: %w", err)
	}

	query = `
		SELECT category, COUNT(*)
		FROM rounds
		WHERE session_id = ?
		GROUP BY category`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		stats.CategoryCounts[category] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category counts: %w", err)
	}

	return stats, nil
}

// Close closes the database, discarding the history
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRound(rows *sql.Rows) (*entities.RoundResult, error) {
	var round entities.RoundResult
	var dealt, final, discarded string

	if err := rows.Scan(
		&round.ID, &round.SessionID, &round.Number, &dealt, &final, &discarded,
		&round.Category, &round.Score, &round.TotalScore, &round.CompletedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan round: %w", err)
	}

	var err error
	if round.DealtCards, err = decodeCodes(dealt); err != nil {
		return nil, err
	}
	if round.FinalCards, err = decodeCodes(final); err != nil {
		return nil, err
	}
	if round.Discarded, err = decodeCodes(discarded); err != nil {
		return nil, err
	}

	return &round, nil
}

func encodeCodes(codes []int) (string, error) {
	if codes == nil {
		codes = []int{}
	}
	data, err := json.Marshal(codes)
	if err != nil {
		return "", fmt.Errorf("failed to encode card codes: %w", err)
	}
	return string(data), nil
}

func decodeCodes(data string) ([]int, error) {
	var codes []int
	if err := json.Unmarshal([]byte(data), &codes); err != nil {
		return nil, fmt.Errorf("failed to decode card codes: %w", err)
	}
	if len(codes) == 0 {
		return nil, nil
	}
	return codes, nil
}
