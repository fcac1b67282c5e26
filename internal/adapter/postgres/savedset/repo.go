// Package savedset implements the saved word-set repository using PostgreSQL.
// Every operation is scoped to the owning device.
package savedset

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordsnap-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// insertChunk bounds the rows of one multi-row insert (5 params per row).
const insertChunk = 1000

// Repo provides saved set persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new saved set repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL for JOIN queries
// ---------------------------------------------------------------------------

const toggleKnownSQL = `
UPDATE saved_words w
SET known = NOT w.known
FROM word_sets s
WHERE w.set_id = s.id
  AND s.owner_id = $1
  AND w.set_id = $2
  AND w.position = $3
RETURNING w.set_id, w.position, w.word, w.meaning, w.known`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns set summaries newest first. Returns an empty slice when the
// device has no sets.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]domain.SetSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder.
		Select(
			"s.id", "s.name", "s.created_at",
			"count(w.position) FILTER (WHERE w.known)",
			"count(w.position)",
		).
		From("word_sets s").
		LeftJoin("saved_words w ON w.set_id = s.id").
		Where(sq.Eq{"s.owner_id": ownerID}).
		GroupBy("s.id").
		OrderBy("s.created_at DESC", "s.id"))
	if err != nil {
		return nil, fmt.Errorf("list word_sets: %w", err)
	}
	defer rows.Close()

	summaries := []domain.SetSummary{}
	for rows.Next() {
		var s domain.SetSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.Known, &s.Total); err != nil {
			return nil, fmt.Errorf("scan word_set summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list word_sets: %w", err)
	}

	return summaries, nil
}

// Count returns the number of sets owned by the device.
func (r *Repo) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	err := postgres.QueryRow(ctx, q, postgres.Builder.
		Select("count(*)").
		From("word_sets").
		Where(sq.Eq{"owner_id": ownerID})).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count word_sets: %w", err)
	}

	return n, nil
}

// LockOwner takes a transaction-scoped advisory lock on the device's library.
// Writers that check the set limit hold it until commit, so concurrent saves
// from one device are serialized. Outside a transaction the lock is released
// as soon as the statement ends.
func (r *Repo) LockOwner(ctx context.Context, ownerID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, ownerID.String()); err != nil {
		return fmt.Errorf("lock word_sets owner: %w", err)
	}

	return nil
}

// GetByID returns a set with its words ordered by position.
// Returns domain.ErrNotFound if the set does not exist or belongs to another device.
func (r *Repo) GetByID(ctx context.Context, ownerID, setID uuid.UUID) (*domain.SavedSet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	set, err := scanSet(postgres.QueryRow(ctx, q, selectSets().
		Where(sq.Eq{"id": setID, "owner_id": ownerID})))
	if err != nil {
		return nil, postgres.MapError(err, "word_set", setID)
	}

	words, err := r.wordsBySetIDs(ctx, q, []uuid.UUID{setID})
	if err != nil {
		return nil, err
	}
	set.Words = words[setID]
	if set.Words == nil {
		set.Words = []domain.SavedWord{}
	}

	return &set, nil
}

// ListFull returns every set of the device with its words, oldest first.
func (r *Repo) ListFull(ctx context.Context, ownerID uuid.UUID) ([]domain.SavedSet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, selectSets().
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at", "id"))
	if err != nil {
		return nil, fmt.Errorf("list word_sets: %w", err)
	}

	sets := []domain.SavedSet{}
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan word_set: %w", err)
		}
		sets = append(sets, set)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list word_sets: %w", err)
	}

	if len(sets) == 0 {
		return sets, nil
	}

	ids := make([]uuid.UUID, len(sets))
	for i := range sets {
		ids[i] = sets[i].ID
	}

	words, err := r.wordsBySetIDs(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range sets {
		sets[i].Words = words[sets[i].ID]
		if sets[i].Words == nil {
			sets[i].Words = []domain.SavedWord{}
		}
	}

	return sets, nil
}

func (r *Repo) wordsBySetIDs(ctx context.Context, q postgres.Querier, ids []uuid.UUID) (map[uuid.UUID][]domain.SavedWord, error) {
	rows, err := postgres.Query(ctx, q, postgres.Builder.
		Select("set_id", "position", "word", "meaning", "known").
		From("saved_words").
		Where(sq.Eq{"set_id": ids}).
		OrderBy("set_id", "position"))
	if err != nil {
		return nil, fmt.Errorf("list saved_words: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]domain.SavedWord, len(ids))
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved_word: %w", err)
		}
		result[w.SetID] = append(result[w.SetID], w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saved_words: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a set and its words. Word positions are taken from the
// slice order. Callers wrap it in a transaction so a failed word insert does
// not leave an empty set behind.
func (r *Repo) Create(ctx context.Context, set *domain.SavedSet) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert("word_sets").
		Columns("id", "owner_id", "name", "created_at", "updated_at").
		Values(set.ID, set.OwnerID, set.Name, set.CreatedAt, set.UpdatedAt))
	if err != nil {
		return postgres.MapError(err, "word_set", set.ID)
	}

	for start := 0; start < len(set.Words); start += insertChunk {
		end := min(start+insertChunk, len(set.Words))

		insert := postgres.Builder.
			Insert("saved_words").
			Columns("set_id", "position", "word", "meaning", "known")
		for i := start; i < end; i++ {
			w := &set.Words[i]
			w.SetID = set.ID
			w.Position = i
			insert = insert.Values(w.SetID, w.Position, w.Word, w.Meaning, w.Known)
		}

		if _, err := postgres.Exec(ctx, q, insert); err != nil {
			return postgres.MapError(err, "word_set", set.ID)
		}
	}

	return nil
}

// Rename changes the set name. Returns domain.ErrNotFound if the set does not
// exist or belongs to another device.
func (r *Repo) Rename(ctx context.Context, ownerID, setID uuid.UUID, name string, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Update("word_sets").
		Set("name", name).
		Set("updated_at", now).
		Where(sq.Eq{"id": setID, "owner_id": ownerID}))
	if err != nil {
		return postgres.MapError(err, "word_set", setID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word_set %s: %w", setID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a set and its words. Returns domain.ErrNotFound if the set
// does not exist or belongs to another device.
func (r *Repo) Delete(ctx context.Context, ownerID, setID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Delete("word_sets").
		Where(sq.Eq{"id": setID, "owner_id": ownerID}))
	if err != nil {
		return postgres.MapError(err, "word_set", setID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word_set %s: %w", setID, domain.ErrNotFound)
	}

	return nil
}

// DeleteAll removes every set of the device and returns how many were removed.
func (r *Repo) DeleteAll(ctx context.Context, ownerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Delete("word_sets").
		Where(sq.Eq{"owner_id": ownerID}))
	if err != nil {
		return 0, fmt.Errorf("delete all word_sets: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ToggleKnown flips the known flag of one word and returns the updated word.
// Returns domain.ErrNotFound if the set or position does not exist.
func (r *Repo) ToggleKnown(ctx context.Context, ownerID, setID uuid.UUID, position int) (*domain.SavedWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, toggleKnownSQL, ownerID, setID, position))
	if err != nil {
		return nil, postgres.MapError(err, "saved_word", setID)
	}

	return &w, nil
}

// ResetKnown clears every known flag of the set and returns how many words
// changed. Returns domain.ErrNotFound if the set does not exist or belongs to
// another device.
func (r *Repo) ResetKnown(ctx context.Context, ownerID, setID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := postgres.QueryRow(ctx, q, postgres.Builder.
		Select("true").
		From("word_sets").
		Where(sq.Eq{"id": setID, "owner_id": ownerID})).Scan(&exists)
	if err != nil {
		return 0, postgres.MapError(err, "word_set", setID)
	}

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Update("saved_words").
		Set("known", false).
		Where(sq.Eq{"set_id": setID, "known": true}))
	if err != nil {
		return 0, postgres.MapError(err, "word_set", setID)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func selectSets() sq.SelectBuilder {
	return postgres.Builder.
		Select("id", "owner_id", "name", "created_at", "updated_at").
		From("word_sets")
}

func scanSet(row pgx.Row) (domain.SavedSet, error) {
	var s domain.SavedSet
	err := row.Scan(&s.ID, &s.OwnerID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func scanWord(row pgx.Row) (domain.SavedWord, error) {
	var w domain.SavedWord
	err := row.Scan(&w.SetID, &w.Position, &w.Word, &w.Meaning, &w.Known)
	return w, err
}
