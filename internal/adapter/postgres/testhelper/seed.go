package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// SeedSet inserts a set with n words for the owner and returns it.
// Words are named "word-<i>" / "meaning-<i>"; every odd position is known.
func SeedSet(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, name string, n int) domain.SavedSet {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	set := domain.SavedSet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO word_sets (id, owner_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		set.ID, set.OwnerID, set.Name, set.CreatedAt, set.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSet insert word_set: %v", err)
	}

	set.Words = make([]domain.SavedWord, n)
	for i := range n {
		w := domain.SavedWord{
			SetID:    set.ID,
			Position: i,
			Word:     fmt.Sprintf("word-%d", i),
			Meaning:  fmt.Sprintf("meaning-%d", i),
			Known:    i%2 == 1,
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO saved_words (set_id, position, word, meaning, known)
			 VALUES ($1, $2, $3, $4, $5)`,
			w.SetID, w.Position, w.Word, w.Meaning, w.Known,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedSet insert saved_word[%d]: %v", i, err)
		}
		set.Words[i] = w
	}

	return set
}
