package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/and161185/wishlink/internal/errs"
	"github.com/and161185/wishlink/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewWishlistRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectExec(`INSERT INTO wishlists \(id, name, owner, secret_hash\) VALUES \(\$1, \$2, NULLIF\(\$3, ''\), \$4\)`).
		WithArgs(id, "Travel Gear", "alice", []byte(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, &model.Wishlist{ID: id, Name: "Travel Gear", Owner: "alice"}))
}

func TestWishlistRepo_Get(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewWishlistRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT id, name, COALESCE\(owner, ''\), secret_hash, created_at FROM wishlists WHERE id=\$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "owner", "secret_hash", "created_at"}).
			AddRow(id, "Travel Gear", "alice", []byte(nil), time.Now()))
	w, err := r.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice", w.Owner)

	mock.ExpectQuery(`SELECT id, name, COALESCE\(owner, ''\), secret_hash, created_at FROM wishlists WHERE id=\$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Get(ctx, id)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestWishlistRepo_ListByOwner(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewWishlistRepo(db)
	ctx := context.Background()
	id1 := uuid.Must(uuid.NewV4())
	id2 := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT id, name, COALESCE\(owner, ''\), secret_hash, created_at FROM wishlists WHERE owner=\$1 ORDER BY created_at ASC`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "owner", "secret_hash", "created_at"}).
			AddRow(id1, "Travel Gear", "alice", []byte(nil), time.Now()).
			AddRow(id2, "Books", "alice", []byte(nil), time.Now()))
	ws, err := r.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, ws, 2)
	require.Equal(t, id1, ws[0].ID)

	// No lists is an empty result, not an error.
	mock.ExpectQuery(`SELECT id, name, COALESCE\(owner, ''\), secret_hash, created_at FROM wishlists WHERE owner=\$1 ORDER BY created_at ASC`).
		WithArgs("bob").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "owner", "secret_hash", "created_at"}))
	ws, err = r.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, ws)
}
