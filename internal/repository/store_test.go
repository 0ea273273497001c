package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopkart/backend/internal/model"
	"shopkart/backend/internal/repository"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../.env")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(context.Background()))

	_, err = pool.Exec(context.Background(), "TRUNCATE TABLE order_items, orders, cart, wishlist, products, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return pool
}

func seedUserAndProduct(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	_, err := pool.Exec(ctx, "INSERT INTO users (username, email, password) VALUES ('alice', 'alice@example.com', 'hash')")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO products (uniq_id, product_name, retail_price, discounted_price, images, description)
		VALUES ('p1', 'Sneakers', 999, 499.50, ARRAY['http://img/a.jpg'], 'running shoes')`)
	require.NoError(t, err)
}

func TestAddWishlistEntry_IsIdempotent(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	seedUserAndProduct(t, pool)

	store := repository.NewStore(pool)
	require.NoError(t, store.AddWishlistEntry(ctx, "alice", "p1"))
	require.NoError(t, store.AddWishlistEntry(ctx, "alice", "p1"))

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM wishlist WHERE username = 'alice'").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestAddCartEntry_MergesQuantity(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	seedUserAndProduct(t, pool)

	store := repository.NewStore(pool)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.AddCartEntry(ctx, "alice", "p1"))
	}

	var rows, quantity int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM cart WHERE username = 'alice'").Scan(&rows))
	require.NoError(t, pool.QueryRow(ctx, "SELECT quantity FROM cart WHERE username = 'alice' AND uniq_id = 'p1'").Scan(&quantity))
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3, quantity)
}

func TestUpsertProduct_NeverOverwrites(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	store := repository.NewStore(pool)

	inserted, err := store.UpsertProduct(ctx, model.Product{UniqID: "p1", Name: "Sneakers", RetailPrice: 999, DiscountedPrice: 499.5})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = store.UpsertProduct(ctx, model.Product{UniqID: "p1", Name: "Different Name", RetailPrice: 1, DiscountedPrice: 1})
	require.NoError(t, err)
	assert.False(t, inserted)

	var name string
	require.NoError(t, pool.QueryRow(ctx, "SELECT product_name FROM products WHERE uniq_id = 'p1'").Scan(&name))
	assert.Equal(t, "Sneakers", name)
}

func TestRunAtomic_RollsBackOnError(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	seedUserAndProduct(t, pool)

	store := repository.NewStore(pool)
	boom := errors.New("boom")

	var orderID int
	err := store.RunAtomic(ctx, func(ctx context.Context) error {
		var err error
		orderID, err = store.CreateOrder(ctx, "alice")
		if err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = store.OrderByID(ctx, orderID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "order created inside a failed transaction must not be visible")

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	store := repository.NewStore(pool)
	require.NoError(t, store.CreateUser(ctx, "alice", "alice@example.com", "hash-1"))

	err := store.CreateUser(ctx, "alice", "other@example.com", "hash-2")
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}
