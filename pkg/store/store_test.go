package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"idlepoker-server/internal/config"
	"idlepoker-server/pkg/db"
)

// testStore runs the behaviour every store shares
func testStore(t *testing.T, s Store) {
	t.Helper()

	a := assert.New(t)
	ctx := context.Background()

	_ = s.Delete(ctx)

	data, err := s.Load(ctx)
	a.Equal(ErrNotFound, err)
	a.Nil(data)

	a.NoError(s.Save(ctx, []byte(`{"chips":1}`)))
	data, err = s.Load(ctx)
	a.NoError(err)
	a.JSONEq(`{"chips":1}`, string(data))

	a.NoError(s.Save(ctx, []byte(`{"chips":2}`)))
	data, err = s.Load(ctx)
	a.NoError(err)
	a.JSONEq(`{"chips":2}`, string(data))

	a.NoError(s.Delete(ctx))
	_, err = s.Load(ctx)
	a.Equal(ErrNotFound, err)

	a.NoError(s.Delete(ctx))
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestMemory_copies(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	m := NewMemory()
	data := []byte(`{"chips":1}`)
	a.NoError(m.Save(ctx, data))
	data[2] = 'x'

	loaded, _ := m.Load(ctx)
	a.Equal(`{"chips":1}`, string(loaded))
	loaded[2] = 'x'

	loaded, _ = m.Load(ctx)
	a.Equal(`{"chips":1}`, string(loaded))
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	testStore(t, NewFile(path))

	// no temporary files are left behind
	f := NewFile(path)
	require.NoError(t, f.Save(context.Background(), []byte(`{}`)))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFile_missingDir(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nope", "save.json"))
	assert.Error(t, f.Save(context.Background(), []byte(`{}`)))
}

func TestRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	testStore(t, NewRedis(rdb, "alice"))

	// slots do not collide
	ctx := context.Background()
	alice := NewRedis(rdb, "alice")
	bob := NewRedis(rdb, "bob")
	require.NoError(t, alice.Save(ctx, []byte(`{"chips":1}`)))
	_, err = bob.Load(ctx)
	assert.Equal(t, ErrNotFound, err)

	got, err := mr.Get("idlepoker:save:alice")
	assert.NoError(t, err)
	assert.Equal(t, `{"chips":1}`, got)
	assert.Equal(t, 0, int(mr.TTL("idlepoker:save:alice")))
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		t.Skip("PG_DSN is not set")
	}

	dbh, err := db.Open(dsn)
	require.NoError(t, err)
	defer dbh.Close()

	testStore(t, NewPostgres(dbh, "test-postgres"))
}

func TestNew(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	cfg := config.DefaultConfig()
	cfg.Store.Driver = config.StoreMemory
	s, err := New(ctx, cfg)
	a.NoError(err)
	a.IsType(&Memory{}, s)

	cfg.Store.Driver = config.StoreFile
	cfg.Store.Path = filepath.Join(t.TempDir(), "save.json")
	s, err = New(ctx, cfg)
	a.NoError(err)
	a.IsType(&File{}, s)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg.Store.Driver = config.StoreRedis
	cfg.Redis.Addr = mr.Addr()
	s, err = New(ctx, cfg)
	a.NoError(err)
	a.IsType(&Redis{}, s)

	cfg.Store.Driver = "sqlite"
	_, err = New(ctx, cfg)
	a.EqualError(err, "unknown store driver: sqlite")
}
