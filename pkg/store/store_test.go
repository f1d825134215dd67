package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type record struct {
	Id    string `json:"id"`
	Likes int64  `json:"likes"`
}

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(rdb, "test")
}

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func backends(t *testing.T) map[string]Store {
	return map[string]Store{
		"file":  newFileStore(t),
		"redis": newRedisStore(t),
	}
}

func TestLoadEmptyKind(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got, err := Load[record](ctx, s, Videos)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Fatalf("Load on fresh store = %#v, want empty slice", got)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			in := []record{{Id: "v1", Likes: 3}, {Id: "v2"}}
			if err := Save(ctx, s, Videos, in); err != nil {
				t.Fatalf("Save: %v", err)
			}
			out, err := Load[record](ctx, s, Videos)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
				t.Fatalf("Load = %#v, want %#v", out, in)
			}
			other, err := Load[record](ctx, s, Posts)
			if err != nil || len(other) != 0 {
				t.Fatalf("Posts should be untouched, got %#v, %v", other, err)
			}
		})
	}
}

func TestUnknownKind(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Read(ctx, Kind("../etc/passwd")); err == nil {
				t.Fatal("expected error for unknown kind")
			}
			if err := s.Write(ctx, Kind("bogus"), []byte("[]")); err == nil {
				t.Fatal("expected error for unknown kind")
			}
		})
	}
}

func TestFileStoreCreatesFileLazily(t *testing.T) {
	s := newFileStore(t)
	path := filepath.Join(s.dir, "users.json")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("users.json should not exist before first read")
	}
	if _, err := s.Read(context.Background(), Users); err != nil {
		t.Fatalf("Read: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("users.json not created: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("users.json = %q, want []", data)
	}
}

func TestFileStoreCreateKeepsExistingData(t *testing.T) {
	s := newFileStore(t)
	path := filepath.Join(s.dir, "videos.json")
	if err := os.WriteFile(path, []byte(`[{"id":"v1","likes":2}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	created, err := s.create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created {
		t.Fatal("create must not report a file that already exists")
	}
	out, err := Load[record](context.Background(), s, Videos)
	if err != nil || len(out) != 1 || out[0].Likes != 2 {
		t.Fatalf("Load = %#v, %v", out, err)
	}
}

func TestFileStoreConcurrentFirstUse(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()
	want := []record{{Id: "v1", Likes: 7}}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Read(ctx, Videos); err != nil {
				t.Errorf("Read: %v", err)
			}
		}()
	}
	if err := Save(ctx, s, Videos, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	wg.Wait()

	out, err := Load[record](ctx, s, Videos)
	if err != nil || len(out) != 1 || out[0] != want[0] {
		t.Fatalf("saved data lost to lazy creation: %#v, %v", out, err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	s := newFileStore(t)
	if err := Save(context.Background(), s, Messages, []record{{Id: "m1"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "messages.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("store dir contains %v, want only messages.json", names)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	s := newFileStore(t)
	if err := os.WriteFile(filepath.Join(s.dir, "posts.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load[record](context.Background(), s, Posts); err == nil {
		t.Fatal("expected decode error for corrupt file")
	}
}

func TestGormStore(t *testing.T) {
	dsn := os.Getenv("FLOWTUBE_TEST_MYSQL_DSN")
	if testing.Short() || dsn == "" {
		t.Skip("Skipping MySQL integration test, set FLOWTUBE_TEST_MYSQL_DSN to run it")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open mysql: %v", err)
	}
	s, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("NewGormStore: %v", err)
	}
	ctx := context.Background()
	if err := Save(ctx, s, Notifications, []record{{Id: "n1"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load[record](ctx, s, Notifications)
	if err != nil || len(out) != 1 || out[0].Id != "n1" {
		t.Fatalf("Load = %#v, %v", out, err)
	}
}
