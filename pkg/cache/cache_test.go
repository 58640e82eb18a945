package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	serrors "github.com/matzehuels/seedbed/pkg/errors"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	want := []byte(`[{"x":1,"y":2}]`)
	if err := c.Set(ctx, "bed:v1:abc", want, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, hit, err := c.Get(ctx, "bed:v1:abc")
	if err != nil || !hit {
		t.Fatalf("Get after Set = hit %v, err %v", hit, err)
	}
	if string(got) != string(want) {
		t.Errorf("Get = %s, want %s", got, want)
	}

	if err := c.Delete(ctx, "bed:v1:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "bed:v1:abc"); hit {
		t.Error("entry still present after Delete")
	}
	if err := c.Delete(ctx, "bed:v1:abc"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry returned as hit")
	}
	if _, err := os.Stat(c.path("short")); !os.IsNotExist(err) {
		t.Error("expired entry file not removed")
	}

	if err := c.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero ttl entry should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	path := c.path("broken")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "broken"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v; want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry file not removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry survived Clear")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir removed by Clear: %v", err)
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	base := BedKeyOpts{
		Shape:      ShapeKeyOpts{Shape: "rectangle", Width: 96, Height: 48},
		Mode:       "regions",
		Boundaries: []float64{0.5},
		Groups: []GroupKeyOpts{
			{Spacing: 12, Pattern: "grid"},
			{Spacing: 6, Pattern: "hexagonal"},
		},
	}

	key := k.BedKey(base)
	if !strings.HasPrefix(key, "bed:"+keyVersion+":") {
		t.Errorf("BedKey = %q, want bed:%s: prefix", key, keyVersion)
	}
	if key != k.BedKey(base) {
		t.Error("BedKey should be deterministic")
	}

	tests := []struct {
		name   string
		mutate func(o *BedKeyOpts)
	}{
		{"width", func(o *BedKeyOpts) { o.Shape.Width = 97 }},
		{"mode", func(o *BedKeyOpts) { o.Mode = "flat" }},
		{"boundary", func(o *BedKeyOpts) { o.Boundaries = []float64{0.4} }},
		{"spacing", func(o *BedKeyOpts) { o.Groups[1].Spacing = 7 }},
		{"order", func(o *BedKeyOpts) { o.Groups[0], o.Groups[1] = o.Groups[1], o.Groups[0] }},
		{"fill", func(o *BedKeyOpts) { o.Groups[0].FillMethod = "count"; o.Groups[0].FillValue = 3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			opts.Groups = append([]GroupKeyOpts(nil), base.Groups...)
			tt.mutate(&opts)
			if k.BedKey(opts) == key {
				t.Errorf("changing %s did not change the key", tt.name)
			}
		})
	}

	pk := k.PlacementKey(PlacementKeyOpts{Shape: base.Shape, Group: base.Groups[0]})
	if !strings.HasPrefix(pk, "place:") {
		t.Errorf("PlacementKey = %q, want place: prefix", pk)
	}
}

func TestScopedKeyer(t *testing.T) {
	opts := BedKeyOpts{Shape: ShapeKeyOpts{Shape: "circle", Radius: 24}, Mode: "regions"}
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "garden:north:")

	if got, want := scoped.BedKey(opts), "garden:north:"+inner.BedKey(opts); got != want {
		t.Errorf("BedKey = %q, want %q", got, want)
	}
	popts := PlacementKeyOpts{Shape: opts.Shape}
	if got := scoped.PlacementKey(popts); !strings.HasPrefix(got, "garden:north:place:") {
		t.Errorf("PlacementKey = %q", got)
	}

	if NewScopedKeyer(nil, "x:").BedKey(opts) != "x:"+inner.BedKey(opts) {
		t.Error("nil inner keyer should fall back to the default keyer")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache("not a url"); err == nil {
		t.Error("expected error for invalid redis url")
	}
	c, err := NewRedisCache("redis://localhost:6379/2")
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
}

func TestRedisCacheUnreachable(t *testing.T) {
	c, err := NewRedisCache("redis://127.0.0.1:1/0")
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	err = c.Ping(ctx)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Ping error = %v, want ErrUnavailable", err)
	}
	if !serrors.Is(err, serrors.ErrCodeCacheUnavailable) {
		t.Errorf("Ping error code = %q, want %s", serrors.GetCode(err), serrors.ErrCodeCacheUnavailable)
	}
	if _, _, err := c.Get(ctx, "key"); !serrors.Is(err, serrors.ErrCodeCacheUnavailable) {
		t.Errorf("Get error = %v, want code %s", err, serrors.ErrCodeCacheUnavailable)
	}
}
