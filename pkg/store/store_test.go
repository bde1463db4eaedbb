package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type item struct {
	ID   string `json:"id"`
	Done bool   `json:"done"`
}

func openDisk(t *testing.T) *Disk {
	t.Helper()
	d, err := Open(PathConfig(t.TempDir()), nil)
	require.NoError(t, err)
	return d
}

func TestKVImplementations(t *testing.T) {
	stores := map[string]KV{
		"disk":   openDisk(t),
		"memory": NewMemory(nil),
	}
	for name, kv := range stores {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Read(KeyGoals)
			require.ErrorIs(t, err, ErrNotFound)
			assert.False(t, kv.Has(KeyGoals))

			require.NoError(t, kv.Write(KeyGoals, []byte(`[]`)))
			assert.True(t, kv.Has(KeyGoals))
			got, err := kv.Read(KeyGoals)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(got))

			require.NoError(t, kv.Write(KeyGoals, []byte(`[1]`)))
			got, err = kv.Read(KeyGoals)
			require.NoError(t, err)
			assert.Equal(t, "[1]", string(got))

			require.NoError(t, kv.Erase(KeyGoals))
			require.NoError(t, kv.Erase(KeyGoals), "erasing twice is fine")
			assert.False(t, kv.Has(KeyGoals))
		})
	}
}

func TestDiskKeepsOneFilePerKey(t *testing.T) {
	d := openDisk(t)
	require.NoError(t, d.Write(KeyLessons, []byte(`[]`)))

	data, err := os.ReadFile(filepath.Join(d.BasePath(), KeyLessons))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDiskReadsSeeOtherWriters(t *testing.T) {
	dir := t.TempDir()
	mine, err := Open(PathConfig(dir), nil)
	require.NoError(t, err)
	other, err := Open(PathConfig(dir), nil)
	require.NoError(t, err)

	require.NoError(t, mine.Write(KeyGoals, []byte(`[]`)))
	got, err := mine.Read(KeyGoals)
	require.NoError(t, err)
	require.Equal(t, "[]", string(got))

	require.NoError(t, other.Write(KeyGoals, []byte(`[{"id":"1","title":"x"}]`)))
	got, err = mine.Read(KeyGoals)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1","title":"x"}]`, string(got), "a long-lived store must not serve a cached value")

	require.NoError(t, other.Erase(KeyGoals))
	_, err = mine.Read(KeyGoals)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskWritesLeaveNoTempFiles(t *testing.T) {
	d := openDisk(t)
	require.NoError(t, d.Write(KeyGoals, []byte(`[]`)))
	require.NoError(t, d.Write(KeyGoals, []byte(`[{"id":"1","title":"x"}]`)))

	entries, err := os.ReadDir(d.BasePath())
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{KeyGoals, tempDirName}, names)

	tmp, err := os.ReadDir(filepath.Join(d.BasePath(), tempDirName))
	require.NoError(t, err)
	assert.Empty(t, tmp, "temp files are renamed into place")
}

func TestJSONRepository(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory(nil)
	repo := NewJSON[[]item](kv, KeyLessons, nil)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "missing key loads as nil")

	require.NoError(t, repo.Save(ctx, []item{}))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got, "stored empty list stays distinguishable from missing")
	assert.Empty(t, got)

	want := []item{{ID: "1"}, {ID: "2", Done: true}}
	require.NoError(t, repo.Save(ctx, want))
	assert.Equal(t, `[{"id":"1","done":false},{"id":"2","done":true}]`, kv.String(KeyLessons))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJSONRepositoryMalformed(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	kv := NewMemory(map[string]string{KeyLessons: `{"not":"a list"}`})
	repo := NewJSON[[]item](kv, KeyLessons, zap.New(core))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "discarding malformed stored value", entry.Message)
	assert.Equal(t, KeyLessons, entry.ContextMap()["key"])
}

func TestTextRepository(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory(nil)
	repo := NewText(kv, KeyEnglishPosition)

	s, ok, err := repo.Lookup(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, s)

	require.NoError(t, repo.Save(ctx, "Unit 4, page 12"))
	s, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Unit 4, page 12", s)
	assert.Equal(t, "Unit 4, page 12", kv.String(KeyEnglishPosition), "text is stored unencoded")
}

func TestClearAll(t *testing.T) {
	seed := map[string]string{}
	for _, k := range AllKeys() {
		seed[k] = "x"
	}
	seed["unrelated"] = "keep"
	kv := NewMemory(seed)

	require.NoError(t, ClearAll(kv))
	for _, k := range AllKeys() {
		assert.False(t, kv.Has(k), k)
	}
	assert.True(t, kv.Has("unrelated"))
}

func TestMemoryWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	kv := NewMemory(nil)
	ch, err := kv.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, kv.Write(KeyPrayers, []byte(`[]`)))
	require.NoError(t, kv.Erase(KeyPrayers))

	assert.Equal(t, Event{Type: EventWritten, Key: KeyPrayers}, <-ch)
	assert.Equal(t, Event{Type: EventErased, Key: KeyPrayers}, <-ch)

	cancel()
	for range ch {
	}
}

func TestDiskWatchEmitsKeyChanges(t *testing.T) {
	d := openDisk(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := d.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, d.Write(KeyGoals, []byte(`[]`)))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			assert.Equal(t, KeyGoals, evt.Key)
			return
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestKeyForPath(t *testing.T) {
	d := &Disk{basePath: filepath.Join("base")}
	tests := map[string]string{
		filepath.Join("base", KeyGoals):          KeyGoals,
		filepath.Join("base", ".hidden"):         "",
		filepath.Join("base", "dir", "nested"):   "",
		"base":                                   "",
		filepath.Join("elsewhere", "nafs-goals"): "",
	}
	for path, want := range tests {
		assert.Equal(t, want, d.keyForPath(path), path)
	}
}
