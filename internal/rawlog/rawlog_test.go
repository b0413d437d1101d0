package rawlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(repo string, fetchTime float64) schema.Snapshot {
	return schema.Snapshot{
		Time:     fetchTime,
		Repo:     repo,
		Stars:    10,
		Watchers: 3,
		Forks:    2,
		Clones: schema.TrafficWindow{
			Count:   5,
			Uniques: 2,
			Daily:   []schema.TrafficDay{{Date: "2024-03-10", Count: 5, Uniques: 2}},
		},
		Views: schema.TrafficWindow{
			Count:   9,
			Uniques: 4,
			Daily:   []schema.TrafficDay{{Date: "2024-03-12", Count: 9, Uniques: 4}},
		},
	}
}

func TestAppendReadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "raw.jsonl"))

	first := sampleSnapshot("acme/widget", 100)
	second := sampleSnapshot("acme/gadget", 200)
	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	snaps, err := store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []schema.Snapshot{first, second}, snaps)
}

func TestReadAllMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.jsonl"))

	_, err := store.ReadAll()
	assert.ErrorIs(t, err, ErrMissing)
}

func TestReadAllEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.jsonl")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewStore(path).ReadAll()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReadAllSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.jsonl")
	content := "\n" + `{"time":1,"repo":"acme/widget"}` + "\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	snaps, err := NewStore(path).ReadAll()
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "acme/widget", snaps[0].Repo)
}

func TestReadAllMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{not json}\n"), 0o644))

	_, err := NewStore(path).ReadAll()
	assert.ErrorContains(t, err, "line 1")
}
