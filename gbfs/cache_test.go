package gbfs_test

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/gbfs"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal/testutil"
)

func TestIndexCache_File(t *testing.T) {
	idx := testutil.LoadStations(t)
	path := filepath.Join(t.TempDir(), "stations.gob")

	if err := gbfs.SerializeIndexToFile(idx, path); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	got, err := gbfs.DeserializeIndexFromFile(path)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if !reflect.DeepEqual(got.All(), idx.All()) {
		t.Error("stations differ after cache load")
	}
	// the lookup map is rebuilt on load
	if st, ok := got.Get("B32006"); !ok || st.StationID != "117" {
		t.Errorf("lookup after load failed: %+v %v", st, ok)
	}
	t.Logf("✓ Cached %d stations to %s", got.Len(), path)
}

func TestIndexCache_Errors(t *testing.T) {
	if _, err := gbfs.DeserializeIndexFromFile(filepath.Join(t.TempDir(), "missing.gob")); err == nil {
		t.Error("expected error for missing cache file")
	}
	if _, err := gbfs.DeserializeIndexFromReader(bytes.NewReader([]byte("garbage"))); err == nil {
		t.Error("expected error for corrupt cache")
	}
}
