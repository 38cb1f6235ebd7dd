// Package testutil locates and loads the shared test fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/gbfs"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/trips"
)

// GetTestDataPath returns absolute path to testdata/
func GetTestDataPath() string {
	wd, _ := os.Getwd()
	for {
		testdataPath := filepath.Join(wd, "testdata")
		if _, err := os.Stat(testdataPath); err == nil {
			return testdataPath
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			panic("Could not find testdata directory")
		}
		wd = parent
	}
}

// Path returns the absolute path of a fixture file.
func Path(name string) string {
	return filepath.Join(GetTestDataPath(), name)
}

// ReadFixture returns a fixture's bytes.
func ReadFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(Path(name))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return b
}

// LoadStations parses testdata/stations.json.
func LoadStations(t *testing.T) *gbfs.StationIndex {
	t.Helper()
	idx, err := gbfs.NewStationIndexFromBytes(ReadFixture(t, "stations.json"))
	if err != nil {
		t.Fatalf("Failed to load station fixture: %v", err)
	}
	return idx
}

// LoadTrips parses testdata/trips.csv with timestamps in UTC.
func LoadTrips(t *testing.T) []trips.Trip {
	t.Helper()
	f, err := os.Open(Path("trips.csv"))
	if err != nil {
		t.Fatalf("Failed to open trip fixture: %v", err)
	}
	defer f.Close()
	ts, err := trips.ParseTrips(f, time.UTC)
	if err != nil {
		t.Fatalf("Failed to load trip fixture: %v", err)
	}
	return ts
}
