package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	state, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(state.Users) != 0 || len(state.Rooms) != 0 || len(state.AuthSession) != 0 {
		t.Errorf("missing file did not yield empty state: %+v", state)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	state := &State{
		Users: []UserRecord{
			{ID: "id-1", Username: "alice", Password: "digest-1", MobileToken: "tok-1"},
			{ID: "id-2", Username: "bob", Password: "digest-2"},
		},
		Rooms: []RoomRecord{
			{Name: "r1", GUID: "rm-1", Limit: 5, Host: "alice", Participants: []string{"bob"}},
		},
		AuthSession: map[string]int64{"alice": 1700000000000},
	}

	if err := m.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(state, loaded) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", state, loaded)
	}
}

func TestSaveOverwrites(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if err := m.Save(&State{Users: []UserRecord{{Username: "alice"}}}); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := m.Save(NewState()); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Users) != 0 {
		t.Errorf("second save did not overwrite: %+v", loaded.Users)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.Save(NewState()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != DefaultFileName {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("{not json"), 0640); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := m.Load(); err == nil {
		t.Error("Load succeeded on corrupt snapshot")
	}
}

func TestPersistedFieldNames(t *testing.T) {
	// The on-disk shape is a compatibility contract with earlier
	// deployments; field names must stay exactly as documented.
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	state := &State{
		Users:       []UserRecord{{ID: "id-1", Username: "alice", Password: "d", MobileToken: "tk"}},
		Rooms:       []RoomRecord{{Name: "r1", GUID: "rm-1", Limit: 2, Host: "alice", Participants: []string{}}},
		AuthSession: map[string]int64{"alice": 42},
	}
	if err := m.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	for _, key := range []string{"users", "rooms", "authSession"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("top-level key %q missing from snapshot", key)
		}
	}

	var users []map[string]any
	if err := json.Unmarshal(decoded["users"], &users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	for _, key := range []string{"_id", "username", "password", "mobile_token"} {
		if _, ok := users[0][key]; !ok {
			t.Errorf("user key %q missing from snapshot", key)
		}
	}
}
