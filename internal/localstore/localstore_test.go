package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "localstore.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := testStore(t)
	var v []string
	ok, err := s.Get(KeyFavoriteIDs, &v)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected missing key")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := testStore(t)
	if err := s.Put(KeyLikes, []string{"1", "user_42"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	var got []string
	ok, err := s.Get(KeyLikes, &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[0] != "1" || got[1] != "user_42" {
		t.Errorf("got %v", got)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localstore.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Put("petfriendly_guest", "부산"); err != nil {
		t.Fatalf("put: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	var city string
	ok, err := s2.Get("petfriendly_guest", &city)
	if err != nil || !ok || city != "부산" {
		t.Fatalf("got %q ok=%v err=%v", city, ok, err)
	}
}

func TestRemove(t *testing.T) {
	s := testStore(t)
	if err := s.Put(CommentsKey("user_1"), []string{"c"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Remove(CommentsKey("user_1")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	var v []string
	if ok, _ := s.Get(CommentsKey("user_1"), &v); ok {
		t.Error("key survived removal")
	}
	if err := s.Remove("never_existed"); err != nil {
		t.Errorf("removing missing key: %v", err)
	}
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localstore.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
