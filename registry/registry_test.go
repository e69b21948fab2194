package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func testEntry(alias string) *Entry {
	return &Entry{
		Spec: &Spec{
			Accessor: "Items",
			Kind:     "literal",
			Method:   alias,
			Alias:    alias,
			Direct:   true,
		},
		Forward: func(receiver interface{}, args []interface{}) ([]interface{}, error) {
			return []interface{}{alias}, nil
		},
	}
}

func TestNew(t *testing.T) {
	reg := New()
	if reg == nil {
		t.Fatal("New() returned nil")
	}
	if reg.entries == nil {
		t.Error("Registry.entries is nil")
	}
}

func TestInstall_Success(t *testing.T) {
	reg := New()
	if err := reg.Install(testEntry("Push")); err != nil {
		t.Errorf("Install() returned error: %v", err)
	}
	if !reg.Has("Push") {
		t.Error("entry not found after Install()")
	}
}

func TestInstall_Nil(t *testing.T) {
	reg := New()
	if err := reg.Install(nil); err == nil {
		t.Error("Install(nil) should return error")
	}
}

func TestInstall_MissingAlias(t *testing.T) {
	reg := New()
	entry := testEntry("Push")
	entry.Spec.Alias = ""
	if err := reg.Install(entry); err == nil {
		t.Error("Install() without alias should return error")
	}
}

func TestInstall_MissingForwarder(t *testing.T) {
	reg := New()
	entry := testEntry("Push")
	entry.Forward = nil
	if err := reg.Install(entry); err == nil {
		t.Error("Install() without forwarder should return error")
	}
}

// Installing the same alias twice silently replaces the earlier entry.
func TestInstall_Replaces(t *testing.T) {
	reg := New()
	first := testEntry("Push")
	second := testEntry("Push")
	second.Spec.Accessor = "Backup"

	if err := reg.Install(first); err != nil {
		t.Fatalf("first Install() failed: %v", err)
	}
	if err := reg.Install(second); err != nil {
		t.Fatalf("second Install() failed: %v", err)
	}

	entry, err := reg.Get("Push")
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if entry.Spec.Accessor != "Backup" {
		t.Errorf("Get() returned stale entry with accessor %q", entry.Spec.Accessor)
	}
}

func TestGet_NotFound(t *testing.T) {
	reg := New()
	_, err := reg.Get("Absent")
	if err == nil {
		t.Fatal("Get() for missing alias should return error")
	}
	var notFound *DelegatorNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Expected DelegatorNotFoundError, got %T", err)
	}
	if notFound.Alias != "Absent" {
		t.Errorf("error alias = %q, want %q", notFound.Alias, "Absent")
	}
}

func TestRemove(t *testing.T) {
	reg := New()
	if err := reg.Install(testEntry("Push")); err != nil {
		t.Fatalf("Install() failed: %v", err)
	}

	if !reg.Remove("Push") {
		t.Error("Remove() should report removal")
	}
	if reg.Has("Push") {
		t.Error("entry still present after Remove()")
	}
	if reg.Remove("Push") {
		t.Error("second Remove() should report nothing to remove")
	}
}

func TestAliases_Sorted(t *testing.T) {
	reg := New()
	for _, alias := range []string{"Size", "Push", "Last"} {
		if err := reg.Install(testEntry(alias)); err != nil {
			t.Fatalf("Install(%s) failed: %v", alias, err)
		}
	}

	want := []string{"Last", "Push", "Size"}
	if got := reg.Aliases(); !reflect.DeepEqual(got, want) {
		t.Errorf("Aliases() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			alias := fmt.Sprintf("Method%d", n)
			if err := reg.Install(testEntry(alias)); err != nil {
				t.Errorf("Install(%s) returned error: %v", alias, err)
			}
			if _, err := reg.Get(alias); err != nil {
				t.Errorf("Get(%s) returned error: %v", alias, err)
			}
		}(i)
	}
	wg.Wait()

	if got := len(reg.Aliases()); got != 10 {
		t.Errorf("Aliases() has %d entries, want 10", got)
	}
}
