package view

import (
	"net/url"
	"testing"

	"archivehub/internal/archive"
)

func known(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

func TestResolve_HashBeatsDetailParam(t *testing.T) {
	q := url.Values{"v": {"20240101-A"}}
	rt := Resolve("support", q, known("20240101-A"))
	if rt.Mode != ModeSupport {
		t.Fatalf("got %v", rt.Mode)
	}
	if rt.CanonicalQuery != "" {
		t.Errorf("support view must strip v from the URL, got %q", rt.CanonicalQuery)
	}

	if rt := Resolve("#contact", q, known("20240101-A")); rt.Mode != ModeContact {
		t.Errorf("got %v", rt.Mode)
	}
}

func TestResolve_Detail(t *testing.T) {
	rt := Resolve("", url.Values{"v": {"20240101-A"}}, known("20240101-A"))
	if rt.Mode != ModeDetail || rt.VideoID != "20240101-A" {
		t.Fatalf("got %+v", rt)
	}
	if rt.CanonicalQuery != "v=20240101-A" {
		t.Errorf("detail keeps its v parameter, got %q", rt.CanonicalQuery)
	}
}

func TestResolve_UnknownDetailFallsBackToList(t *testing.T) {
	rt := Resolve("", url.Values{"v": {"UNKNOWN-ID"}}, known("20240101-A"))
	if rt.Mode != ModeList {
		t.Fatalf("got %v", rt.Mode)
	}
	if rt.CanonicalQuery != "" {
		t.Errorf("v parameter must be removed, got %q", rt.CanonicalQuery)
	}
	if !rt.State.IsDefault() {
		t.Errorf("state should reset to defaults, got %+v", rt.State)
	}
}

func TestResolve_ListRestoresState(t *testing.T) {
	q := url.Values{
		"q":      {"waves"},
		"topics": {"physics,math"},
		"sort":   {"oldest"},
	}
	rt := Resolve("", q, known())
	if rt.Mode != ModeList {
		t.Fatalf("got %v", rt.Mode)
	}
	if rt.State.Query != "waves" || rt.State.Sort != archive.SortOldest {
		t.Errorf("got %+v", rt.State)
	}
	if _, ok := rt.State.Topics["physics"]; !ok {
		t.Errorf("topics not restored: %v", rt.State.Topics)
	}
	if _, ok := rt.State.Topics["math"]; !ok {
		t.Errorf("topics not restored: %v", rt.State.Topics)
	}
}

func TestResolve_DefaultList(t *testing.T) {
	rt := Resolve("", url.Values{}, known())
	if rt.Mode != ModeList || !rt.State.IsDefault() || rt.CanonicalQuery != "" {
		t.Fatalf("got %+v", rt)
	}
}

func TestEncodeState_OmitsDefaults(t *testing.T) {
	if got := EncodeState(archive.DefaultState()); got != "" {
		t.Errorf("default state encodes empty, got %q", got)
	}

	st := archive.FilterState{
		Query:  "waves",
		Sort:   archive.SortAZ,
		Topics: archive.SelectTopics([]string{"b", "a"}),
	}
	got := EncodeState(st)
	want := "q=waves&sort=az&topics=a%2Cb"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeState_NewestSortOmitted(t *testing.T) {
	st := archive.FilterState{Query: "x", Sort: archive.SortNewest}
	if got := EncodeState(st); got != "q=x" {
		t.Errorf("got %q", got)
	}
}
