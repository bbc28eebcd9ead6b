package feed

import (
	"reflect"
	"testing"
)

func TestMapRow_Full(t *testing.T) {
	row := map[string]string{
		"id":         "20240115_QM_2",
		"title":      "Quantum Measurement",
		"url":        "https://www.youtube.com/watch?v=abc123",
		"date":       "2024-01-15",
		"topics":     "quantum; measurement",
		"thumb":      "",
		"notes":      "a closer look",
		"ref_papers": "P1|10.1000/xyz|good intro",
		"related":    "20240101-A; 20240102-B",
	}

	v := MapRow(row)

	if v.ID != "20240115-QM-2" {
		t.Errorf("id normalization: got %q", v.ID)
	}
	if v.Thumb != "https://img.youtube.com/vi/abc123/hqdefault.jpg" {
		t.Errorf("thumb fallback: got %q", v.Thumb)
	}
	if !reflect.DeepEqual(v.Topics, []string{"quantum", "measurement"}) {
		t.Errorf("topics: got %v", v.Topics)
	}
	if !reflect.DeepEqual(v.Related, []string{"20240101-A", "20240102-B"}) {
		t.Errorf("related: got %v", v.Related)
	}
	if len(v.Refs.Papers) != 1 || v.Refs.Papers[0].Link != "https://doi.org/10.1000/xyz" {
		t.Errorf("refs: got %+v", v.Refs.Papers)
	}
}

func TestMapRow_ExplicitThumbWins(t *testing.T) {
	row := map[string]string{
		"id":    "20240101-A",
		"url":   "https://www.youtube.com/watch?v=abc",
		"thumb": "https://cdn.example.com/custom.jpg",
	}
	if v := MapRow(row); v.Thumb != "https://cdn.example.com/custom.jpg" {
		t.Errorf("got %q", v.Thumb)
	}
}

func TestMapRow_NoThumbWhenExtractionFails(t *testing.T) {
	row := map[string]string{
		"id":  "20240101-A",
		"url": "https://vimeo.com/12345",
	}
	if v := MapRow(row); v.Thumb != "" {
		t.Errorf("expected blank thumb, got %q", v.Thumb)
	}
}

func TestMapRow_RefAliases(t *testing.T) {
	row := map[string]string{
		"id":    "20240101-A",
		"books": "B1|https://example.com/b1",
	}
	v := MapRow(row)
	if len(v.Refs.Books) != 1 || v.Refs.Books[0].Text != "B1" {
		t.Errorf("alias header not resolved: %+v", v.Refs)
	}
}

func TestMapRow_KeepsRowWithoutID(t *testing.T) {
	v := MapRow(map[string]string{"title": "No id yet"})
	if v.Title != "No id yet" || v.ID != "" {
		t.Errorf("got %+v", v)
	}
}
