package feed

import (
	"reflect"
	"testing"
)

func TestRows_QuotedFields(t *testing.T) {
	text := "id,title,notes\n" +
		"20240101-A,\"Hello, World\",\"line one\nline two\"\n" +
		"20240102-B,\"He said \"\"hi\"\"\",plain\n"

	rows := Rows(text)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["title"] != "Hello, World" {
		t.Errorf("embedded separator: got %q", rows[0]["title"])
	}
	if rows[0]["notes"] != "line one\nline two" {
		t.Errorf("embedded newline: got %q", rows[0]["notes"])
	}
	if rows[1]["title"] != `He said "hi"` {
		t.Errorf("doubled quotes: got %q", rows[1]["title"])
	}
}

func TestRows_BOMAndCarriageReturns(t *testing.T) {
	text := "\ufeffid,title\r\n20240101-A,First\r\n"
	rows := Rows(text)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0]["id"] != "20240101-A" {
		t.Errorf("BOM not stripped from header: %v", rows[0])
	}
	if rows[0]["title"] != "First" {
		t.Errorf("carriage return kept: %q", rows[0]["title"])
	}
}

func TestRows_BlankRowsDropped(t *testing.T) {
	text := "id,title\n,,\n  , \n20240101-A,First\n"
	rows := Rows(text)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1: %v", len(rows), rows)
	}
}

func TestRows_MissingCellsEmpty(t *testing.T) {
	text := "id,title,notes\n20240101-A,First\n"
	rows := Rows(text)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got, ok := rows[0]["notes"]; !ok || got != "" {
		t.Errorf("missing cell should map to empty string, got %q (present=%v)", got, ok)
	}
}

func TestRows_HeaderTrimmed(t *testing.T) {
	text := " id , title \nx,y\n"
	rows := Rows(text)
	if len(rows) != 1 || rows[0]["id"] != "x" || rows[0]["title"] != "y" {
		t.Fatalf("header not trimmed: %v", rows)
	}
}

func TestFieldOf_FirstNonEmptyAliasWins(t *testing.T) {
	row := map[string]string{"ref_papers": "", "papers": "A|https://a.example/x"}
	if got := fieldOf(row, "ref_papers", "ref_paper", "papers"); got != "A|https://a.example/x" {
		t.Errorf("got %q", got)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" one ; two ;; three ")
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if splitList("") != nil {
		t.Errorf("empty cell should yield nil")
	}
}

func TestRoundTrip_CSVToJSONAndBack(t *testing.T) {
	text := "id,title,url,date,topics,thumb,notes,ref_papers,related\n" +
		"20240101-A,First,https://www.youtube.com/watch?v=abc,2024-01-01,x;y,,notes here,\"P1|10.1000/xyz|see §2\",20240102-B\n" +
		"20240102-B,Second,https://youtu.be/def,2024-02-01,y,,other notes,,\n"

	videos := FromCSV(text)
	b, err := ToJSON(videos)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(videos, back) {
		t.Errorf("round trip mismatch:\n in  %#v\n out %#v", videos, back)
	}
}
