package report

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "teampick.db"))
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleResult() *Result {
	return &Result{
		Records: []UserRecord{
			{
				Name:     "John",
				Contacts: []string{"09123456789"},
				Teams:    []string{"Real Madrid"},
			},
			{
				Name:       "Mary",
				Teams:      []string{"Arsenal"},
				Unresolved: []string{"Levante"},
			},
		},
		Unknowns: []UnknownCount{{Token: "Levante", Count: 1}},
	}
}

func TestSaveRunRoundTrip(t *testing.T) {
	db := newTestDB(t)

	if err := db.SaveRun("/tmp/export.txt", 100, 200, sampleResult()); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	rows, err := db.GetRecords("/tmp/export.txt")
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "John" || rows[0].Teams != "Real Madrid" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Unresolved != "Levante" {
		t.Errorf("row 1 unresolved = %q", rows[1].Unresolved)
	}

	info, err := db.GetRunInfo("/tmp/export.txt")
	if err != nil {
		t.Fatalf("GetRunInfo failed: %v", err)
	}
	if info == nil || info.Mtime != 100 || info.Size != 200 {
		t.Errorf("run info = %+v", info)
	}
}

func TestSaveRunReplacesPreviousRun(t *testing.T) {
	db := newTestDB(t)

	if err := db.SaveRun("/tmp/export.txt", 100, 200, sampleResult()); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveRun("/tmp/export.txt", 101, 201, &Result{
		Records: []UserRecord{{Name: "Only"}},
	}); err != nil {
		t.Fatal(err)
	}

	rows, err := db.GetRecords("/tmp/export.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Name != "Only" {
		t.Errorf("stale rows survived replace: %v", rows)
	}

	unknowns, err := db.AggregateUnknowns()
	if err != nil {
		t.Fatal(err)
	}
	if len(unknowns) != 0 {
		t.Errorf("stale unknowns survived replace: %v", unknowns)
	}
}

func TestAggregateUnknownsAcrossRuns(t *testing.T) {
	db := newTestDB(t)

	if err := db.SaveRun("/tmp/a.txt", 1, 1, &Result{
		Unknowns: []UnknownCount{{Token: "Levante", Count: 2}, {Token: "Getafe", Count: 1}},
	}); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveRun("/tmp/b.txt", 1, 1, &Result{
		Unknowns: []UnknownCount{{Token: "Levante", Count: 3}},
	}); err != nil {
		t.Fatal(err)
	}

	unknowns, err := db.AggregateUnknowns()
	if err != nil {
		t.Fatal(err)
	}
	if len(unknowns) != 2 {
		t.Fatalf("unknowns = %v", unknowns)
	}
	if unknowns[0].Token != "Levante" || unknowns[0].Count != 5 {
		t.Errorf("merged count = %+v, want Levante x5", unknowns[0])
	}

	if err := db.ClearUnknownTokens([]string{"Levante"}); err != nil {
		t.Fatalf("ClearUnknownTokens failed: %v", err)
	}
	unknowns, err = db.AggregateUnknowns()
	if err != nil {
		t.Fatal(err)
	}
	if len(unknowns) != 1 || unknowns[0].Token != "Getafe" {
		t.Errorf("worklist after clear = %v", unknowns)
	}
}

func TestImportFileSkipsUnchanged(t *testing.T) {
	db := newTestDB(t)

	path := filepath.Join(t.TempDir(), "export.txt")
	if err := os.WriteFile(path, []byte("irrelevant"), 0o644); err != nil {
		t.Fatal(err)
	}

	builds := 0
	build := func(text string) *Result {
		builds++
		return sampleResult()
	}

	if _, cached, err := ImportFile(db, path, build, false); err != nil || cached {
		t.Fatalf("first import: cached=%v err=%v", cached, err)
	}
	res, cached, err := ImportFile(db, path, build, false)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if !cached {
		t.Errorf("second import should be served from the db")
	}
	if builds != 1 {
		t.Errorf("build ran %d times, want 1", builds)
	}
	if len(res.Records) != 2 || res.Records[0].Name != "John" {
		t.Errorf("cached result = %+v", res.Records)
	}
	if len(res.Records[0].Contacts) != 1 || res.Records[0].Contacts[0] != "09123456789" {
		t.Errorf("cached contacts = %v", res.Records[0].Contacts)
	}

	// force bypasses the skip, which matters after corrections
	if _, cached, err := ImportFile(db, path, build, true); err != nil || cached {
		t.Fatalf("forced import: cached=%v err=%v", cached, err)
	}
	if builds != 2 {
		t.Errorf("build ran %d times after force, want 2", builds)
	}
}

func TestLatestRun(t *testing.T) {
	db := newTestDB(t)
	p, err := db.LatestRun()
	if err != nil {
		t.Fatal(err)
	}
	if p != "" {
		t.Errorf("empty db LatestRun = %q", p)
	}

	if err := db.SaveRun("/tmp/a.txt", 1, 1, sampleResult()); err != nil {
		t.Fatal(err)
	}
	p, err = db.LatestRun()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/tmp/a.txt" {
		t.Errorf("LatestRun = %q", p)
	}
}
