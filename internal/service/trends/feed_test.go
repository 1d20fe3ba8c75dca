package trends

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestYearFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     int
		wantErr  bool
	}{
		{"workbook", "YE24 Oculus SG.xlsx", 2024, false},
		{"csv export", "YE24 Oculus SG.csv", 2024, false},
		{"apostrophe chain", "YE19 O'Brien SG.xlsx", 2019, false},
		{"underscore", "YE15_Data.csv", 2015, false},
		{"lowercase prefix", "ye21 feed.csv", 2021, false},
		{"full path", "/data/feeds/YE23 Oculus SG.csv", 2023, false},
		{"no prefix", "Oculus SG 2024.csv", 0, true},
		{"prefix mid-name", "Data YE24.csv", 0, true},
		{"one digit", "YE9 feed.csv", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YearFromFilename(tt.filename)
			if tt.wantErr {
				if !errors.Is(err, ErrBadFilename) {
					t.Fatalf("expected ErrBadFilename, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

const feedHeader = "STORE_NO,CHAIN,GEOCITY,GEOSTATE,LATITUDE,LONGITUDE," +
	"CNG(CURR_NATL_GRADE),CNI(CURR_NATL_INDEX),CURR_ANNUAL_SLS($000),TTL_NO_SURVEYS(C)"

func TestParseFeed(t *testing.T) {
	in := feedHeader + "\n" +
		"1001,Burger Barn,Dallas,TX,32.78,-96.80,A,112.5,1250,3\n" +
		"1002,Taco Tower,Austin,TX,30.27,-97.74,B,98.1,980,2\n"

	rows, stats, err := ParseFeed(strings.NewReader(in), 2024)
	if err != nil {
		t.Fatalf("ParseFeed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if stats.Kept() != 2 {
		t.Errorf("expected 2 kept, got %d", stats.Kept())
	}

	loc := rows[0].Location
	if loc.StoreNo != "1001" {
		t.Errorf("store_no = %q", loc.StoreNo)
	}
	if loc.Chain == nil || *loc.Chain != "Burger Barn" {
		t.Errorf("chain = %v", loc.Chain)
	}
	if loc.Latitude == nil || *loc.Latitude != 32.78 {
		t.Errorf("latitude = %v", loc.Latitude)
	}

	tr := rows[0].Trend
	if tr.Year != 2024 {
		t.Errorf("year = %d", tr.Year)
	}
	if tr.CurrNatlGrade == nil || *tr.CurrNatlGrade != "A" {
		t.Errorf("curr_natl_grade = %v", tr.CurrNatlGrade)
	}
	if tr.CurrAnnualSlsK == nil || *tr.CurrAnnualSlsK != 1250 {
		t.Errorf("curr_annual_sls_k = %v", tr.CurrAnnualSlsK)
	}
	if tr.TotalSurveys == nil || *tr.TotalSurveys != 3 {
		t.Errorf("total_surveys = %v", tr.TotalSurveys)
	}
}

func TestParseFeedCleaning(t *testing.T) {
	in := feedHeader + "\n" +
		"1001,Burger Barn,Dallas,TX,32.78,-96.80,A,112.5,1250,3\n" +
		",,,,,,,,,\n" + // fully empty
		",Orphan Chain,Austin,TX,30.27,-97.74,B,98.1,980,2\n" + // no store_no
		"1001,Burger Barn,Dallas,TX,32.78,-96.80,A,112.5,1250,3\n" + // duplicate
		"1003,Far Out,Nowhere,TX,95.0,-96.80,C,80,500,1\n" // bad latitude

	rows, stats, err := ParseFeed(strings.NewReader(in), 2024)
	if err != nil {
		t.Fatalf("ParseFeed: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected 1 surviving row, got %d", len(rows))
	}
	if stats.TotalRows != 5 {
		t.Errorf("total = %d, want 5", stats.TotalRows)
	}
	if stats.EmptyDropped != 1 {
		t.Errorf("empty dropped = %d, want 1", stats.EmptyDropped)
	}
	if stats.NoStoreNoDropped != 1 {
		t.Errorf("no store_no dropped = %d, want 1", stats.NoStoreNoDropped)
	}
	if stats.DuplicateDropped != 1 {
		t.Errorf("duplicates dropped = %d, want 1", stats.DuplicateDropped)
	}
	if stats.BadCoordsDropped != 1 {
		t.Errorf("bad coords dropped = %d, want 1", stats.BadCoordsDropped)
	}
	if len(stats.Warnings) != 1 {
		t.Errorf("warnings = %v", stats.Warnings)
	}
	if stats.Kept() != 1 {
		t.Errorf("kept = %d, want 1", stats.Kept())
	}
}

func TestParseFeedNullMarkers(t *testing.T) {
	in := feedHeader + "\n" +
		"1001,NULL,Dallas,TX,N/A,n/a,,NaN,NA,null\n"

	rows, _, err := ParseFeed(strings.NewReader(in), 2024)
	if err != nil {
		t.Fatalf("ParseFeed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	loc := rows[0].Location
	if loc.Chain != nil {
		t.Errorf("chain should be nil, got %q", *loc.Chain)
	}
	if loc.Latitude != nil || loc.Longitude != nil {
		t.Errorf("coords should be nil")
	}

	tr := rows[0].Trend
	if tr.CurrNatlGrade != nil {
		t.Errorf("grade should be nil")
	}
	if tr.CurrNatlIndex != nil || tr.CurrAnnualSlsK != nil || tr.TotalSurveys != nil {
		t.Errorf("numeric fields should be nil")
	}
}

func TestParseFeedNumericEdgeCases(t *testing.T) {
	in := feedHeader + "\n" +
		`1001,Burger Barn,Dallas,TX,32.78,-96.80,A,112.5,"1,250",3.0` + "\n"

	rows, _, err := ParseFeed(strings.NewReader(in), 2024)
	if err != nil {
		t.Fatalf("ParseFeed: %v", err)
	}

	tr := rows[0].Trend
	if tr.CurrAnnualSlsK == nil || *tr.CurrAnnualSlsK != 1250 {
		t.Errorf("thousands separator not handled: %v", tr.CurrAnnualSlsK)
	}
	if tr.TotalSurveys == nil || *tr.TotalSurveys != 3 {
		t.Errorf("float-style integer not handled: %v", tr.TotalSurveys)
	}
}

// buildFeedWorkbook writes the given rows (header first) into an
// in-memory xlsx workbook the way the survey vendor ships them.
func buildFeedWorkbook(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()
	wb := excelize.NewFile()
	defer wb.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := wb.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParseFeedXLSX(t *testing.T) {
	header := []any{
		"STORE_NO", "CHAIN", "GEOCITY", "GEOSTATE", "LATITUDE", "LONGITUDE",
		"CNG(CURR_NATL_GRADE)", "CNI(CURR_NATL_INDEX)", "CURR_ANNUAL_SLS($000)", "TTL_NO_SURVEYS(C)",
	}
	r := buildFeedWorkbook(t, [][]any{
		header,
		{"1001", "Burger Barn", "Dallas", "TX", 32.78, -96.80, "A", 112.5, 1250, 3},
		{"1001", "Burger Barn", "Dallas", "TX", 32.78, -96.80, "A", 112.5, 1250, 3},
		{"1002", "Taco Tower", "Austin", "TX", 30.27, -97.74, "NULL", 98.1, 980, 2},
	})

	rows, stats, err := ParseFeedXLSX(r, 2024)
	if err != nil {
		t.Fatalf("ParseFeedXLSX: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if stats.DuplicateDropped != 1 {
		t.Errorf("duplicates dropped = %d, want 1", stats.DuplicateDropped)
	}

	loc := rows[0].Location
	if loc.StoreNo != "1001" {
		t.Errorf("store_no = %q", loc.StoreNo)
	}
	if loc.Latitude == nil || *loc.Latitude != 32.78 {
		t.Errorf("latitude = %v", loc.Latitude)
	}

	tr := rows[0].Trend
	if tr.Year != 2024 {
		t.Errorf("year = %d", tr.Year)
	}
	if tr.CurrAnnualSlsK == nil || *tr.CurrAnnualSlsK != 1250 {
		t.Errorf("curr_annual_sls_k = %v", tr.CurrAnnualSlsK)
	}
	if rows[1].Trend.CurrNatlGrade != nil {
		t.Errorf("grade should be nil, got %q", *rows[1].Trend.CurrNatlGrade)
	}
}

func TestParseFeedXLSXMissingStoreNoColumn(t *testing.T) {
	r := buildFeedWorkbook(t, [][]any{
		{"CHAIN", "GEOCITY"},
		{"Burger Barn", "Dallas"},
	})
	_, _, err := ParseFeedXLSX(r, 2024)
	if !errors.Is(err, ErrMissingStoreNo) {
		t.Fatalf("expected ErrMissingStoreNo, got %v", err)
	}
}

func TestParseFeedMissingStoreNoColumn(t *testing.T) {
	in := "CHAIN,GEOCITY\nBurger Barn,Dallas\n"
	_, _, err := ParseFeed(strings.NewReader(in), 2024)
	if !errors.Is(err, ErrMissingStoreNo) {
		t.Fatalf("expected ErrMissingStoreNo, got %v", err)
	}
}
