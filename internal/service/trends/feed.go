package trends

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// The yearly trends feed arrives as one file per survey year, named
// YE<two-digit-year>*.xlsx (older years came as .csv exports). The
// survey year lives in the filename only; the rows carry everything
// else.

var yearPattern = regexp.MustCompile(`(?i)^YE(\d{2})`)

// YearFromFilename extracts the survey year from a feed filename,
// e.g. "YE24 Oculus SG.xlsx" yields 2024.
func YearFromFilename(name string) (int, error) {
	base := filepath.Base(name)
	m := yearPattern.FindStringSubmatch(base)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrBadFilename, base)
	}
	yy, _ := strconv.Atoi(m[1])
	return 2000 + yy, nil
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// LocationRecord is the site-identity slice of a feed row.
type LocationRecord struct {
	StoreNo    string
	ChainNo    *string
	Chain      *string
	GeoAddress *string
	GeoCity    *string
	GeoState   *string
	GeoZip     *string
	County     *string
	DMAMarket  *string
	Segment    *string
	Subsegment *string
	Category   *string
	Latitude   *float64
	Longitude  *float64
	YrBuilt    *int
	CoFr       *string
}

// TrendRecord is the per-year sales-trend slice of a feed row.
type TrendRecord struct {
	StoreNo        string
	Year           int
	CurrNatlGrade  *string
	CurrNatlIndex  *float64
	CurrAnnualSlsK *float64
	CurrMktGrade   *string
	CurrMktIndex   *float64
	PastNatlGrade  *string
	PastNatlIndex  *float64
	PastAnnualSlsK *float64
	PastMktGrade   *string
	PastMktIndex   *float64
	SurveyYrLast   *int
	SurveyYrNext   *int
	TotalSurveys   *int
}

// FeedRow pairs the two slices of one cleaned input row.
type FeedRow struct {
	Location LocationRecord
	Trend    TrendRecord
}

// CleanStats counts what the parser kept and dropped.
type CleanStats struct {
	TotalRows        int
	EmptyDropped     int
	NoStoreNoDropped int
	BadCoordsDropped int
	DuplicateDropped int
	Warnings         []string
}

// Kept is the row count that survived cleaning.
func (s CleanStats) Kept() int {
	return s.TotalRows - s.EmptyDropped - s.NoStoreNoDropped -
		s.BadCoordsDropped - s.DuplicateDropped
}

// ---------------------------------------------------------------------------
// Parser
// ---------------------------------------------------------------------------

// Feed headers use the survey vendor's punctuation as-is.
const (
	colStoreNo       = "STORE_NO"
	colChainNo       = "CHAIN_NO"
	colChain         = "CHAIN"
	colGeoAddress    = "GEOADDRESS"
	colGeoCity       = "GEOCITY"
	colGeoState      = "GEOSTATE"
	colGeoZip        = "GEOZIP"
	colCounty        = "COUNTY"
	colDMAMarket     = "DMA(MARKET)"
	colSegment       = "SEGMENT"
	colSubsegment    = "SUBSEGMENT"
	colCategory      = "CATEGORY"
	colLatitude      = "LATITUDE"
	colLongitude     = "LONGITUDE"
	colYrBuilt       = "YR_BUILT"
	colCoFr          = "CO/FR"
	colCurrNatlGrade = "CNG(CURR_NATL_GRADE)"
	colCurrNatlIndex = "CNI(CURR_NATL_INDEX)"
	colCurrAnnualSls = "CURR_ANNUAL_SLS($000)"
	colCurrMktGrade  = "CMG(CURR_MKT_GRADE)"
	colCurrMktIndex  = "CMI(CURR_MKT_INDEX)"
	colPastNatlGrade = "PNG(PAST_NATL_GRADE)"
	colPastNatlIndex = "PNI(PAST_NATL_INDEX)"
	colPastAnnualSls = "PAST_ANNUAL_SLS($000)"
	colPastMktGrade  = "PMG(PAST_MKT_GRADE)"
	colPastMktIndex  = "PMI(PAST_MKT_INDEX)"
	colSurveyYrLast  = "SURVEY_YR(LAST/C)"
	colSurveyYrNext  = "SURVEY_YR(NEXT/C)"
	colTotalSurveys  = "TTL_NO_SURVEYS(C)"
)

// ParseFeed reads a yearly CSV feed, cleans it, and returns one
// FeedRow per surviving line. Cleaning drops fully empty rows, rows
// without a STORE_NO, rows with out-of-range coordinates, and
// duplicate STORE_NOs (first occurrence wins).
func ParseFeed(r io.Reader, year int) ([]FeedRow, CleanStats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, CleanStats{}, fmt.Errorf("read feed header: %w", err)
	}
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, CleanStats{}, fmt.Errorf("read feed rows: %w", err)
	}

	return parseRecords(header, recs, year)
}

// ParseFeedXLSX reads a yearly Excel feed. The vendor ships one
// worksheet; the first sheet is taken and its first row is the header.
// Cleaning matches ParseFeed.
func ParseFeedXLSX(r io.Reader, year int) ([]FeedRow, CleanStats, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, CleanStats{}, fmt.Errorf("open feed workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, CleanStats{}, fmt.Errorf("feed workbook has no sheets")
	}
	recs, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, CleanStats{}, fmt.Errorf("read feed sheet %q: %w", sheets[0], err)
	}
	if len(recs) == 0 {
		return nil, CleanStats{}, fmt.Errorf("read feed header: %w", io.ErrUnexpectedEOF)
	}

	return parseRecords(recs[0], recs[1:], year)
}

func parseRecords(header []string, recs [][]string, year int) ([]FeedRow, CleanStats, error) {
	var stats CleanStats

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	if _, ok := cols[colStoreNo]; !ok {
		return nil, stats, ErrMissingStoreNo
	}

	var rows []FeedRow
	seen := make(map[string]bool)

	for _, rec := range recs {
		stats.TotalRows++

		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		if rowEmpty(rec) {
			stats.EmptyDropped++
			continue
		}

		storeNo := cell(colStoreNo)
		if storeNo == "" {
			stats.NoStoreNoDropped++
			continue
		}
		if seen[storeNo] {
			stats.DuplicateDropped++
			continue
		}

		lat := parseFloat(cell(colLatitude))
		lon := parseFloat(cell(colLongitude))
		if !coordsValid(lat, lon) {
			stats.BadCoordsDropped++
			stats.Warnings = append(stats.Warnings,
				fmt.Sprintf("store %s: coordinates out of range", storeNo))
			continue
		}

		seen[storeNo] = true
		rows = append(rows, FeedRow{
			Location: LocationRecord{
				StoreNo:    storeNo,
				ChainNo:    parseText(cell(colChainNo)),
				Chain:      parseText(cell(colChain)),
				GeoAddress: parseText(cell(colGeoAddress)),
				GeoCity:    parseText(cell(colGeoCity)),
				GeoState:   parseText(cell(colGeoState)),
				GeoZip:     parseText(cell(colGeoZip)),
				County:     parseText(cell(colCounty)),
				DMAMarket:  parseText(cell(colDMAMarket)),
				Segment:    parseText(cell(colSegment)),
				Subsegment: parseText(cell(colSubsegment)),
				Category:   parseText(cell(colCategory)),
				Latitude:   lat,
				Longitude:  lon,
				YrBuilt:    parseInt(cell(colYrBuilt)),
				CoFr:       parseText(cell(colCoFr)),
			},
			Trend: TrendRecord{
				StoreNo:        storeNo,
				Year:           year,
				CurrNatlGrade:  parseText(cell(colCurrNatlGrade)),
				CurrNatlIndex:  parseFloat(cell(colCurrNatlIndex)),
				CurrAnnualSlsK: parseFloat(cell(colCurrAnnualSls)),
				CurrMktGrade:   parseText(cell(colCurrMktGrade)),
				CurrMktIndex:   parseFloat(cell(colCurrMktIndex)),
				PastNatlGrade:  parseText(cell(colPastNatlGrade)),
				PastNatlIndex:  parseFloat(cell(colPastNatlIndex)),
				PastAnnualSlsK: parseFloat(cell(colPastAnnualSls)),
				PastMktGrade:   parseText(cell(colPastMktGrade)),
				PastMktIndex:   parseFloat(cell(colPastMktIndex)),
				SurveyYrLast:   parseInt(cell(colSurveyYrLast)),
				SurveyYrNext:   parseInt(cell(colSurveyYrNext)),
				TotalSurveys:   parseInt(cell(colTotalSurveys)),
			},
		})
	}

	return rows, stats, nil
}

// ---------------------------------------------------------------------------
// Cell coercion
// ---------------------------------------------------------------------------

func rowEmpty(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func isNull(v string) bool {
	switch strings.ToUpper(v) {
	case "", "NULL", "NA", "N/A", "NAN":
		return true
	}
	return false
}

func parseText(v string) *string {
	if isNull(v) {
		return nil
	}
	return &v
}

func parseFloat(v string) *float64 {
	if isNull(v) {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseInt goes through float first so "2019.0" style cells survive.
func parseInt(v string) *int {
	f := parseFloat(v)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func coordsValid(lat, lon *float64) bool {
	if lat == nil || lon == nil {
		return true
	}
	return *lat >= -90 && *lat <= 90 && *lon >= -180 && *lon <= 180
}
