// Package trends ingests the yearly restaurant sales-trend feed the
// brokerage buys from its survey vendor. One file per survey year;
// site identity upserts on STORE_NO, trend rows upsert on
// (location, year) so a reload of the same year is idempotent.
package trends

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/oculusgrp/dealdesk_backend/internal/repo"
	entloc "github.com/oculusgrp/dealdesk_backend/internal/repo/restaurantlocation"
	enttrend "github.com/oculusgrp/dealdesk_backend/internal/repo/restauranttrend"
	"github.com/oculusgrp/dealdesk_backend/pkg/database"
)

// ImportStats summarizes one feed import.
type ImportStats struct {
	Year      int
	Clean     CleanStats
	Locations int
	Trends    int
}

type Service interface {
	// ImportFeed parses and loads one yearly feed file. The survey
	// year comes from the filename.
	ImportFeed(ctx context.Context, filename string, r io.Reader) (*ImportStats, error)

	GetLocation(ctx context.Context, storeNo string) (*repo.RestaurantLocation, error)
	ListTrends(ctx context.Context, locationID uuid.UUID) ([]*repo.RestaurantTrend, error)
}

type trendsService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &trendsService{db: db}
}

func (s *trendsService) ImportFeed(ctx context.Context, filename string, r io.Reader) (*ImportStats, error) {
	year, err := YearFromFilename(filename)
	if err != nil {
		return nil, err
	}

	// The vendor ships .xlsx workbooks; older years were CSV exports.
	var (
		rows  []FeedRow
		clean CleanStats
	)
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		rows, clean, err = ParseFeedXLSX(r, year)
	} else {
		rows, clean, err = ParseFeed(r, year)
	}
	if err != nil {
		return nil, err
	}

	stats := &ImportStats{Year: year, Clean: clean}

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		storeNos := make([]string, 0, len(rows))
		for _, row := range rows {
			if err := upsertLocation(ctx, tx, row.Location); err != nil {
				return err
			}
			storeNos = append(storeNos, row.Location.StoreNo)
			stats.Locations++
		}

		// Resolve store numbers to location ids in one query.
		locs, err := tx.RestaurantLocation.Query().
			Where(entloc.StoreNoIn(storeNos...)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("resolve locations: %w", err)
		}
		idByStore := make(map[string]uuid.UUID, len(locs))
		for _, l := range locs {
			idByStore[l.StoreNo] = l.ID
		}

		for _, row := range rows {
			locID, ok := idByStore[row.Trend.StoreNo]
			if !ok {
				return fmt.Errorf("%w: store %s", ErrLocationNotFound, row.Trend.StoreNo)
			}
			if err := upsertTrend(ctx, tx, locID, row.Trend); err != nil {
				return err
			}
			stats.Trends++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("trends feed imported",
		"year", year,
		"rows_read", clean.TotalRows,
		"rows_kept", clean.Kept(),
		"empty_dropped", clean.EmptyDropped,
		"no_store_no_dropped", clean.NoStoreNoDropped,
		"bad_coords_dropped", clean.BadCoordsDropped,
		"duplicates_dropped", clean.DuplicateDropped,
	)
	for _, w := range clean.Warnings {
		slog.Warn("trends feed warning", "year", year, "detail", w)
	}
	return stats, nil
}

func upsertLocation(ctx context.Context, tx *repo.Tx, rec LocationRecord) error {
	err := tx.RestaurantLocation.Create().
		SetStoreNo(rec.StoreNo).
		SetNillableChainNo(rec.ChainNo).
		SetNillableChain(rec.Chain).
		SetNillableGeoaddress(rec.GeoAddress).
		SetNillableGeocity(rec.GeoCity).
		SetNillableGeostate(rec.GeoState).
		SetNillableGeozip(rec.GeoZip).
		SetNillableCounty(rec.County).
		SetNillableDmaMarket(rec.DMAMarket).
		SetNillableSegment(rec.Segment).
		SetNillableSubsegment(rec.Subsegment).
		SetNillableCategory(rec.Category).
		SetNillableLatitude(rec.Latitude).
		SetNillableLongitude(rec.Longitude).
		SetNillableYrBuilt(rec.YrBuilt).
		SetNillableCoFr(rec.CoFr).
		OnConflictColumns(entloc.FieldStoreNo).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert location %s: %w", rec.StoreNo, err)
	}
	return nil
}

func upsertTrend(ctx context.Context, tx *repo.Tx, locationID uuid.UUID, rec TrendRecord) error {
	err := tx.RestaurantTrend.Create().
		SetLocationID(locationID).
		SetYear(rec.Year).
		SetNillableCurrNatlGrade(rec.CurrNatlGrade).
		SetNillableCurrNatlIndex(rec.CurrNatlIndex).
		SetNillableCurrAnnualSlsK(rec.CurrAnnualSlsK).
		SetNillableCurrMktGrade(rec.CurrMktGrade).
		SetNillableCurrMktIndex(rec.CurrMktIndex).
		SetNillablePastNatlGrade(rec.PastNatlGrade).
		SetNillablePastNatlIndex(rec.PastNatlIndex).
		SetNillablePastAnnualSlsK(rec.PastAnnualSlsK).
		SetNillablePastMktGrade(rec.PastMktGrade).
		SetNillablePastMktIndex(rec.PastMktIndex).
		SetNillableSurveyYrLast(rec.SurveyYrLast).
		SetNillableSurveyYrNext(rec.SurveyYrNext).
		SetNillableTotalSurveys(rec.TotalSurveys).
		OnConflictColumns(enttrend.FieldLocationID, enttrend.FieldYear).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert trend %s/%d: %w", rec.StoreNo, rec.Year, err)
	}
	return nil
}

func (s *trendsService) GetLocation(ctx context.Context, storeNo string) (*repo.RestaurantLocation, error) {
	l, err := s.db.RestaurantLocation.Query().
		Where(entloc.StoreNo(storeNo)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

func (s *trendsService) ListTrends(ctx context.Context, locationID uuid.UUID) ([]*repo.RestaurantTrend, error) {
	trends, err := s.db.RestaurantTrend.Query().
		Where(enttrend.LocationID(locationID)).
		Order(enttrend.ByYear()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trends: %w", err)
	}
	return trends, nil
}
