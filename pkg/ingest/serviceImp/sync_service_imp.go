package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"cropbook/entities"
	snapshotRepo "cropbook/pkg/ingest/repository"
	"cropbook/pkg/ingest/service"
	"cropbook/pkg/parser"
	plantingRepo "cropbook/pkg/planting/repository"
	qualifierRepo "cropbook/pkg/qualifier/repository"
	settingsRepo "cropbook/pkg/settings/repository"
	"cropbook/pkg/sheets"
)

type syncSvc struct {
	src        sheets.Source
	snapshots  snapshotRepo.SnapshotRepository
	plantings  plantingRepo.PlantingRepository
	qualifiers qualifierRepo.QualifierRepository
	settings   settingsRepo.SettingsRepository
}

func New(
	src sheets.Source,
	snapshots snapshotRepo.SnapshotRepository,
	plantings plantingRepo.PlantingRepository,
	qualifiers qualifierRepo.QualifierRepository,
	settings settingsRepo.SettingsRepository,
) service.SyncService {
	return &syncSvc{src: src, snapshots: snapshots, plantings: plantings, qualifiers: qualifiers, settings: settings}
}

func (s *syncSvc) SyncField(spreadsheetID, tab string) (*service.SyncResult, error) {
	if strings.TrimSpace(tab) == "" {
		return nil, service.ErrNoSheetName
	}
	grid, err := s.src.FetchGrid(spreadsheetID, tab)
	if errors.Is(err, sheets.ErrSheetNotFound) {
		// Tab renamed or removed upstream: purge the partition and
		// stop tracking it. Not an error for the rest of the run.
		if err := s.RemoveField(tab); err != nil {
			return nil, err
		}
		log.Printf("[sync] %s: tab gone upstream, partition purged", tab)
		return &service.SyncResult{Sheet: tab, Removed: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", tab, err)
	}

	recs := parser.ParseFieldRows(grid, tab)
	created, err := s.snapshots.Upsert(&entities.RawSheetSnapshot{
		SpreadsheetID: spreadsheetID,
		Range:         tab,
		Grid:          grid,
		Records:       recs,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", tab, err)
	}

	inserted := 0
	if len(recs) > 0 {
		// One sync call processes exactly one tab, so every parsed
		// record shares the first record's field.
		inserted, err = s.plantings.ReplaceForField(recs[0].Field, recs)
		if err != nil {
			return nil, fmt.Errorf("replace %s: %w", tab, err)
		}
	}
	log.Printf("[sync] %s: %d records, snapshot created=%v", tab, inserted, created)
	return &service.SyncResult{Sheet: tab, Inserted: inserted, SnapshotCreated: created}, nil
}

func (s *syncSvc) SyncQualifiers(spreadsheetID, tab string) (*service.SyncResult, error) {
	if strings.TrimSpace(tab) == "" {
		return nil, service.ErrNoSheetName
	}
	grid, err := s.src.FetchGrid(spreadsheetID, tab)
	if errors.Is(err, sheets.ErrSheetNotFound) {
		if err := s.snapshots.Delete(spreadsheetID, tab); err != nil {
			return nil, err
		}
		log.Printf("[sync] %s: qualifiers tab gone upstream, snapshot purged", tab)
		return &service.SyncResult{Sheet: tab, Removed: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", tab, err)
	}

	res := parser.ParseQualifiersSheet(grid)
	created, err := s.snapshots.Upsert(&entities.RawSheetSnapshot{
		SpreadsheetID: spreadsheetID,
		Range:         tab,
		Grid:          grid,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", tab, err)
	}
	for i := range res.Vegetables {
		if _, err := s.qualifiers.UpsertDefinition(&res.Vegetables[i]); err != nil {
			return nil, fmt.Errorf("upsert qualifier %s: %w", res.Vegetables[i].Name, err)
		}
	}
	if err := s.qualifiers.ReconcileUniversals(res.UniversalQualifiers); err != nil {
		return nil, fmt.Errorf("reconcile universals: %w", err)
	}
	log.Printf("[sync] %s: %d qualifiers, %d universal, snapshot created=%v",
		tab, len(res.Vegetables), len(res.UniversalQualifiers), created)
	return &service.SyncResult{
		Sheet:           tab,
		SnapshotCreated: created,
		Qualifiers:      len(res.Vegetables),
		Universals:      len(res.UniversalQualifiers),
	}, nil
}

func (s *syncSvc) SyncAll() ([]service.SyncResult, error) {
	st, err := s.settings.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotConfigured
	}
	if err != nil {
		return nil, err
	}

	var out []service.SyncResult
	for _, tab := range st.SheetNames {
		res, err := s.SyncField(st.SpreadsheetID, tab)
		if err != nil {
			// Per-sheet syncs are independent; record and move on.
			out = append(out, service.SyncResult{Sheet: tab, Error: err.Error()})
			continue
		}
		out = append(out, *res)
	}
	if st.QualifiersSheet != "" {
		res, err := s.SyncQualifiers(st.SpreadsheetID, st.QualifiersSheet)
		if err != nil {
			out = append(out, service.SyncResult{Sheet: st.QualifiersSheet, Error: err.Error()})
		} else {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (s *syncSvc) RemoveField(tab string) error {
	if strings.TrimSpace(tab) == "" {
		return service.ErrNoSheetName
	}
	st, err := s.settings.Get()
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Nothing tracked yet; still purge any orphaned records.
	case err != nil:
		return err
	default:
		if err := s.snapshots.Delete(st.SpreadsheetID, tab); err != nil {
			return err
		}
		kept := st.SheetNames[:0]
		for _, name := range st.SheetNames {
			if name != tab {
				kept = append(kept, name)
			}
		}
		if len(kept) != len(st.SheetNames) {
			st.SheetNames = kept
			if err := s.settings.Upsert(st); err != nil {
				return err
			}
		}
	}
	return s.plantings.DeleteByField(tab)
}
