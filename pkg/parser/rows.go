// Package parser turns raw spreadsheet grids into structured records.
// The source sheets are human-edited, so both parsers are best-effort:
// malformed cells degrade to empty fields or dropped rows, never errors.
package parser

import (
	"regexp"
	"strings"

	"cropbook/entities"
)

// Fixed positional columns of a field tab. Row 0 is a header and is
// always skipped; ragged rows are padded with empty strings.
const (
	colBed = iota
	colCropVariety
	colTrays
	colRows
	colPlantedDate
	colNotes

	fieldRowWidth
)

// multiCropSep splits cells like "Cucumber: Mini Me / Cucumber: Tasty
// Green" into one sub-entry per crop. The spaces matter: a bare "/"
// inside a variety name is not a separator.
const multiCropSep = " / "

// Replant notes are matched with "replaced with/by" taking precedence
// over "replanted with" when a note contains both.
var (
	replacedWithOriginalRe  = regexp.MustCompile(`(?i)^\s*([^:]+?)(?:\s*:\s*([^:]+?))?\s+replaced\s+(?:with|by)\s+`)
	replantedWithOriginalRe = regexp.MustCompile(`(?i)^\s*([^:]+?)(?:\s*:\s*([^:]+?))?\s+replanted\s+with\s+`)
	replacedWithTriggerRe   = regexp.MustCompile(`(?i)replaced\s+(?:with|by)\s+`)
	replantedWithTriggerRe  = regexp.MustCompile(`(?i)replanted\s+with\s+`)
)

// ParseFieldRows converts one field tab's raw grid into planting
// records. fieldName is the tab name; it becomes the partition key and
// drives location classification. Rows with no bed and no crop are
// spacer rows and dropped; (sub-)entries without a crop name are
// dropped without error.
func ParseFieldRows(grid [][]string, fieldName string) []entities.PlantingRecord {
	var out []entities.PlantingRecord
	if len(grid) < 2 {
		return out
	}
	location := ClassifyLocation(fieldName)

	for _, raw := range grid[1:] {
		row := padRow(raw, fieldRowWidth)
		bed := strings.TrimSpace(row[colBed])
		cropCell := strings.TrimSpace(row[colCropVariety])
		if bed == "" && cropCell == "" {
			continue
		}
		trays := strings.TrimSpace(row[colTrays])
		rowCount := strings.TrimSpace(row[colRows])
		planted := strings.TrimSpace(row[colPlantedDate])
		notes := strings.TrimSpace(row[colNotes])

		base := entities.PlantingRecord{
			Field:       fieldName,
			Bed:         bed,
			RowCount:    rowCount,
			PlantedDate: planted,
			Notes:       notes,
			Location:    location,
		}

		if strings.Contains(cropCell, multiCropSep) {
			// Multi-crop bed: one record per sub-entry. Replant
			// detection does not apply inside splits.
			cropParts := strings.Split(cropCell, multiCropSep)
			trayParts := strings.Split(trays, multiCropSep)
			for i, part := range cropParts {
				crop, variety := splitCropVariety(part)
				if crop == "" {
					continue
				}
				rec := base
				rec.Crop = crop
				rec.Variety = variety
				if len(trayParts) == len(cropParts) {
					rec.TrayCount = strings.TrimSpace(trayParts[i])
				} else {
					rec.TrayCount = strings.TrimSpace(trayParts[0])
				}
				out = append(out, rec)
			}
			continue
		}

		crop, variety := splitCropVariety(cropCell)
		if crop == "" {
			continue
		}
		rec := base
		rec.Crop = crop
		rec.Variety = variety
		rec.TrayCount = trays
		rec.ReplantedFrom = detectReplanting(notes)
		out = append(out, rec)
	}
	return out
}

// ClassifyLocation maps a field (tab) name to a location class by
// case-insensitive substring match. Total: always returns a value,
// defaulting to open field.
func ClassifyLocation(fieldName string) string {
	n := strings.ToLower(fieldName)
	switch {
	case strings.Contains(n, "high tunnel") || strings.Contains(n, "ht"):
		return entities.LocationHighTunnel
	case strings.Contains(n, "greenhouse") || strings.Contains(n, "gh"):
		return entities.LocationGreenhouse
	default:
		return entities.LocationOpenField
	}
}

// detectReplanting inspects a notes cell for phrases meaning "an
// earlier crop was replaced by what is now planted here". With an
// identifiable original crop[:variety] before the verb, the snapshot
// carries it; otherwise only the note text. The replant date is never
// recoverable from the note.
func detectReplanting(notes string) *entities.Replanting {
	if notes == "" {
		return nil
	}
	for _, re := range []*regexp.Regexp{replacedWithOriginalRe, replantedWithOriginalRe} {
		if m := re.FindStringSubmatch(notes); m != nil {
			crop := strings.TrimSpace(m[1])
			if crop != "" {
				return &entities.Replanting{Crop: crop, Variety: strings.TrimSpace(m[2]), Notes: notes}
			}
		}
	}
	if replacedWithTriggerRe.MatchString(notes) || replantedWithTriggerRe.MatchString(notes) {
		return &entities.Replanting{Notes: notes}
	}
	return nil
}

// splitCropVariety splits "Tomato: Roma" into ("Tomato", "Roma"); a
// cell without a colon has an empty variety.
func splitCropVariety(cell string) (crop, variety string) {
	parts := strings.SplitN(cell, ":", 2)
	crop = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		variety = strings.TrimSpace(parts[1])
	}
	return crop, variety
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
