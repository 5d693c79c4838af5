package parser

import (
	"sort"
	"strings"

	"cropbook/entities"
)

// QualifiersParse is the structured result of one Qualifiers sheet
// parse: per-crop question sets plus the questions common to every
// crop block, hoisted out so they are stored exactly once.
type QualifiersParse struct {
	Vegetables          []entities.QualifierDefinition
	UniversalQualifiers []entities.UniversalQualifier
}

// questionCol accumulates one question and its options while a block
// is being read; col is the question's column in the header row.
type questionCol struct {
	question string
	col      int
	options  []string
}

// ParseQualifiersSheet converts the Qualifiers sheet's irregular grid
// into qualifier definitions. The grid is a sequence of blocks: a
// header row whose column-A cell names one or more crops (slash
// separated) and whose other columns hold questions (recognized solely
// by a trailing "?"), followed by option rows (column A empty or "-"
// prefixed) whose cells align positionally with the header's
// questions. A crop token's trailing ", <loc>" suffix scopes the
// definition to a location.
func ParseQualifiersSheet(grid [][]string) QualifiersParse {
	var (
		entries  []entities.QualifierDefinition
		curNames []string
		curCols  []questionCol
		firstCol = map[string]int{} // question -> column at first occurrence
	)

	flush := func() {
		defer func() { curNames, curCols = nil, nil }()
		if len(curNames) == 0 || len(curCols) == 0 {
			return
		}
		// A block whose questions all lack options is an incomplete
		// edit in progress; drop it entirely.
		hasOptions := false
		for _, q := range curCols {
			if len(q.options) > 0 {
				hasOptions = true
				break
			}
		}
		if !hasOptions {
			return
		}
		for _, tok := range curNames {
			name, location := splitLocationSuffix(tok)
			if name == "" {
				continue
			}
			// Each crop gets an independent copy so later mutation of
			// one entry's list cannot leak into its block siblings.
			assessments := make([]entities.Assessment, 0, len(curCols))
			for _, q := range curCols {
				assessments = append(assessments, entities.Assessment{
					Question: q.question,
					Options:  append([]string(nil), q.options...),
				})
			}
			entries = append(entries, entities.QualifierDefinition{
				Name:        name,
				Location:    location,
				Assessments: assessments,
			})
		}
	}

	for _, row := range grid {
		a := ""
		if len(row) > 0 {
			a = strings.TrimSpace(row[0])
		}
		if a != "" && !strings.HasPrefix(a, "-") {
			// New block header.
			flush()
			for _, tok := range strings.Split(a, "/") {
				if tok = strings.TrimSpace(tok); tok != "" {
					curNames = append(curNames, tok)
				}
			}
			for i := 1; i < len(row); i++ {
				q := strings.TrimSpace(row[i])
				if !strings.HasSuffix(q, "?") {
					continue
				}
				curCols = append(curCols, questionCol{question: q, col: i})
				if _, seen := firstCol[q]; !seen {
					firstCol[q] = i
				}
			}
			continue
		}
		// Option row for the current block.
		if len(curNames) == 0 {
			continue
		}
		for j := range curCols {
			col := curCols[j].col
			if col >= len(row) {
				continue
			}
			opt := strings.TrimSpace(row[col])
			// A cell ending in "?" is a question, never an option;
			// guards against misaligned blocks.
			if opt == "" || strings.HasSuffix(opt, "?") {
				continue
			}
			opt = strings.TrimSpace(strings.TrimPrefix(opt, "- "))
			if opt == "" {
				continue
			}
			curCols[j].options = append(curCols[j].options, opt)
		}
	}
	flush()

	universals := extractUniversals(entries, firstCol)
	return QualifiersParse{Vegetables: entries, UniversalQualifiers: universals}
}

// extractUniversals hoists questions present in 100% of the surviving
// crop entries into a central list and removes them from every
// per-crop assessment list. Options and display order come from the
// question's first occurrence.
func extractUniversals(entries []entities.QualifierDefinition, firstCol map[string]int) []entities.UniversalQualifier {
	if len(entries) == 0 {
		return nil
	}
	counts := map[string]int{}
	for _, e := range entries {
		seen := map[string]bool{}
		for _, a := range e.Assessments {
			if !seen[a.Question] {
				seen[a.Question] = true
				counts[a.Question]++
			}
		}
	}

	universal := map[string]bool{}
	var out []entities.UniversalQualifier
	for q, n := range counts {
		if n != len(entries) {
			continue
		}
		universal[q] = true
		out = append(out, entities.UniversalQualifier{
			Question:     q,
			Options:      firstOptions(entries, q),
			DisplayOrder: firstCol[q],
		})
	}
	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].Question < out[j].Question
	})

	for i := range entries {
		kept := entries[i].Assessments[:0]
		for _, a := range entries[i].Assessments {
			if !universal[a.Question] {
				kept = append(kept, a)
			}
		}
		entries[i].Assessments = kept
	}
	return out
}

func firstOptions(entries []entities.QualifierDefinition, question string) []string {
	for _, e := range entries {
		for _, a := range e.Assessments {
			if a.Question == question {
				return append([]string(nil), a.Options...)
			}
		}
	}
	return nil
}

// splitLocationSuffix splits a crop token on its last comma:
// "Cucumbers, HT" -> ("Cucumbers", "HT"). No comma means no location.
func splitLocationSuffix(tok string) (name, location string) {
	tok = strings.TrimSpace(tok)
	if i := strings.LastIndex(tok, ","); i >= 0 {
		return strings.TrimSpace(tok[:i]), strings.TrimSpace(tok[i+1:])
	}
	return tok, ""
}
