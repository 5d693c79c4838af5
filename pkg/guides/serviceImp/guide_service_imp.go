package serviceImp

import (
	"errors"
	"sort"
	"strings"

	"cropbook/entities"
	"cropbook/pkg/guides/repository"
	"cropbook/pkg/guides/service"
)

type guideSvc struct{ r repository.GuideRepository }

func New(r repository.GuideRepository) service.GuideService { return &guideSvc{r: r} }

// chunkText slices a document at newline boundaries once a chunk
// passes maxRunes, keeping chunks paragraph-aligned for readable
// search hits.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	var cur strings.Builder
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *guideSvc) IngestDocument(title, crop, text, sourceURL string) (*entities.GuideDoc, int, error) {
	if strings.TrimSpace(title) == "" {
		return nil, 0, errors.New("title is required")
	}
	d := &entities.GuideDoc{Title: title, Crop: crop, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}
	rows := make([]entities.GuideChunk, len(chs))
	for i := range chs {
		rows[i] = entities.GuideChunk{DocID: d.DocID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

// Search ranks chunks by query-term overlap. Good enough for a few
// hundred guide pages; no index, no embeddings.
func (s *guideSvc) Search(query string, k int) ([]entities.GuideChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}
	terms := tokenize(q)
	if len(terms) == 0 {
		return nil, nil
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	type scored struct {
		ch    entities.GuideChunk
		score int
	}
	var hits []scored
	for _, ch := range chunks {
		text := strings.ToLower(ch.Text)
		score := 0
		for _, t := range terms {
			score += strings.Count(text, t)
		}
		if score > 0 {
			hits = append(hits, scored{ch: ch, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > k {
		hits = hits[:k]
	}
	out := make([]entities.GuideChunk, len(hits))
	for i := range hits {
		out[i] = hits[i].ch
	}
	return out, nil
}

func (s *guideSvc) DocsMeta(ids []uint) (map[uint]entities.GuideDoc, error) {
	return s.r.DocsByIDs(ids)
}

func tokenize(q string) []string {
	var out []string
	for _, t := range strings.Fields(strings.ToLower(q)) {
		t = strings.Trim(t, `.,;:!?"'()`)
		if len(t) >= 2 {
			out = append(out, t)
		}
	}
	return out
}
