package serviceImp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropbook/entities"
)

type fakeGuideRepo struct {
	docs   []entities.GuideDoc
	chunks []entities.GuideChunk
}

func (f *fakeGuideRepo) CreateDoc(d *entities.GuideDoc) error {
	d.DocID = uint(len(f.docs) + 1)
	f.docs = append(f.docs, *d)
	return nil
}

func (f *fakeGuideRepo) BulkInsertChunks(cs []entities.GuideChunk) error {
	f.chunks = append(f.chunks, cs...)
	return nil
}

func (f *fakeGuideRepo) ListDocs() ([]entities.GuideDoc, error) { return f.docs, nil }

func (f *fakeGuideRepo) AllChunks() ([]entities.GuideChunk, error) { return f.chunks, nil }

func (f *fakeGuideRepo) DocsByIDs(ids []uint) (map[uint]entities.GuideDoc, error) {
	m := map[uint]entities.GuideDoc{}
	for _, d := range f.docs {
		for _, id := range ids {
			if d.DocID == id {
				m[id] = d
			}
		}
	}
	return m, nil
}

func TestChunkTextSplitsAtNewlines(t *testing.T) {
	para := strings.Repeat("x", 120) + "\n"
	text := strings.Repeat(para, 10)

	parts := chunkText(text, 300)

	require.Greater(t, len(parts), 1)
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, p := range parts[:len(parts)-1] {
		assert.True(t, strings.HasSuffix(p, "\n"))
	}
}

func TestChunkTextShortDocSingleChunk(t *testing.T) {
	parts := chunkText("a short note without newline", 1000)
	require.Len(t, parts, 1)
	assert.Equal(t, "a short note without newline", parts[0])
}

func TestIngestDocumentStoresChunksInOrder(t *testing.T) {
	repo := &fakeGuideRepo{}
	svc := New(repo)

	long := strings.Repeat(strings.Repeat("w", 90)+"\n", 30)
	doc, n, err := svc.IngestDocument("Tomato pruning", "Tomato", long, "")

	require.NoError(t, err)
	assert.Equal(t, uint(1), doc.DocID)
	assert.Equal(t, n, len(repo.chunks))
	for i, ch := range repo.chunks {
		assert.Equal(t, i, ch.Ord)
		assert.Equal(t, doc.DocID, ch.DocID)
	}
}

func TestIngestDocumentRequiresTitle(t *testing.T) {
	svc := New(&fakeGuideRepo{})
	_, _, err := svc.IngestDocument("  ", "", "text", "")
	assert.Error(t, err)
}

func TestSearchRanksByTermOverlap(t *testing.T) {
	repo := &fakeGuideRepo{
		chunks: []entities.GuideChunk{
			{ChunkID: 1, DocID: 1, Text: "Prune tomato suckers weekly. Tomato plants need support."},
			{ChunkID: 2, DocID: 1, Text: "Water deeply in the morning."},
			{ChunkID: 3, DocID: 2, Text: "Tomato blight shows on lower leaves first."},
		},
	}
	svc := New(repo)

	hits, err := svc.Search("tomato", 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, uint(1), hits[0].ChunkID)
	assert.Equal(t, uint(3), hits[1].ChunkID)
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	svc := New(&fakeGuideRepo{chunks: []entities.GuideChunk{{ChunkID: 1, Text: "anything"}}})

	hits, err := svc.Search("   ", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
