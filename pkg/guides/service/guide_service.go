package service

import "cropbook/entities"

type GuideService interface {
	IngestDocument(title, crop, text, sourceURL string) (*entities.GuideDoc, int, error)
	Search(query string, k int) ([]entities.GuideChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.GuideDoc, error)
}
