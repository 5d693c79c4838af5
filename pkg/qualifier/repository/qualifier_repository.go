package repository

import "cropbook/entities"

type QualifierRepository interface {
	// UpsertDefinition patches the definition with the same
	// (name, location) key, inserting when none exists. An empty
	// location is a distinct key from any location value.
	UpsertDefinition(def *entities.QualifierDefinition) (created bool, err error)
	FindByNameLocation(name, location string) (*entities.QualifierDefinition, error)
	ListDefinitions() ([]entities.QualifierDefinition, error)

	// ReconcileUniversals converges the stored universal set to
	// exactly latest: upsert by question text, delete anything absent.
	ReconcileUniversals(latest []entities.UniversalQualifier) error
	ListUniversals() ([]entities.UniversalQualifier, error)
}
