package models

// Collection names a group of stored content documents.
type Collection string

const (
	CollectionBrands   Collection = "brands"
	CollectionModels   Collection = "models"
	CollectionUpcoming Collection = "upcoming"
	CollectionVariants Collection = "variants"
)

// AllCollections lists every collection in processing order.
var AllCollections = []Collection{CollectionBrands, CollectionModels, CollectionUpcoming, CollectionVariants}

// carContentFields gelten für Modelle und kommende Autos; "cons" bleibt unverändert.
var carContentFields = []string{"summary", "description", "exterior_design", "comfort_convenience", "pros", "header_seo"}

// ParseCollection resolves a collection name.
func ParseCollection(s string) (Collection, bool) {
	switch c := Collection(s); c {
	case CollectionBrands, CollectionModels, CollectionUpcoming, CollectionVariants:
		return c, true
	}
	return "", false
}

// HumanizableFields liefert die Textspalten, die humanisiert werden.
func HumanizableFields(c Collection) []string {
	switch c {
	case CollectionBrands:
		return []string{"summary"}
	case CollectionModels, CollectionUpcoming:
		return append([]string(nil), carContentFields...)
	case CollectionVariants:
		return []string{"description", "header_summary", "key_features", "exterior_design", "comfort_convenience", "engine_summary"}
	}
	return nil
}

// PreviewFields are the fields shown by a dry-run preview. Upcoming cars have none.
func PreviewFields(c Collection) []string {
	switch c {
	case CollectionBrands:
		return []string{"summary"}
	case CollectionModels:
		return []string{"summary", "description"}
	case CollectionVariants:
		return []string{"description", "header_summary"}
	}
	return nil
}

// HasEngineSummaries reports whether documents carry a list of engine summaries.
func HasEngineSummaries(c Collection) bool {
	return c == CollectionModels || c == CollectionUpcoming
}
