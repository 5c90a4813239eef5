package scheme

import "time"

// Scheme mirrors the schemes table. It carries the eligibility bounds
// used by Recommend as well as the display fields the catalog serves.
type Scheme struct {
	ID                  string
	Title               string
	Description         string
	EligibilityCriteria string
	Benefits            string
	RequiredDocuments   []string
	Ministry            string
	Category            string
	RegionSpecific      bool
	Regions             []string
	IncomeLimit         *int64
	AgeMin              *int
	AgeMax              *int
	GenderSpecific      *string
	CasteCategories     []string
	ExpiryDate          *time.Time
	ApplicationLink     *string
	OfficialWebsite     *string
	CreatedAt           time.Time
}

// Filters narrows catalog listings. Zero values mean "no constraint".
type Filters struct {
	Category string
	Ministry string
	Region   string
}
