package profile

import "time"

// Profile is the demographic record keyed by the owning user's id. It
// drives scheme eligibility recommendations.
type Profile struct {
	ID              string
	Name            string
	Age             *int
	Gender          *string
	CasteCategory   *string
	Religion        *string
	AnnualIncome    *int64
	State           *string
	District        *string
	CityVillage     *string
	AadhaarVerified bool
	AvatarURL       *string
	CreatedAt       time.Time
}

// UpdateParams contains the citizen-editable profile fields.
// AadhaarVerified is deliberately absent: only official flows flip it.
type UpdateParams struct {
	Name          string  `json:"name"`
	Age           *int    `json:"age"`
	Gender        *string `json:"gender"`
	CasteCategory *string `json:"caste_category"`
	Religion      *string `json:"religion"`
	AnnualIncome  *int64  `json:"annual_income"`
	State         *string `json:"state"`
	District      *string `json:"district"`
	CityVillage   *string `json:"city_village"`
	AvatarURL     *string `json:"avatar_url"`
}
