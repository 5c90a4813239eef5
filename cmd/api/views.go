package main

import (
	"time"

	"janseva/application"
	"janseva/auth"
	"janseva/grievance"
	"janseva/profile"
	"janseva/scheme"
	"janseva/submission"
)

// Response shapes. Domain structs carry no JSON tags so each
// presentation layer maps them explicitly.

type userView struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func viewFromUser(u auth.User) userView {
	return userView{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: string(u.Role)}
}

type profileView struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Age             *int    `json:"age"`
	Gender          *string `json:"gender"`
	CasteCategory   *string `json:"caste_category"`
	Religion        *string `json:"religion"`
	AnnualIncome    *int64  `json:"annual_income"`
	State           *string `json:"state"`
	District        *string `json:"district"`
	CityVillage     *string `json:"city_village"`
	AadhaarVerified bool    `json:"aadhaar_verified"`
	AvatarURL       *string `json:"avatar_url"`
}

func viewFromProfile(p profile.Profile) profileView {
	return profileView{
		ID:              p.ID,
		Name:            p.Name,
		Age:             p.Age,
		Gender:          p.Gender,
		CasteCategory:   p.CasteCategory,
		Religion:        p.Religion,
		AnnualIncome:    p.AnnualIncome,
		State:           p.State,
		District:        p.District,
		CityVillage:     p.CityVillage,
		AadhaarVerified: p.AadhaarVerified,
		AvatarURL:       p.AvatarURL,
	}
}

type schemeView struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	EligibilityCriteria string     `json:"eligibility_criteria"`
	Benefits            string     `json:"benefits"`
	RequiredDocuments   []string   `json:"required_documents"`
	Ministry            string     `json:"ministry"`
	Category            string     `json:"category"`
	Regions             []string   `json:"regions,omitempty"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	ApplicationLink     *string    `json:"application_link,omitempty"`
	OfficialWebsite     *string    `json:"official_website,omitempty"`
}

func viewFromScheme(s scheme.Scheme) schemeView {
	return schemeView{
		ID:                  s.ID,
		Title:               s.Title,
		Description:         s.Description,
		EligibilityCriteria: s.EligibilityCriteria,
		Benefits:            s.Benefits,
		RequiredDocuments:   s.RequiredDocuments,
		Ministry:            s.Ministry,
		Category:            s.Category,
		Regions:             s.Regions,
		ExpiryDate:          s.ExpiryDate,
		ApplicationLink:     s.ApplicationLink,
		OfficialWebsite:     s.OfficialWebsite,
	}
}

func viewsFromSchemes(schemes []scheme.Scheme) []schemeView {
	out := make([]schemeView, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, viewFromScheme(s))
	}
	return out
}

type recordView struct {
	ID           string         `json:"id"`
	SchemeID     *string        `json:"scheme_id,omitempty"`
	Status       string         `json:"status"`
	Fields       map[string]any `json:"fields"`
	DocumentRefs []string       `json:"document_ids"`
	CreatedAt    time.Time      `json:"created_at"`
}

func viewFromRecord(rec submission.Record) recordView {
	refs := rec.DocumentRefs
	if refs == nil {
		refs = []string{}
	}
	return recordView{
		ID:           rec.ID,
		SchemeID:     rec.SchemeID,
		Status:       string(rec.Status),
		Fields:       rec.Fields,
		DocumentRefs: refs,
		CreatedAt:    rec.CreatedAt,
	}
}

type applicationView struct {
	ID              string         `json:"id"`
	SchemeID        string         `json:"scheme_id"`
	SchemeTitle     string         `json:"scheme_title,omitempty"`
	Status          string         `json:"status"`
	RejectionReason *string        `json:"rejection_reason,omitempty"`
	DocumentRefs    []string       `json:"document_ids"`
	SubmittedData   map[string]any `json:"submitted_data"`
	CreatedAt       time.Time      `json:"created_at"`
}

func viewFromApplication(a application.Application) applicationView {
	v := applicationView{
		ID:              a.ID,
		SchemeID:        a.SchemeID,
		Status:          string(a.Status),
		RejectionReason: a.RejectionReason,
		DocumentRefs:    a.DocumentRefs,
		SubmittedData:   a.SubmittedData,
		CreatedAt:       a.CreatedAt,
	}
	if a.Scheme != nil {
		v.SchemeTitle = a.Scheme.Title
	}
	return v
}

type grievanceView struct {
	ID            string    `json:"id"`
	ApplicationID *string   `json:"application_id,omitempty"`
	SchemeID      *string   `json:"scheme_id,omitempty"`
	IssueType     string    `json:"issue_type"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Response      *string   `json:"response,omitempty"`
	DocumentRefs  []string  `json:"document_ids"`
	CreatedAt     time.Time `json:"created_at"`
}

func viewFromGrievance(g grievance.Grievance) grievanceView {
	return grievanceView{
		ID:            g.ID,
		ApplicationID: g.ApplicationID,
		SchemeID:      g.SchemeID,
		IssueType:     string(g.IssueType),
		Description:   g.Description,
		Status:        string(g.Status),
		Response:      g.Response,
		DocumentRefs:  g.DocumentRefs,
		CreatedAt:     g.CreatedAt,
	}
}
