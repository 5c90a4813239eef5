package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"janseva/application"
	"janseva/auth"
	"janseva/document"
	"janseva/grievance"
	"janseva/profile"
	"janseva/scheme"
	"janseva/session"
	"janseva/submission"
)

func (s *server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.auth.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "email already registered")
		case errors.Is(err, auth.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, viewFromUser(*user))
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.auth.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	// Session caches start fresh on every sign-in.
	s.dropSession(result.User.ID)
	s.sessionFor(result.User.ID)

	writeJSON(w, http.StatusOK, map[string]any{
		"token": result.Token,
		"user":  viewFromUser(result.User),
	})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())
	s.dropSession(identity.UserID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleMe(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())

	user, err := s.auth.GetUserByID(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	p, err := s.profiles.GetOrCreate(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load profile")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":    viewFromUser(*user),
		"profile": viewFromProfile(p),
	})
}

// handleUpdateProfile has PUT replace semantics: the body carries the
// full set of citizen-editable fields and omitted ones are cleared.
// Only aadhaar_verified is kept out of the citizen's reach.
func (s *server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())

	var params profile.UpdateParams
	if err := readJSON(r, &params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := s.profiles.Update(r.Context(), identity.UserID, params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "update profile")
		return
	}
	writeJSON(w, http.StatusOK, viewFromProfile(p))
}

func (s *server) handleListSchemes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := scheme.Filters{
		Category: q.Get("category"),
		Ministry: q.Get("ministry"),
		Region:   q.Get("region"),
	}

	schemes, err := s.schemes.List(r.Context(), filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list schemes")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"schemes": viewsFromSchemes(schemes)})
}

func (s *server) handleGetScheme(w http.ResponseWriter, r *http.Request) {
	sch, err := s.schemes.GetByID(r.Context(), chi.URLParam(r, "schemeID"))
	if err != nil {
		if errors.Is(err, scheme.ErrNotFound) {
			writeError(w, http.StatusNotFound, "scheme not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "get scheme")
		return
	}
	writeJSON(w, http.StatusOK, viewFromScheme(sch))
}

func (s *server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())

	p, err := s.profiles.GetOrCreate(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load profile")
		return
	}
	schemes, err := s.schemes.Recommend(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "recommend schemes")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"schemes": viewsFromSchemes(schemes)})
}

func (s *server) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())

	fields, docs, err := parseSubmissionForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	schemeID, _ := fields["scheme_id"].(string)
	delete(fields, "scheme_id")

	rec, err := s.applications.Submit(r.Context(), application.SubmitParams{
		UserID:    identity.UserID,
		SchemeID:  schemeID,
		Fields:    fields,
		Documents: docs,
	})
	if err != nil {
		writeSubmissionError(w, err)
		return
	}

	view := viewFromRecord(rec)
	s.sessionFor(identity.UserID).Applications.Append(session.Entry{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Value:     view,
	})
	writeJSON(w, http.StatusCreated, view)
}

func (s *server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())

	apps, err := s.applications.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list applications")
		return
	}

	views := make([]applicationView, 0, len(apps))
	entries := make([]session.Entry, 0, len(apps))
	for _, a := range apps {
		v := viewFromApplication(a)
		views = append(views, v)
		entries = append(entries, session.Entry{ID: a.ID, CreatedAt: a.CreatedAt, Value: v})
	}
	s.sessionFor(identity.UserID).Applications.Replace(entries)

	writeJSON(w, http.StatusOK, map[string]any{"applications": views})
}

func (s *server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())

	app, err := s.applications.GetByID(r.Context(), identity.UserID, chi.URLParam(r, "applicationID"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			writeError(w, http.StatusNotFound, "application not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "get application")
		return
	}
	writeJSON(w, http.StatusOK, viewFromApplication(app))
}

type reviewBody struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason"`
}

func (s *server) handleReviewApplication(w http.ResponseWriter, r *http.Request) {
	if !requireOfficial(w, r) {
		return
	}

	var body reviewBody
	if err := readJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := s.applications.Review(r.Context(), chi.URLParam(r, "applicationID"), submission.Status(body.Status), body.RejectionReason)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			writeError(w, http.StatusNotFound, "application not found")
		case errors.Is(err, application.ErrBadStatus):
			writeError(w, http.StatusBadRequest, "invalid status")
		default:
			writeError(w, http.StatusInternalServerError, "review application")
		}
		return
	}
	writeJSON(w, http.StatusOK, viewFromApplication(app))
}

func (s *server) handleSubmitGrievance(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())

	fields, docs, err := parseSubmissionForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := grievance.SubmitParams{
		UserID:    identity.UserID,
		Documents: docs,
	}
	if v, _ := fields["issue_type"].(string); v != "" {
		params.IssueType = grievance.IssueType(v)
	}
	params.Description, _ = fields["description"].(string)
	if v, _ := fields["application_id"].(string); v != "" {
		params.ApplicationID = &v
	}
	if v, _ := fields["scheme_id"].(string); v != "" {
		params.SchemeID = &v
	}

	rec, err := s.grievances.Submit(r.Context(), params)
	if err != nil {
		writeSubmissionError(w, err)
		return
	}

	view := viewFromRecord(rec)
	s.sessionFor(identity.UserID).Grievances.Append(session.Entry{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Value:     view,
	})
	writeJSON(w, http.StatusCreated, view)
}

func (s *server) handleListGrievances(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())

	items, err := s.grievances.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list grievances")
		return
	}

	views := make([]grievanceView, 0, len(items))
	entries := make([]session.Entry, 0, len(items))
	for _, g := range items {
		v := viewFromGrievance(g)
		views = append(views, v)
		entries = append(entries, session.Entry{ID: g.ID, CreatedAt: g.CreatedAt, Value: v})
	}
	s.sessionFor(identity.UserID).Grievances.Replace(entries)

	writeJSON(w, http.StatusOK, map[string]any{"grievances": views})
}

func (s *server) handleGetGrievance(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())

	g, err := s.grievances.GetByID(r.Context(), identity.UserID, chi.URLParam(r, "grievanceID"))
	if err != nil {
		if errors.Is(err, grievance.ErrNotFound) {
			writeError(w, http.StatusNotFound, "grievance not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "get grievance")
		return
	}
	writeJSON(w, http.StatusOK, viewFromGrievance(g))
}

type respondBody struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

func (s *server) handleRespondGrievance(w http.ResponseWriter, r *http.Request) {
	if !requireOfficial(w, r) {
		return
	}

	var body respondBody
	if err := readJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := s.grievances.Respond(r.Context(), chi.URLParam(r, "grievanceID"), submission.Status(body.Status), body.Response)
	if err != nil {
		switch {
		case errors.Is(err, grievance.ErrNotFound):
			writeError(w, http.StatusNotFound, "grievance not found")
		case errors.Is(err, grievance.ErrBadStatus):
			writeError(w, http.StatusBadRequest, "invalid status")
		default:
			writeError(w, http.StatusInternalServerError, "respond grievance")
		}
		return
	}
	writeJSON(w, http.StatusOK, viewFromGrievance(g))
}

func (s *server) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	blob, err := s.documents.Get(r.Context(), chi.URLParam(r, "*"))
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "download document")
		return
	}

	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Cache-Control", blob.CacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob.Payload)
}

type chatBody struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.CurrentIdentity(r.Context())

	var body chatBody
	if err := readJSON(r, &body); err != nil || body.Message == "" {
		writeError(w, http.StatusBadRequest, "message required")
		return
	}

	chat := s.chatFor(identity.UserID, body.Language)
	if body.Language != "" {
		chat.SetLanguage(body.Language)
	}
	reply := chat.Send(body.Message)

	writeJSON(w, http.StatusOK, map[string]any{
		"reply":   reply,
		"history": chat.History(),
	})
}

// requireOfficial gates reviewer endpoints on the official role.
func requireOfficial(w http.ResponseWriter, r *http.Request) bool {
	identity, ok := auth.CurrentIdentity(r.Context())
	if !ok || identity.Role != auth.RoleOfficial {
		writeError(w, http.StatusForbidden, "official role required")
		return false
	}
	return true
}

// writeSubmissionError maps the pipeline's error taxonomy onto HTTP
// statuses: caller errors are 400, a failed upload is a bad upstream,
// a failed insert is internal. The failing label is surfaced so the
// user knows which document to fix before resubmitting.
func writeSubmissionError(w http.ResponseWriter, err error) {
	var upErr *submission.UploadError
	var insErr *submission.InsertError
	switch {
	case errors.Is(err, submission.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &upErr):
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "document upload failed",
			"label": upErr.Label,
		})
	case errors.As(err, &insErr):
		writeError(w, http.StatusInternalServerError, "submission could not be saved")
	default:
		writeError(w, http.StatusInternalServerError, "submission failed")
	}
}

// maxSubmissionForm bounds an in-memory multipart parse.
const maxSubmissionForm = 32 << 20

// parseSubmissionForm extracts the field snapshot and the ordered
// document list from a multipart submit request. Files arrive under
// the repeated "documents" key; the parallel "labels" values name them,
// falling back to the uploaded filename. Plain JSON bodies (no files)
// are accepted too.
func parseSubmissionForm(r *http.Request) (map[string]any, []submission.Document, error) {
	if err := r.ParseMultipartForm(maxSubmissionForm); err != nil {
		var body struct {
			Fields map[string]any `json:"fields"`
		}
		if err := readJSON(r, &body); err != nil {
			return nil, nil, fmt.Errorf("invalid request body")
		}
		if body.Fields == nil {
			body.Fields = map[string]any{}
		}
		return body.Fields, nil, nil
	}

	fields := map[string]any{}
	if dataStr := r.FormValue("data"); dataStr != "" {
		if err := json.Unmarshal([]byte(dataStr), &fields); err != nil {
			return nil, nil, fmt.Errorf("invalid data JSON")
		}
	}

	var docs []submission.Document
	if r.MultipartForm != nil {
		labels := r.MultipartForm.Value["labels"]
		for i, fh := range r.MultipartForm.File["documents"] {
			f, err := fh.Open()
			if err != nil {
				return nil, nil, fmt.Errorf("open uploaded file %q", fh.Filename)
			}
			payload, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, nil, fmt.Errorf("read uploaded file %q", fh.Filename)
			}
			label := fh.Filename
			if i < len(labels) && labels[i] != "" {
				label = labels[i]
			}
			docs = append(docs, submission.Document{Label: label, Payload: payload})
		}
	}

	return fields, docs, nil
}
