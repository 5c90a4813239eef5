package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"janseva/application"
	"janseva/assistant"
	"janseva/auth"
	"janseva/document"
	"janseva/grievance"
	"janseva/profile"
	"janseva/scheme"
	"janseva/session"
	"janseva/submission"
)

// Service interfaces consumed by the handlers. Defined here so tests
// can substitute stubs without a database.

type authService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.User, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error)
	GetUserByID(ctx context.Context, userID string) (*auth.User, error)
	VerifyToken(tokenString string) (string, auth.Role, error)
}

type profileService interface {
	GetOrCreate(ctx context.Context, userID string) (profile.Profile, error)
	Update(ctx context.Context, userID string, params profile.UpdateParams) (profile.Profile, error)
}

type schemeService interface {
	List(ctx context.Context, filters scheme.Filters) ([]scheme.Scheme, error)
	GetByID(ctx context.Context, id string) (scheme.Scheme, error)
	Recommend(ctx context.Context, p profile.Profile) ([]scheme.Scheme, error)
}

type applicationService interface {
	Submit(ctx context.Context, params application.SubmitParams) (submission.Record, error)
	ListByUser(ctx context.Context, userID string) ([]application.Application, error)
	GetByID(ctx context.Context, userID, id string) (application.Application, error)
	Review(ctx context.Context, id string, status submission.Status, rejectionReason *string) (application.Application, error)
}

type grievanceService interface {
	Submit(ctx context.Context, params grievance.SubmitParams) (submission.Record, error)
	ListByUser(ctx context.Context, userID string) ([]grievance.Grievance, error)
	GetByID(ctx context.Context, userID, id string) (grievance.Grievance, error)
	Respond(ctx context.Context, id string, status submission.Status, response string) (grievance.Grievance, error)
}

type documentGetter interface {
	Get(ctx context.Context, ref string) (document.Blob, error)
}

type server struct {
	auth         authService
	profiles     profileService
	schemes      schemeService
	applications applicationService
	grievances   grievanceService
	documents    documentGetter
	cacheLimit   int

	mu       sync.Mutex
	sessions map[string]*session.Session
	chats    map[string]*assistant.Conversation
}

func newServer(
	authSvc authService,
	profiles profileService,
	schemes schemeService,
	applications applicationService,
	grievances grievanceService,
	documents documentGetter,
	cacheLimit int,
) *server {
	return &server{
		auth:         authSvc,
		profiles:     profiles,
		schemes:      schemes,
		applications: applications,
		grievances:   grievances,
		documents:    documents,
		cacheLimit:   cacheLimit,
		sessions:     make(map[string]*session.Session),
		chats:        make(map[string]*assistant.Conversation),
	}
}

// sessionFor returns the owner's record caches, creating them on first
// use after sign-in.
func (s *server) sessionFor(ownerID string) *session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[ownerID]
	if !ok {
		sess = session.New(ownerID, s.cacheLimit)
		s.sessions[ownerID] = sess
	}
	return sess
}

// chatFor returns the owner's conversation, creating it on first use.
func (s *server) chatFor(ownerID, lang string) *assistant.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[ownerID]
	if !ok {
		c = assistant.NewConversation(lang)
		s.chats[ownerID] = c
	}
	return c
}

// dropSession tears down the owner's caches and conversation at
// sign-out.
func (s *server) dropSession(ownerID string) {
	s.mu.Lock()
	delete(s.sessions, ownerID)
	delete(s.chats, ownerID)
	s.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func readJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
