package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	crownpages "github.com/phn-team/crown-pages-types"
	"github.com/phn-team/crown-pages-types/internal/bundle"
)

// apiHandler is the main router that dispatches to specific handlers
func (s *Server) apiHandler(w http.ResponseWriter, r *http.Request) {
	resource, key, action, err := parsePath(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid path: %v", err))
		return
	}

	switch resource {
	case "sections":
		s.handleSections(w, r, key, action)
	case "pages":
		s.handlePages(w, r, key, action)
	case "icons":
		s.handleIcons(w, r, key, action)
	default:
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown resource: %s", resource))
	}
}

// handleSections handles:
//
//	GET  /api/v1/sections?category=...
//	GET  /api/v1/sections/{type}
//	GET  /api/v1/sections/{type}/schema
//	POST /api/v1/sections/{type}/validate
//	POST /api/v1/sections/{type}/draft
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request, typeName, action string) {
	if typeName == "" {
		s.handleListSections(w, r)
		return
	}

	def, ok := s.sections.Get(typeName)
	if !ok {
		if action == "validate" {
			// Validation of an unknown type is a negative result, not a 404.
			writeSuccess(w, http.StatusOK, crownpages.Result{
				Valid:  false,
				Errors: []string{"Unknown section type: " + typeName},
			})
			return
		}
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown section type: %s", typeName))
		return
	}

	switch action {
	case "":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeSuccess(w, http.StatusOK, def)
	case "schema":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		schema, err := bundle.SectionSchema(def)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("schema export failed: %v", err))
			return
		}
		writeSuccess(w, http.StatusOK, schema)
	case "validate":
		s.handleValidate(w, r, func(data map[string]any) crownpages.Result {
			return def.Validate(data)
		})
	case "draft":
		s.handleDraft(w, r, def.Type, def.DefaultData)
	default:
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown action: %s", action))
	}
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if category := r.URL.Query().Get("category"); category != "" {
		writeSuccess(w, http.StatusOK, s.sections.ByCategory(crownpages.Category(category)))
		return
	}
	writeSuccess(w, http.StatusOK, s.sections.All())
}

// handlePages mirrors handleSections for full page definitions. Drafts seed
// one sub-object per page section.
func (s *Server) handlePages(w http.ResponseWriter, r *http.Request, typeName, action string) {
	if typeName == "" {
		s.handleListPages(w, r)
		return
	}

	def, ok := s.pages.Get(typeName)
	if !ok {
		if action == "validate" {
			writeSuccess(w, http.StatusOK, crownpages.Result{
				Valid:  false,
				Errors: []string{"Unknown full page type: " + typeName},
			})
			return
		}
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown full page type: %s", typeName))
		return
	}

	switch action {
	case "":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeSuccess(w, http.StatusOK, def)
	case "schema":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		schema, err := bundle.FullPageSchema(def)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("schema export failed: %v", err))
			return
		}
		writeSuccess(w, http.StatusOK, schema)
	case "validate":
		s.handleValidate(w, r, func(data map[string]any) crownpages.Result {
			return def.Validate(data)
		})
	case "draft":
		defaults := make(map[string]any, len(def.Sections))
		for _, section := range def.Sections {
			defaults[section.ID] = section.DefaultData
		}
		s.handleDraft(w, r, def.Type, defaults)
	default:
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown action: %s", action))
	}
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if category := r.URL.Query().Get("category"); category != "" {
		writeSuccess(w, http.StatusOK, s.pages.ByCategory(crownpages.Category(category)))
		return
	}
	writeSuccess(w, http.StatusOK, s.pages.All())
}

// handleValidate decodes the content payload and runs the supplied check.
// Validation failures are a 200 with valid=false; only a broken request is
// an HTTP error.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request, check func(map[string]any) crownpages.Result) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var data map[string]any
	if err := readJSONBody(r, &data); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid json body: %v", err))
		return
	}

	writeSuccess(w, http.StatusOK, check(data))
}

// draftResponse is a freshly minted, unsaved content instance seeded with
// the type's default data.
type draftResponse struct {
	DraftID   uuid.UUID      `json:"draftId"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request, typeName string, defaults map[string]any) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if defaults == nil {
		defaults = map[string]any{}
	}

	writeSuccess(w, http.StatusCreated, draftResponse{
		DraftID:   uuid.New(),
		Type:      typeName,
		Data:      defaults,
		CreatedAt: time.Now().UTC(),
	})
}

// handleIcons handles GET /api/v1/icons and GET /api/v1/icons/{value}?platform=
func (s *Server) handleIcons(w http.ResponseWriter, r *http.Request, value, action string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if action != "" {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown action: %s", action))
		return
	}

	if value == "" {
		writeSuccess(w, http.StatusOK, crownpages.IconValues())
		return
	}

	platform := crownpages.Platform(r.URL.Query().Get("platform"))
	writeSuccess(w, http.StatusOK, map[string]string{
		"value":    value,
		"platform": string(platform),
		"icon":     crownpages.ResolveIcon(value, platform),
	})
}

// handleVersion handles GET /api/v1/version. With ?client=<version>, the
// response also reports whether that client version is compatible.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp := map[string]any{"schemaVersion": crownpages.SchemaVersion}
	if client := r.URL.Query().Get("client"); client != "" {
		resp["client"] = client
		resp["compatible"] = crownpages.IsCompatible(client)
	}
	writeSuccess(w, http.StatusOK, resp)
}

// handleBundle handles GET /api/v1/bundle, serving the catalog this server
// instance actually holds, supplemental definitions included.
func (s *Server) handleBundle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeSuccess(w, http.StatusOK, &bundle.Bundle{
		SchemaVersion: crownpages.SchemaVersion,
		GeneratedAt:   time.Now().UTC(),
		Sections:      s.sections.All(),
		FullPages:     s.pages.All(),
	})
}
