package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crownpages "github.com/phn-team/crown-pages-types"
)

func newTestServer() *Server {
	s := NewServer(crownpages.AllSections(), crownpages.AllFullPages())
	s.RegisterRoutes()
	return s
}

func doRequest(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestListSections(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/sections", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var defs []map[string]any
	decodeBody(t, rec, &defs)
	require.Len(t, defs, len(crownpages.ListSectionTypes()))
	assert.Equal(t, "hero", defs[0]["type"])
}

func TestListSections_ByCategory(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/sections?category=media", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var defs []map[string]any
	decodeBody(t, rec, &defs)
	require.NotEmpty(t, defs)
	for _, def := range defs {
		assert.Equal(t, "media", def["category"])
	}
}

func TestListSections_UnknownCategoryIsEmptyArray(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/sections?category=bogus", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetSection(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/sections/hero", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var def map[string]any
	decodeBody(t, rec, &def)
	assert.Equal(t, "hero", def["type"])
	assert.Equal(t, "Hero", def["name"])
}

func TestGetSection_Unknown(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/sections/not-a-real-type", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateSection(t *testing.T) {
	s := newTestServer()
	body := []byte(`{"title": "", "subtitle": "ok"}`)
	rec := doRequest(t, s, http.MethodPost, "/api/v1/sections/hero/validate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result crownpages.Result
	decodeBody(t, rec, &result)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Main Title is required"}, result.Errors)
}

func TestValidateSection_Valid(t *testing.T) {
	s := newTestServer()
	body := []byte(`{"title": "Hello there"}`)
	rec := doRequest(t, s, http.MethodPost, "/api/v1/sections/hero/validate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result crownpages.Result
	decodeBody(t, rec, &result)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateSection_UnknownTypeIsNegativeResult(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodPost, "/api/v1/sections/not-a-real-type/validate", []byte(`{}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var result crownpages.Result
	decodeBody(t, rec, &result)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Unknown section type: not-a-real-type"}, result.Errors)
}

func TestValidateSection_BadBody(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodPost, "/api/v1/sections/hero/validate", []byte(`{broken`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateFullPage(t *testing.T) {
	s := newTestServer()
	body := []byte(`{
		"intro": {"companyName": "Acme"},
		"contact": {"email": "hi@acme.example"}
	}`)
	rec := doRequest(t, s, http.MethodPost, "/api/v1/pages/business-landing/validate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result crownpages.Result
	decodeBody(t, rec, &result)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Services: Heading is required")
}

func TestDraftSection(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodPost, "/api/v1/sections/hero/draft", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var draft draftResponse
	decodeBody(t, rec, &draft)
	assert.NotEqual(t, uuid.Nil, draft.DraftID)
	assert.Equal(t, "hero", draft.Type)
	assert.Equal(t, "Welcome", draft.Data["title"])
	assert.False(t, draft.CreatedAt.IsZero())
}

func TestDraftFullPage(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodPost, "/api/v1/pages/business-landing/draft", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var draft draftResponse
	decodeBody(t, rec, &draft)
	assert.Equal(t, "business-landing", draft.Type)
	assert.Contains(t, draft.Data, "intro")
}

func TestDraft_RequiresPost(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/sections/hero/draft", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSectionSchemaEndpoint(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/sections/hero/schema", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var schema map[string]any
	decodeBody(t, rec, &schema)
	assert.Equal(t, "object", schema["type"])
	assert.Contains(t, schema["properties"], "title")
}

func TestListPages(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/pages", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var defs []map[string]any
	decodeBody(t, rec, &defs)
	require.Len(t, defs, len(crownpages.ListFullPageTypes()))
	assert.Equal(t, "business-landing", defs[0]["type"])
}

func TestGetPage_Unknown(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/pages/not-a-real-type", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIcons_Resolve(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/icons/star?platform=web", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "FaStar", resp["icon"])
}

func TestIcons_UnknownPassesThrough(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/icons/nonexistent?platform=mobile", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "nonexistent", resp["icon"])
}

func TestIcons_List(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/icons", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var values []string
	decodeBody(t, rec, &values)
	assert.Contains(t, values, "star")
}

func TestVersion(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	decodeBody(t, rec, &resp)
	assert.Equal(t, crownpages.SchemaVersion, resp["schemaVersion"])
}

func TestVersion_ClientCheck(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/api/v1/version?client="+crownpages.SchemaVersion, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	decodeBody(t, rec, &resp)
	assert.Equal(t, true, resp["compatible"])

	rec = doRequest(t, s, http.MethodGet, "/api/v1/version?client=1.0.0", nil)
	decodeBody(t, rec, &resp)
	assert.Equal(t, false, resp["compatible"])
}

func TestBundleEndpoint(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/bundle", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	decodeBody(t, rec, &resp)
	assert.Equal(t, crownpages.SchemaVersion, resp["schemaVersion"])

	sections, ok := resp["sections"].([]any)
	require.True(t, ok)
	assert.Len(t, sections, len(crownpages.ListSectionTypes()))
}

func TestUnknownResource(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/api/v1/widgets", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServerWithSupplementalSections(t *testing.T) {
	extra := &crownpages.SectionDefinition{
		Type:     "announcement",
		Name:     "Announcement",
		Category: crownpages.CategoryContent,
		Fields: crownpages.FieldList{
			crownpages.TextField{
				FieldMeta: crownpages.FieldMeta{Name: "message", Label: "Message", Required: true},
			},
		},
		DefaultData: map[string]any{"message": "Hello"},
	}

	s := NewServer(append(crownpages.AllSections(), extra), crownpages.AllFullPages())
	s.RegisterRoutes()

	rec := doRequest(t, s, http.MethodGet, "/api/v1/sections/announcement", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/api/v1/sections/announcement/validate", []byte(`{}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var result crownpages.Result
	decodeBody(t, rec, &result)
	assert.Equal(t, []string{"Message is required"}, result.Errors)
}
