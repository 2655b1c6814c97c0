package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/events"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/middleware"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository/mocks"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/campaign"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/crm"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/enrichment"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/insights"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/llm"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/search"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/auth"
)

const testToken = "test-token"

type testEnv struct {
	router    http.Handler
	shipments *mocks.ShipmentRepository
	contacts  *mocks.ContactRepository
	campaigns *mocks.CampaignRepository
}

func newTestEnv(t *testing.T, plan domain.Plan) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	store := config.NewStore(config.Default())
	bus := events.NewBus(logger)

	env := &testEnv{
		shipments: mocks.NewShipmentRepository(),
		contacts:  mocks.NewContactRepository(),
		campaigns: mocks.NewCampaignRepository(),
	}
	env.router = NewRouter(RouterDeps{
		Config: store,
		Verifier: auth.StaticVerifier{
			Token:     testToken,
			Principal: domain.Principal{UserID: "u-1", OrgID: "org-1", Plan: plan},
		},
		Idempotency: mocks.NewIdempotencyStore(),
		Logger:      logger,
		Search:      NewSearchHandler(search.NewService(env.shipments, store, nil, logger), logger),
		Contacts:    NewContactHandler(crm.NewService(env.contacts, bus, nil, logger), store, logger),
		Estimate:    NewEstimateHandler(logger),
		Insights: NewInsightsHandler(insights.NewService(env.shipments, enrichment.NewService(nil, logger),
			llm.NewService(nil, 0, nil, logger), store, logger), logger),
		Campaigns: NewCampaignHandler(campaign.NewService(env.campaigns, bus, logger), store, logger),
	})
	return env
}

func (e *testEnv) do(method, target string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func seedOcean(repo *mocks.ShipmentRepository, n int) {
	for i := 0; i < n; i++ {
		repo.Add(domain.Shipment{
			ID:                 fmt.Sprintf("s-%02d", i),
			Mode:               domain.ModeOcean,
			CompanyName:        "Acme Imports",
			OriginCity:         "Shanghai",
			OriginCountry:      "CN",
			DestinationCity:    "Los Angeles",
			DestinationCountry: "US",
			Carrier:            "Maersk",
			HSCode:             "850440",
			ShipmentDate:       fmt.Sprintf("2024-03-%02d", i+1),
		})
	}
}

func TestUnifiedSearchEndToEnd(t *testing.T) {
	env := newTestEnv(t, domain.PlanPro)
	seedOcean(env.shipments, 30)
	env.shipments.Add(domain.Shipment{ID: "air-1", Mode: domain.ModeAir, ShipmentDate: "2024-04-01"})

	w := env.do(http.MethodGet, "/api/search/unified?q=&mode=ocean&limit=25&offset=0", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["items"], 25)
	assert.EqualValues(t, 30, body["total"])
	assert.Equal(t, true, body["hasMore"])
	assert.EqualValues(t, 25, body["limit"])
	assert.EqualValues(t, 0, body["offset"])
}

func TestUnifiedSearchFailure(t *testing.T) {
	env := newTestEnv(t, domain.PlanPro)
	env.shipments.SetError("SearchUnified", errors.New("postgrest: 503"))

	w := env.do(http.MethodGet, "/api/search/unified?q=acme", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, search.FailureMessage, body["error"])
	assert.Equal(t, []interface{}{}, body["items"])
}

func TestRepeatedSearchFailuresKeepEnvelope(t *testing.T) {
	env := newTestEnv(t, domain.PlanPro)
	env.shipments.SetError("SearchUnified", errors.New("postgrest: 503"))

	for i := 0; i < 8; i++ {
		w := env.do(http.MethodGet, "/api/search/unified?q=acme", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code, "attempt %d", i)
		body := decode(t, w)
		assert.Equal(t, search.FailureMessage, body["error"])
		assert.Equal(t, []interface{}{}, body["items"])
		assert.EqualValues(t, 0, body["total"])
		assert.Equal(t, false, body["hasMore"])
	}

	w := env.do(http.MethodPost, "/api/estimate/tariff", map[string]interface{}{"hs_code": "8504.40", "customs_value": 1000})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/estimate/quote", map[string]interface{}{"mode": "air", "weight_kg": 10})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticationRequired(t *testing.T) {
	env := newTestEnv(t, domain.PlanPro)

	req := httptest.NewRequest(http.MethodGet, "/api/search/unified", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestExportWorkbook(t *testing.T) {
	env := newTestEnv(t, domain.PlanPro)
	seedOcean(env.shipments, 3)

	w := env.do(http.MethodGet, "/api/search/unified/export?mode=ocean", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment;")
	assert.Equal(t, "3", w.Header().Get("X-Export-Rows"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	rows, err := f.GetRows(search.ExportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestExportShedsLoadAfterRepeatedFailures(t *testing.T) {
	env := newTestEnv(t, domain.PlanPro)
	env.shipments.SetError("SearchUnified", errors.New("postgrest: 503"))

	for i := 0; i < 5; i++ {
		w := env.do(http.MethodGet, "/api/search/unified/export", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code, "attempt %d", i)
	}

	w := env.do(http.MethodGet, "/api/search/unified/export", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = env.do(http.MethodGet, "/api/search/unified?q=acme", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, search.FailureMessage, decode(t, w)["error"])
}

func TestContactUpsertFlow(t *testing.T) {
	env := newTestEnv(t, domain.PlanPro)

	first := env.do(http.MethodPost, "/api/crm/contacts", map[string]interface{}{
		"company_name": "Acme Imports",
		"email":        "Ops@Acme.com ",
		"tags":         []string{"importer"},
	})
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	body := decode(t, first)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["created"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ops@acme.com", data["email"])
	assert.Equal(t, "org-1", data["org_id"])

	second := env.do(http.MethodPost, "/api/crm/contacts", map[string]interface{}{
		"company_name": "Acme Imports",
		"email":        "ops@acme.com",
		"tags":         []string{"ocean"},
	})
	require.Equal(t, http.StatusOK, second.Code, second.Body.String())
	body = decode(t, second)
	assert.Equal(t, false, body["created"])
	assert.ElementsMatch(t, []interface{}{"importer", "ocean"}, body["data"].(map[string]interface{})["tags"])
	assert.Len(t, env.contacts.All(), 1)

	list := env.do(http.MethodGet, "/api/crm/contacts?limit=10", nil)
	require.Equal(t, http.StatusOK, list.Code)
	listBody := decode(t, list)
	assert.EqualValues(t, 1, listBody["total"])
	assert.Equal(t, false, listBody["hasMore"])
}

func TestContactUpsertErrors(t *testing.T) {
	t.Run("Should reject invalid input", func(t *testing.T) {
		env := newTestEnv(t, domain.PlanPro)
		w := env.do(http.MethodPost, "/api/crm/contacts", map[string]interface{}{"email": "ops@acme.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w)["error"], "company_name")
	})

	t.Run("Should reject malformed body", func(t *testing.T) {
		env := newTestEnv(t, domain.PlanPro)
		w := env.do(http.MethodPost, "/api/crm/contacts", "not an object")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should hide store failures", func(t *testing.T) {
		env := newTestEnv(t, domain.PlanPro)
		env.contacts.SetError("Insert", errors.New("duplicate key value violates unique constraint"))
		w := env.do(http.MethodPost, "/api/crm/contacts", map[string]interface{}{"company_name": "Acme"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, crm.SaveFailedMessage, decode(t, w)["error"])
	})
}

func TestContactUpsertIdempotencyReplay(t *testing.T) {
	env := newTestEnv(t, domain.PlanPro)
	body := map[string]interface{}{"company_name": "Acme", "external_id": "ext-1"}

	first := env.do(http.MethodPost, "/api/crm/contacts", body, middleware.IdempotencyKeyHeader, "k-1")
	second := env.do(http.MethodPost, "/api/crm/contacts", body, middleware.IdempotencyKeyHeader, "k-1")

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.ReplayedHeader))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, env.contacts.Calls("Insert"))
}

func TestTariffEndpoint(t *testing.T) {
	env := newTestEnv(t, domain.PlanFree)

	t.Run("Should estimate from body without auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/estimate/tariff",
			bytes.NewBufferString(`{"hs_code":"8504.40","incoterm":"fob","customs_value":10000}`))
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.EqualValues(t, 2.5, data["duty_rate"])
		assert.EqualValues(t, 250, data["est_duty"])
		assert.EqualValues(t, 100, data["est_tax"])
		assert.EqualValues(t, 350, data["est_total"])
		assert.NotEmpty(t, data["notes"])
	})

	t.Run("Should estimate from query", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/estimate/tariff?hs_code=999999&incoterm=DDP&customs_value=1000", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.EqualValues(t, 3, data["duty_rate"])
		assert.EqualValues(t, 15, data["est_tax"])
	})

	t.Run("Should reject bad numbers", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/estimate/tariff?customs_value=lots", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = env.do(http.MethodPost, "/api/estimate/tariff", map[string]interface{}{"customs_value": -5})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestQuoteEndpoint(t *testing.T) {
	env := newTestEnv(t, domain.PlanFree)

	w := env.do(http.MethodPost, "/api/estimate/quote", map[string]interface{}{
		"mode":      "AIR",
		"weight_kg": 10,
	})

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "air", data["mode"])
	assert.EqualValues(t, 191.25, data["base_freight"])
	assert.Equal(t, "USD", data["currency"])
}

func TestCompanyInsightsEndpoint(t *testing.T) {
	t.Run("Should fall back to heuristic on free plan", func(t *testing.T) {
		env := newTestEnv(t, domain.PlanFree)
		seedOcean(env.shipments, 5)

		w := env.do(http.MethodGet, "/api/insights/company?name=Acme+Imports", nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "heuristic", data["source"])
		assert.Equal(t, insights.ReasonPlan, data["fallback_reason"])
		assert.NotEmpty(t, data["summary"])
	})

	t.Run("Should flag unavailable AI on pro plan", func(t *testing.T) {
		env := newTestEnv(t, domain.PlanPro)
		seedOcean(env.shipments, 2)

		w := env.do(http.MethodGet, "/api/insights/company?name=Acme+Imports", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "heuristic", data["source"])
		assert.Equal(t, llm.ReasonUnavailable, data["fallback_reason"])
	})

	t.Run("Should require a name", func(t *testing.T) {
		env := newTestEnv(t, domain.PlanPro)
		w := env.do(http.MethodGet, "/api/insights/company", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCampaignEndpoints(t *testing.T) {
	env := newTestEnv(t, domain.PlanPro)

	w := env.do(http.MethodPost, "/api/campaigns", map[string]interface{}{
		"name":        "Q3 importers",
		"channel":     "Email",
		"contact_ids": []string{"c-1", "c-2", "c-1"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "draft", data["status"])
	assert.Len(t, data["contact_ids"], 2)

	w = env.do(http.MethodPost, "/api/campaigns", map[string]interface{}{"name": "No contacts", "channel": "email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodGet, "/api/campaigns", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])
}

func TestHealthAndDocs(t *testing.T) {
	env := newTestEnv(t, domain.PlanFree)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["data"].(map[string]interface{})["status"])

	req = httptest.NewRequest(http.MethodGet, "/api/swagger", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	doc := decode(t, w)
	assert.Equal(t, "2.0", doc["swagger"])
	assert.Contains(t, doc["paths"], "/search/unified")
}
