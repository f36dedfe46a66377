//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/caffeinepub/supply-chain-management-app/internal/config"
	"github.com/caffeinepub/supply-chain-management-app/internal/infra"
	"github.com/caffeinepub/supply-chain-management-app/internal/router"
	"github.com/caffeinepub/supply-chain-management-app/internal/worker"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("procurement_test"),
		tcPostgres.WithUsername("procurement"),
		tcPostgres.WithPassword("procurement"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:           8000,
		Env:            "test",
		DatabaseURL:    pgURL,
		RedisURL:       rdURL,
		WorkerPoolSize: 1,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	mailCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	dispatcher := worker.NewDispatcher(rdb)

	srv := httptest.NewServer(router.New(cfg, db, rdb, mailCB, dispatcher))
	t.Cleanup(srv.Close)
	return srv
}

func createRequisition(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp := do(t, srv, "POST", "/v1/requisitions", jsonBody(t, map[string]any{
		"requested_by": "Sam Ortega",
		"department":   "Operations",
		"items": []map[string]any{
			{"description": "Hard hats", "quantity": 25, "estimated_cost": "18.00"},
		},
		"total_estimated_cost": "450.00",
		"justification":        "Safety gear",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &created)
	require.NotEmpty(t, created.ID)
	return created.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_RequisitionApprovalCycle(t *testing.T) {
	srv := setupServer(t)
	id := createRequisition(t, srv)

	resp := do(t, srv, "POST", "/v1/requisitions/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, "POST", "/v1/requisitions/"+id+"/approve", jsonBody(t, map[string]string{
		"approver_name": "Dana Whitfield",
		"comments":      "within budget",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var approved struct {
		Status  string `json:"status"`
		History []struct {
			Action       string `json:"action"`
			ApproverName string `json:"approver_name"`
		} `json:"approval_history"`
	}
	decodeJSON(t, resp, &approved)
	assert.Equal(t, "approved", approved.Status)
	require.Len(t, approved.History, 2)
	assert.Equal(t, "submitted", approved.History[0].Action)
	assert.Equal(t, "approved", approved.History[1].Action)

	// Terminal: a second decision conflicts.
	resp = do(t, srv, "POST", "/v1/requisitions/"+id+"/reject", jsonBody(t, map[string]string{
		"approver_name": "Dana Whitfield",
		"comments":      "changed my mind",
	}))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_RejectWithoutCommentsLeavesNoTrace(t *testing.T) {
	srv := setupServer(t)
	id := createRequisition(t, srv)

	resp := do(t, srv, "POST", "/v1/requisitions/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, "POST", "/v1/requisitions/"+id+"/reject", jsonBody(t, map[string]string{
		"approver_name": "Dana Whitfield",
	}))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, "GET", "/v1/requisitions/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched struct {
		Status  string            `json:"status"`
		History []json.RawMessage `json:"approval_history"`
	}
	decodeJSON(t, resp, &fetched)
	assert.Equal(t, "pendingApproval", fetched.Status)
	assert.Len(t, fetched.History, 1)
}

// Two approvals race for the same pending requisition; exactly one wins.
func TestE2E_ConcurrentApprovals(t *testing.T) {
	srv := setupServer(t)
	id := createRequisition(t, srv)

	resp := do(t, srv, "POST", "/v1/requisitions/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var wg sync.WaitGroup
	codes := make(chan int, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := do(t, srv, "POST", "/v1/requisitions/"+id+"/approve", jsonBody(t, map[string]string{
				"approver_name": "Dana Whitfield",
			}))
			codes <- resp.StatusCode
			resp.Body.Close()
		}()
	}
	wg.Wait()
	close(codes)

	var ok, conflict int
	for code := range codes {
		switch code {
		case http.StatusOK:
			ok++
		case http.StatusConflict:
			conflict++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflict)

	resp = do(t, srv, "GET", "/v1/requisitions/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched struct {
		Status  string            `json:"status"`
		History []json.RawMessage `json:"approval_history"`
	}
	decodeJSON(t, resp, &fetched)
	assert.Equal(t, "approved", fetched.Status)
	assert.Len(t, fetched.History, 2)
}

func TestE2E_VendorAndQuotationFlow(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, srv, "POST", "/v1/vendors", jsonBody(t, map[string]string{
		"company_name":   "Northfield Industrial Supply",
		"contact_person": "Dana Whitfield",
		"email":          "dana@northfield-supply.example",
		"phone_number":   "+1-555-0142",
		"address":        "310 Harbor Rd",
		"category":       "industrial",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var vendor struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeJSON(t, resp, &vendor)
	assert.Equal(t, "active", vendor.Status)

	resp = do(t, srv, "POST", "/v1/quotation-requests", jsonBody(t, map[string]any{
		"description":            "Nitrile gloves, size M",
		"quantity":               5000,
		"unit_of_measurement":    "box",
		"required_delivery_date": "2026-10-15T00:00:00Z",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var request struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &request)

	resp = do(t, srv, "POST", "/v1/quotations", jsonBody(t, map[string]any{
		"vendor_id":       vendor.ID,
		"request_id":      request.ID,
		"unit_price":      "8.40",
		"total_price":     "42000.00",
		"validity_period": "2026-12-01T00:00:00Z",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var quotation struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &quotation)

	resp = do(t, srv, "PATCH", "/v1/quotations/"+quotation.ID+"/status", jsonBody(t, map[string]string{
		"status": "accepted",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Accepting a quotation leaves the request untouched.
	resp = do(t, srv, "GET", "/v1/quotation-requests/"+request.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reloaded struct {
		Status string `json:"status"`
	}
	decodeJSON(t, resp, &reloaded)
	assert.Equal(t, "pending", reloaded.Status)

	resp = do(t, srv, "GET", "/v1/quotation-requests/"+request.ID+"/quotations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []json.RawMessage
	decodeJSON(t, resp, &list)
	assert.Len(t, list, 1)
}

func TestE2E_Health(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, srv, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health struct {
		OK       bool   `json:"ok"`
		DB       string `json:"db"`
		Redis    string `json:"redis"`
		Mail     string `json:"mail"`
		DLQDepth int64  `json:"notifications_dlq"`
	}
	decodeJSON(t, resp, &health)
	assert.True(t, health.OK)
	assert.Equal(t, "connected", health.DB)
	assert.Equal(t, "connected", health.Redis)
	assert.Equal(t, "closed", health.Mail)
	assert.Zero(t, health.DLQDepth)
}
