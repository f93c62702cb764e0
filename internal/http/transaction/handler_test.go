package transaction_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	txHandler "pennyledger/internal/http/transaction"
	"pennyledger/internal/ledger"
)

// memStore keeps the last saved state; persistence details are covered
// by the store package tests.
type memStore struct {
	saved *ledger.State
}

func (m *memStore) Load(ctx context.Context) (*ledger.State, error) {
	return nil, ledger.ErrNoState
}

func (m *memStore) Save(ctx context.Context, state *ledger.State) error {
	m.saved = state
	return nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc := ledger.NewService(&memStore{}, nil, nil)
	handler := txHandler.NewHandler(svc)

	router := chi.NewRouter()
	router.Route("/api/v1/transactions", handler.Routes)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestHandler_Create(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/transactions/",
		`{"description":"Morning coffee","amount":"4.50","type":"expense","category":"Food","date":"2025-09-25"}`)

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Transaction struct {
			ID     string  `json:"id"`
			Amount float64 `json:"amount"`
			Type   string  `json:"type"`
		} `json:"transaction"`
		Warnings map[string][]string `json:"warnings"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Transaction.ID)
	assert.Equal(t, -4.5, body.Transaction.Amount)
	assert.Equal(t, "expense", body.Transaction.Type)
	assert.Contains(t, body.Warnings["amount"], "Includes cents")
	assert.Contains(t, body.Warnings["description"], "Beverage purchase detected")
}

func TestHandler_CreateValidationError(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/transactions/",
		`{"description":" bad ","amount":"12.345","type":"expense","category":"Food2","date":"2025-09-25"}`)

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Fields map[string]struct {
			Errors []string `json:"errors"`
		} `json:"fields"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Fields, "description")
	assert.Contains(t, body.Fields, "amount")
	assert.Contains(t, body.Fields, "category")
}

func TestHandler_GetNotFound(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/transactions/missing")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_DeleteUnknownIDIsNoOp(t *testing.T) {
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/transactions/missing", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_ListFiltersAndSorts(t *testing.T) {
	srv := newServer(t)

	for _, body := range []string{
		`{"description":"Older groceries","amount":"20","type":"expense","category":"Food","date":"2025-09-20"}`,
		`{"description":"Bus ticket","amount":"2","type":"expense","category":"Transport","date":"2025-09-24"}`,
		`{"description":"Newer groceries","amount":"30","type":"expense","category":"Food","date":"2025-09-25"}`,
	} {
		resp := postJSON(t, srv.URL+"/api/v1/transactions/", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, err := http.Get(srv.URL + "/api/v1/transactions/?category=Food")
	require.NoError(t, err)
	defer resp.Body.Close()

	var list []struct {
		Description string `json:"description"`
		Date        string `json:"date"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "Newer groceries", list[0].Description, "most recent first")
	assert.Equal(t, "Older groceries", list[1].Description)
}
