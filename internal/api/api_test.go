package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/m/internal/config"
	"pharmacy/m/internal/database"
	"pharmacy/m/internal/migrations"
)

func newTestRouter(t *testing.T, opts Options) http.Handler {
	t.Helper()
	db, err := database.Connect(config.DriverSQLite, ":memory:", 1)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(db))

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return New(db, opts).Router()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return doWithToken(t, h, method, target, body, "")
}

func doWithToken(t *testing.T, h http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeObject(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m), raw)
	return m
}

func decodeList(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var l []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &l), raw)
	return l
}

type resourceCase struct {
	name       string
	collection string
	key        string
	record     string
	updated    string
	mismatched string
}

var resourceCases = []resourceCase{
	{
		name:       "customer",
		collection: "/api/customers",
		key:        "/api/customers/123-45-6789",
		record:     `{"ssn":"123-45-6789","first_name":"Jane","last_name":"Doe","phone":"555-0100","gender":"F","address":"1 Main St","date_of_birth":"1980-05-17T00:00:00Z"}`,
		updated:    `{"ssn":"123-45-6789","first_name":"Jane","last_name":"Roe","phone":"555-0199","gender":"F","address":"2 Side St","date_of_birth":"1980-05-17T00:00:00Z"}`,
		mismatched: `{"ssn":"999-99-9999","first_name":"Mallory","last_name":"","phone":"","address":""}`,
	},
	{
		name:       "medicine",
		collection: "/api/medicines",
		key:        "/api/medicines/Amoxicillin/B-100",
		record:     `{"drug_name":"Amoxicillin","batch_number":"B-100","medicine_type":"antibiotic","manufacturer":"Acme","quantity":40,"expiry_date":"2026-01-31T00:00:00Z","price":12.5}`,
		updated:    `{"drug_name":"Amoxicillin","batch_number":"B-100","medicine_type":"antibiotic","manufacturer":"Acme","quantity":12,"expiry_date":"2026-01-31T00:00:00Z","price":13.75}`,
		mismatched: `{"drug_name":"Amoxicillin","batch_number":"B-200","medicine_type":"","manufacturer":"","quantity":0}`,
	},
	{
		name:       "prescription",
		collection: "/api/prescriptions",
		key:        "/api/prescriptions/7",
		record:     `{"prescription_id":7,"ssn":"123-45-6789","doctor_id":3,"prescription_date":"2024-06-01T00:00:00Z"}`,
		updated:    `{"prescription_id":7,"ssn":"123-45-6789","doctor_id":4,"prescription_date":"2024-06-03T00:00:00Z"}`,
		mismatched: `{"prescription_id":8,"ssn":"123-45-6789","doctor_id":9}`,
	},
	{
		name:       "order",
		collection: "/api/orders",
		key:        "/api/orders/100",
		record:     `{"order_id":100,"prescription_id":7,"employee_id":2,"order_date":"2024-06-02T14:30:00Z"}`,
		updated:    `{"order_id":100,"prescription_id":7,"employee_id":5,"order_date":"2024-06-02T16:00:00Z"}`,
		mismatched: `{"order_id":101,"prescription_id":7,"employee_id":9,"order_date":"2024-06-02T14:30:00Z"}`,
	},
	{
		name:       "ordered drug",
		collection: "/api/ordereddrugs",
		key:        "/api/ordereddrugs/100/Amoxicillin/B-100",
		record:     `{"order_id":100,"drug_name":"Amoxicillin","batch_number":"B-100","quantity":2,"price":25}`,
		updated:    `{"order_id":100,"drug_name":"Amoxicillin","batch_number":"B-100","quantity":3,"price":37.5}`,
		mismatched: `{"order_id":101,"drug_name":"Amoxicillin","batch_number":"B-100","quantity":9}`,
	},
	{
		name:       "bill",
		collection: "/api/bills",
		key:        "/api/bills/100",
		record:     `{"order_id":100,"customer_ssn":"123-45-6789","total_amount":25,"customer_payment":30}`,
		updated:    `{"order_id":100,"customer_ssn":"123-45-6789","total_amount":25,"customer_payment":25}`,
		mismatched: `{"order_id":101,"customer_ssn":"123-45-6789","total_amount":1}`,
	},
}

func TestResourceLifecycle(t *testing.T) {
	for _, tc := range resourceCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestRouter(t, Options{})
			want := decodeObject(t, tc.record)

			rec := do(t, h, http.MethodPost, tc.collection, tc.record)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.Equal(t, want, decodeObject(t, rec.Body.String()))
			assert.NotEmpty(t, rec.Header().Get("Location"))

			rec = do(t, h, http.MethodGet, tc.key, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, want, decodeObject(t, rec.Body.String()))

			rec = do(t, h, http.MethodGet, tc.collection, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []map[string]any{want}, decodeList(t, rec.Body.String()))

			rec = do(t, h, http.MethodPut, tc.key, tc.mismatched)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			rec = do(t, h, http.MethodGet, tc.key, "")
			assert.Equal(t, want, decodeObject(t, rec.Body.String()), "mismatched update must not change the record")

			rec = do(t, h, http.MethodPut, tc.key, tc.updated)
			require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
			rec = do(t, h, http.MethodGet, tc.key, "")
			assert.Equal(t, decodeObject(t, tc.updated), decodeObject(t, rec.Body.String()))

			rec = do(t, h, http.MethodDelete, tc.key, "")
			assert.Equal(t, http.StatusNoContent, rec.Code)
			rec = do(t, h, http.MethodGet, tc.key, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)

			rec = do(t, h, http.MethodDelete, tc.key, "")
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestCustomerExample(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := do(t, h, http.MethodPost, "/api/customers", `{"ssn":"123456789","first_name":"John"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/customers/123456789", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "John", decodeObject(t, rec.Body.String())["first_name"])

	rec = do(t, h, http.MethodDelete, "/api/customers/123456789", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/customers/123456789", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListReturnsEveryCreatedRecord(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := do(t, h, http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	for _, ssn := range []string{"1", "2", "3"} {
		rec = do(t, h, http.MethodPost, "/api/customers", `{"ssn":"`+ssn+`","first_name":"C`+ssn+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ssns []string
	for _, c := range decodeList(t, rec.Body.String()) {
		ssns = append(ssns, c["ssn"].(string))
	}
	assert.ElementsMatch(t, []string{"1", "2", "3"}, ssns)
}

func TestCreateDuplicateKeyFails(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := do(t, h, http.MethodPost, "/api/customers", `{"ssn":"1","first_name":"A"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/customers", `{"ssn":"1","first_name":"B"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/customers/1", "")
	assert.Equal(t, "A", decodeObject(t, rec.Body.String())["first_name"])
}

func TestUpdateOfMissingRecordIsNoOp(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := do(t, h, http.MethodPut, "/api/orders/5", `{"order_id":5,"prescription_id":1,"employee_id":1,"order_date":"2024-06-02T14:30:00Z"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/orders/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBadRequests(t *testing.T) {
	h := newTestRouter(t, Options{})

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"malformed json", http.MethodPost, "/api/customers", `{"ssn":`},
		{"unknown field", http.MethodPost, "/api/customers", `{"ssn":"1","nickname":"x"}`},
		{"missing ssn", http.MethodPost, "/api/customers", `{"first_name":"John"}`},
		{"gender too long", http.MethodPost, "/api/customers", `{"ssn":"1","gender":"MF"}`},
		{"missing batch number", http.MethodPost, "/api/medicines", `{"drug_name":"Aspirin"}`},
		{"non numeric order id", http.MethodGet, "/api/orders/abc", ""},
		{"non numeric notification id", http.MethodDelete, "/api/notifications/abc", ""},
		{"non numeric bill order id", http.MethodGet, "/api/bills/abc/123", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, decodeObject(t, rec.Body.String()), "error")
		})
	}
}

func TestMedicineKeyWithSpaces(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := do(t, h, http.MethodPost, "/api/medicines", `{"drug_name":"Vitamin C","batch_number":"VC 1","quantity":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/api/medicines/Vitamin%20C/VC%201", rec.Header().Get("Location"))

	rec = do(t, h, http.MethodGet, "/api/medicines/Vitamin%20C/VC%201", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Vitamin C", decodeObject(t, rec.Body.String())["drug_name"])
}

func TestKeysWithEscapesRoundTripThroughLocation(t *testing.T) {
	h := newTestRouter(t, Options{})

	tests := []struct {
		name       string
		collection string
		body       string
		field      string
		want       string
	}{
		{"percent in drug name", "/api/medicines", `{"drug_name":"Mix%41","batch_number":"B1","quantity":1}`, "drug_name", "Mix%41"},
		{"escaped slash in ssn", "/api/customers", `{"ssn":"a%2Fb","first_name":"Esc"}`, "ssn", "a%2Fb"},
		{"slash in ssn", "/api/customers", `{"ssn":"c/d","first_name":"Slash"}`, "ssn", "c/d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.collection, tt.body)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			location := rec.Header().Get("Location")

			rec = do(t, h, http.MethodGet, location, "")
			require.Equal(t, http.StatusOK, rec.Code, "GET %s: %s", location, rec.Body.String())
			assert.Equal(t, tt.want, decodeObject(t, rec.Body.String())[tt.field])

			rec = do(t, h, http.MethodDelete, location, "")
			assert.Equal(t, http.StatusNoContent, rec.Code)
			rec = do(t, h, http.MethodGet, location, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestTimesWithOffsetsRoundTrip(t *testing.T) {
	h := newTestRouter(t, Options{})

	customer := `{"ssn":"2","first_name":"Ana","last_name":"","phone":"","address":"","date_of_birth":"1980-05-17T00:00:00-05:00"}`
	order := `{"order_id":1,"prescription_id":7,"employee_id":2,"order_date":"2024-06-02T14:30:00+02:00"}`

	for _, tc := range []struct{ collection, key, body string }{
		{"/api/customers", "/api/customers/2", customer},
		{"/api/orders", "/api/orders/1", order},
	} {
		rec := do(t, h, http.MethodPost, tc.collection, tc.body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = do(t, h, http.MethodGet, tc.key, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, tc.body, rec.Body.String())

		rec = do(t, h, http.MethodGet, tc.collection, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, "["+tc.body+"]", rec.Body.String())
	}
}

func TestHealthHidesDriverErrors(t *testing.T) {
	db, err := database.Connect(config.DriverSQLite, ":memory:", 1)
	require.NoError(t, err)
	h := New(db, Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}).Router()
	require.NoError(t, db.Close())

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

func TestBillCustomerKey(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := do(t, h, http.MethodPost, "/api/bills", `{"order_id":100,"customer_ssn":"123","total_amount":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/api/bills/100/123", rec.Header().Get("Location"))

	rec = do(t, h, http.MethodGet, "/api/bills/100/123", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/bills/100/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/bills/100/999", `{"order_id":100,"customer_ssn":"123","total_amount":99}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodPut, "/api/bills/100/123", `{"order_id":100,"customer_ssn":"123","total_amount":12}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/bills/100/999", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/bills/100", "")
	require.Equal(t, http.StatusOK, rec.Code, "delete with another customer must leave the bill")
	assert.Equal(t, 12.0, decodeObject(t, rec.Body.String())["total_amount"])

	rec = do(t, h, http.MethodDelete, "/api/bills/100/123", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/bills/100", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderedDrugsByOrder(t *testing.T) {
	h := newTestRouter(t, Options{})

	for _, body := range []string{
		`{"order_id":100,"drug_name":"Aspirin","batch_number":"A1","quantity":1}`,
		`{"order_id":100,"drug_name":"Ibuprofen","batch_number":"I1","quantity":2}`,
		`{"order_id":101,"drug_name":"Aspirin","batch_number":"A1","quantity":3}`,
	} {
		rec := do(t, h, http.MethodPost, "/api/ordereddrugs", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, h, http.MethodGet, "/api/ordereddrugs/100", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec.Body.String()), 2)

	rec = do(t, h, http.MethodGet, "/api/ordereddrugs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec.Body.String()), 3)
}

func TestPrescriptionsFilteredBySSN(t *testing.T) {
	h := newTestRouter(t, Options{})

	for _, body := range []string{
		`{"prescription_id":1,"ssn":"111","doctor_id":1}`,
		`{"prescription_id":2,"ssn":"222","doctor_id":1}`,
		`{"prescription_id":3,"ssn":"111","doctor_id":2}`,
	} {
		rec := do(t, h, http.MethodPost, "/api/prescriptions", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, h, http.MethodGet, "/api/prescriptions?ssn=111", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ids []float64
	for _, p := range decodeList(t, rec.Body.String()) {
		ids = append(ids, p["prescription_id"].(float64))
	}
	assert.ElementsMatch(t, []float64{1, 3}, ids)
}

func TestOrderWithoutIDGetsOne(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := do(t, h, http.MethodPost, "/api/orders", `{"prescription_id":7,"employee_id":2,"order_date":"2024-06-02T14:30:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decodeObject(t, rec.Body.String())["order_id"].(float64)
	assert.NotZero(t, id)
	assert.Equal(t, "/api/orders/"+formatID(id), rec.Header().Get("Location"))
}

func formatID(id float64) string {
	return strconv.FormatInt(int64(id), 10)
}

func TestNotificationLifecycle(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := do(t, h, http.MethodPost, "/api/notifications", `{"message":"Amoxicillin B-100 below reorder level","type":"stock"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeObject(t, rec.Body.String())
	id := formatID(created["id"].(float64))
	assert.NotEqual(t, "0", id)
	key := "/api/notifications/" + id

	rec = do(t, h, http.MethodGet, key, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeObject(t, rec.Body.String()))

	rec = do(t, h, http.MethodPut, key, `{"id":`+id+`9,"message":"other","type":"stock"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, key, `{"id":`+id+`,"message":"restocked","type":"info"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, key, "")
	assert.JSONEq(t, `{"id":`+id+`,"message":"restocked","type":"info"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/notifications", "")
	assert.Len(t, decodeList(t, rec.Body.String()), 1)

	rec = do(t, h, http.MethodDelete, key, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, key, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBillInvoice(t *testing.T) {
	h := newTestRouter(t, Options{})

	for target, body := range map[string]string{
		"/api/customers":    `{"ssn":"123","first_name":"John","last_name":"Smith"}`,
		"/api/orders":       `{"order_id":100,"prescription_id":1,"employee_id":1,"order_date":"2024-06-02T14:30:00Z"}`,
		"/api/ordereddrugs": `{"order_id":100,"drug_name":"Aspirin","batch_number":"A1","quantity":2,"price":4.5}`,
		"/api/bills":        `{"order_id":100,"customer_ssn":"123","total_amount":9,"customer_payment":10}`,
	} {
		rec := do(t, h, http.MethodPost, target, body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, h, http.MethodGet, "/api/bills/100/invoice", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))

	rec = do(t, h, http.MethodGet, "/api/bills/404/invoice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	do(t, h, http.MethodGet, "/api/customers", "")

	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pharmacy_http_requests_total")
	assert.Contains(t, rec.Body.String(), `route="/api/customers`)
}
