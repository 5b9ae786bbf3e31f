package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Careplus-api/internal/application/dto"
	"github.com/jhoicas/Careplus-api/internal/application/usecase"
	"github.com/jhoicas/Careplus-api/internal/domain"
	"github.com/jhoicas/Careplus-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Careplus-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memRepo repositorio en memoria con inyección de errores.
type memRepo struct {
	mu      sync.Mutex
	rows    map[int]entity.Receptionist
	nextID  int
	err     error // devuelto por todas las operaciones
	saveErr error // devuelto solo por Save
}

func newMemRepo(seed ...entity.Receptionist) *memRepo {
	r := &memRepo{rows: map[int]entity.Receptionist{}, nextID: 1}
	for _, s := range seed {
		r.rows[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *memRepo) FindByID(_ context.Context, id int) (*entity.Receptionist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	rec, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *memRepo) FindByNumber(_ context.Context, number string) (*entity.Receptionist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, rec := range r.sorted() {
		if rec.Number == number {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *memRepo) FindAll(_ context.Context) ([]*entity.Receptionist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(), nil
}

func (r *memRepo) FindByNameContainingIgnoreCase(_ context.Context, name string) ([]*entity.Receptionist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Receptionist, 0)
	for _, rec := range r.sorted() {
		if strings.Contains(strings.ToLower(rec.Name), strings.ToLower(name)) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	rec, err := r.FindByNumber(ctx, number)
	return rec != nil, err
}

func (r *memRepo) Save(_ context.Context, rec *entity.Receptionist) (*entity.Receptionist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	if rec.ID == 0 {
		rec.ID = r.nextID
		r.nextID++
	}
	r.rows[rec.ID] = *rec
	return rec, nil
}

func (r *memRepo) Delete(_ context.Context, rec *entity.Receptionist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.rows, rec.ID)
	return nil
}

func (r *memRepo) sorted() []*entity.Receptionist {
	out := make([]*entity.Receptionist, 0, len(r.rows))
	for _, rec := range r.rows {
		rec := rec
		out = append(out, &rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type fakePDF struct{ err error }

func (f fakePDF) GenerateRosterPDF(_ context.Context, list []*entity.Receptionist) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(fmt.Sprintf("%%PDF-1.3 rows=%d", len(list))), nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

var seed = []entity.Receptionist{
	{ID: 1, Name: "Priya Sharma", Number: "9876543210", Password: "secret1"},
	{ID: 2, Name: "Ann", Number: "R-200", Password: "pw2"},
}

func buildTestApp(repo *memRepo) *fiber.App {
	return buildTestAppWithPDF(repo, fakePDF{})
}

func buildTestAppWithPDF(repo *memRepo, gen fakePDF) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestID())
	apphttp.Router(app, apphttp.RouterDeps{
		ReceptionistUC: usecase.NewReceptionistUseCase(repo),
		RosterUC:       usecase.NewRosterUseCase(repo, gen),
		DB:             fakePinger{},
		AppName:        "careplus-test",
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PorIDNumerico(t *testing.T) {
	app := buildTestApp(newMemRepo(seed...))

	resp := doRequest(t, app, http.MethodPost, "/api/receptionists/login",
		dto.ReceptionistLoginRequest{Identifier: "1", Password: "secret1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ReceptionistLoginResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &out))
	assert.Equal(t, "Login successful", out.Message)
	assert.Equal(t, "Priya Sharma", out.Name)
}

func TestLogin_PorNumber(t *testing.T) {
	app := buildTestApp(newMemRepo(seed...))

	resp := doRequest(t, app, http.MethodPost, "/api/receptionists/login",
		dto.ReceptionistLoginRequest{Identifier: "R-200", Password: "pw2"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"name":"Ann"`)
}

func TestLogin_IdentifierNumericoJSON(t *testing.T) {
	app := buildTestApp(newMemRepo(seed...))

	resp := doRequest(t, app, http.MethodPost, "/api/receptionists/login",
		`{"identifier":1,"password":"secret1"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Login successful","name":"Priya Sharma"}`, readBody(t, resp))

	resp = doRequest(t, app, http.MethodPost, "/api/receptionists/login",
		`{"identifier":2,"password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := buildTestApp(newMemRepo(seed...))

	cases := []dto.ReceptionistLoginRequest{
		{Identifier: "1", Password: "SECRET1"},   // password distinto (mayúsculas)
		{Identifier: "R-200", Password: "wrong"}, // number con password incorrecto
		{Identifier: "42", Password: "secret1"},  // id inexistente
		{Identifier: "nobody", Password: "x"},    // number inexistente
	}
	for _, in := range cases {
		resp := doRequest(t, app, http.MethodPost, "/api/receptionists/login", in)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "identifier %q", in.Identifier)
		assert.JSONEq(t, `{"message":"Invalid credentials"}`, readBody(t, resp))
	}
}

func TestLogin_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(newMemRepo(seed...))

	resp := doRequest(t, app, http.MethodPost, "/api/receptionists/login", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_ErrorDeStore(t *testing.T) {
	repo := newMemRepo(seed...)
	repo.err = errors.New("db down")
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodPost, "/api/receptionists/login",
		dto.ReceptionistLoginRequest{Identifier: "1", Password: "secret1"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := readBody(t, resp)
	assert.JSONEq(t, `{"code":"INTERNAL","message":"Something went wrong on the server."}`, body)
	assert.NotContains(t, body, "db down")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestList(t *testing.T) {
	app := buildTestApp(newMemRepo(seed...))

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.ReceptionistResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Priya Sharma", out[0].Name)
}

func TestList_StoreVacio(t *testing.T) {
	app := buildTestApp(newMemRepo())

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, readBody(t, resp))
}

func TestList_ErrorDeStoreCuerpoVacio(t *testing.T) {
	repo := newMemRepo(seed...)
	repo.err = errors.New("db down")
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, readBody(t, resp))
}

func TestGetByID(t *testing.T) {
	app := buildTestApp(newMemRepo(seed...))

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists/2", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":2,"name":"Ann","number":"R-200","password":"pw2"}`, readBody(t, resp))

	resp = doRequest(t, app, http.MethodGet, "/api/receptionists/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Receptionist not found")

	resp = doRequest(t, app, http.MethodGet, "/api/receptionists/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "INVALID_ID")
}

func TestGetByID_ErrorDeStoreCuerpoVacio(t *testing.T) {
	repo := newMemRepo(seed...)
	repo.err = errors.New("db down")
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists/1", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, readBody(t, resp))
}

func TestSearch_SubcadenaSinMayusculas(t *testing.T) {
	app := buildTestApp(newMemRepo(
		entity.Receptionist{ID: 1, Name: "Ann", Number: "1"},
		entity.Receptionist{ID: 2, Name: "ANNE", Number: "2"},
		entity.Receptionist{ID: 3, Name: "banana-ann", Number: "3"},
		entity.Receptionist{ID: 4, Name: "Bob", Number: "4"},
	))

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists/search?name=ann", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.ReceptionistResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &out))
	names := make([]string, 0, len(out))
	for _, r := range out {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Ann", "ANNE", "banana-ann"}, names)
}

func TestSearch_SinParametro(t *testing.T) {
	app := buildTestApp(newMemRepo(seed...))

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists/search", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/receptionists/search?name=", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.ReceptionistResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &out))
	assert.Len(t, out, 2)
}

func TestSearch_ErrorDeStoreCuerpoVacio(t *testing.T) {
	repo := newMemRepo(seed...)
	repo.err = errors.New("db down")
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists/search?name=x", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, readBody(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RoundTrip(t *testing.T) {
	repo := newMemRepo(seed...)
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodPost, "/api/receptionists",
		dto.ReceptionistRequest{Name: "Carla", Number: "555-0303", Password: "pass33"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Receptionist added successfully.", readBody(t, resp))

	resp = doRequest(t, app, http.MethodGet, "/api/receptionists/3", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":3,"name":"Carla","number":"555-0303","password":"pass33"}`, readBody(t, resp))
}

func TestCreate_NumberDuplicado(t *testing.T) {
	repo := newMemRepo(seed...)
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodPost, "/api/receptionists",
		dto.ReceptionistRequest{Name: "Otra", Number: "R-200", Password: "x"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Receptionist with this number already exists.", readBody(t, resp))
	assert.Equal(t, 2, repo.count(), "no debe persistir el duplicado")
}

func TestCreate_ErrorDeValidacion400(t *testing.T) {
	repo := newMemRepo()
	repo.saveErr = fmt.Errorf("%w: value too long", domain.ErrInvalidInput)
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodPost, "/api/receptionists",
		dto.ReceptionistRequest{Name: "Ann", Number: "1", Password: "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Failed to add receptionist: invalid input: value too long", readBody(t, resp))
}

func TestCreate_ErrorInesperado500(t *testing.T) {
	repo := newMemRepo()
	repo.saveErr = errors.New("connection reset")
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodPost, "/api/receptionists",
		dto.ReceptionistRequest{Name: "Ann", Number: "1", Password: "x"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Something went wrong on the server.", readBody(t, resp))
}

func TestUpdate(t *testing.T) {
	repo := newMemRepo(seed...)
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodPut, "/api/receptionists/2",
		dto.ReceptionistRequest{Name: "Ann Marie", Number: "R-201", Password: "pw3"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Receptionist updated successfully.", readBody(t, resp))

	rec, _ := repo.FindByID(context.Background(), 2)
	require.NotNil(t, rec)
	assert.Equal(t, entity.Receptionist{ID: 2, Name: "Ann Marie", Number: "R-201", Password: "pw3"}, *rec)
}

func TestUpdate_Inexistente(t *testing.T) {
	repo := newMemRepo(seed...)
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodPut, "/api/receptionists/99",
		dto.ReceptionistRequest{Name: "X", Number: "X", Password: "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Receptionist not found", readBody(t, resp))
	assert.Equal(t, 2, repo.count())
	_, exists := repo.rows[99]
	assert.False(t, exists)
}

func TestUpdate_ErrorDeValidacion404(t *testing.T) {
	repo := newMemRepo(seed...)
	repo.saveErr = fmt.Errorf("%w: value too long", domain.ErrInvalidInput)
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodPut, "/api/receptionists/1",
		dto.ReceptionistRequest{Name: "X", Number: "X", Password: "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "invalid input: value too long", readBody(t, resp))
}

func TestUpdate_ErrorInesperado500(t *testing.T) {
	repo := newMemRepo(seed...)
	repo.saveErr = errors.New("connection reset")
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodPut, "/api/receptionists/1",
		dto.ReceptionistRequest{Name: "X", Number: "X", Password: "X"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to update receptionist: connection reset", readBody(t, resp))
}

func TestDelete(t *testing.T) {
	repo := newMemRepo(seed...)
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodDelete, "/api/receptionists/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Receptionist deleted successfully.", readBody(t, resp))
	assert.Equal(t, 1, repo.count())

	resp = doRequest(t, app, http.MethodDelete, "/api/receptionists/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Receptionist not found", readBody(t, resp))
	assert.Equal(t, 1, repo.count())
}

func TestDelete_ErrorDeStore500(t *testing.T) {
	repo := newMemRepo(seed...)
	repo.err = errors.New("db down")
	app := buildTestApp(repo)

	resp := doRequest(t, app, http.MethodDelete, "/api/receptionists/1", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.True(t, strings.HasPrefix(readBody(t, resp), "Failed to delete receptionist: "))
	repo.err = nil
	assert.Equal(t, 2, repo.count())
}

// ──────────────────────────────────────────────────────────────────────────────
// Export, health y request id
// ──────────────────────────────────────────────────────────────────────────────

func TestExportPDF(t *testing.T) {
	app := buildTestApp(newMemRepo(seed...))

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists/export/pdf", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "receptionists_")
	assert.Equal(t, "%PDF-1.3 rows=2", readBody(t, resp))
}

func TestExportPDF_ErrorNoExponeDetalle(t *testing.T) {
	app := buildTestAppWithPDF(newMemRepo(seed...), fakePDF{err: errors.New("font cache: permission denied")})

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists/export/pdf", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := readBody(t, resp)
	assert.JSONEq(t, `{"code":"INTERNAL","message":"Something went wrong on the server."}`, body)
	assert.NotContains(t, body, "permission denied")
}

func TestHealth(t *testing.T) {
	app := buildTestApp(newMemRepo())
	resp := doRequest(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"careplus-test"}`, readBody(t, resp))

	down := fiber.New()
	apphttp.Router(down, apphttp.RouterDeps{
		ReceptionistUC: usecase.NewReceptionistUseCase(newMemRepo()),
		RosterUC:       usecase.NewRosterUseCase(newMemRepo(), fakePDF{}),
		DB:             fakePinger{err: errors.New("refused")},
		AppName:        "careplus-test",
	})
	resp = doRequest(t, down, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRequestID(t *testing.T) {
	app := buildTestApp(newMemRepo())

	resp := doRequest(t, app, http.MethodGet, "/api/receptionists", nil)
	assert.NotEmpty(t, resp.Header.Get(apphttp.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/receptionists", nil)
	req.Header.Set(apphttp.RequestIDHeader, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.RequestIDHeader))
}

func TestRequestID_DisponibleEnLocals(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Get("/rid", func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/rid", nil)
	req.Header.Set(apphttp.RequestIDHeader, "req-456")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-456", readBody(t, resp))

	resp = doRequest(t, app, http.MethodGet, "/rid", nil)
	generated := resp.Header.Get(apphttp.RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, readBody(t, resp))
}
