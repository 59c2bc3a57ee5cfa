package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crunchyspot/crunchyspot-api/internal/application/auth"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/entity"
	apphttp "github.com/crunchyspot/crunchyspot-api/internal/interfaces/http"
	pkgjwt "github.com/crunchyspot/crunchyspot-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "crunchyspot-test"
	testExpMin    = 60

	adminEmail = "admin@x.com"
	userEmail  = "user@x.com"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
// Cuenta las consultas para verificar que los guards no tocan el store
// cuando la credencial ya falló.
type fakeUserRepo struct {
	byEmail    map[string]*entity.User
	findCalls  int
	createdIDs []string
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[string]*entity.User)
	for _, u := range users {
		m[u.Email] = u
	}
	return &fakeUserRepo{byEmail: m}
}

func (f *fakeUserRepo) Create(u *entity.User) (string, error) {
	f.byEmail[u.Email] = u
	f.createdIDs = append(f.createdIDs, u.Email)
	return "000000000000000000000001", nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	f.findCalls++
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error)        { return nil, nil }
func (f *fakeUserRepo) PromoteToAdmin(string) (int64, error) { return 0, nil }
func (f *fakeUserRepo) Delete(string) (int64, error)         { return 0, nil }
func (f *fakeUserRepo) Count() (int64, error)                { return int64(len(f.byEmail)), nil }

// buildTestApp aplicación Fiber mínima con la cadena completa de guards
// (AuthMiddleware + RequireAdmin) frente a un handler dummy.
func buildTestApp(repo *fakeUserRepo) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAdmin(repo),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "email": apphttp.GetPrincipalEmail(c)})
		},
	)
	return app
}

// tokenFor genera un JWT firmado para el email indicado.
func tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — fallos de credencial cortan sin tocar el store
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401SinConsultarStore(t *testing.T) {
	repo := newFakeUserRepo()
	app := buildTestApp(repo)

	resp := doRequest(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, repo.findCalls, "sin credencial el store no debe consultarse")
}

func TestAuthMiddleware_HeaderMalformado_Retorna401(t *testing.T) {
	repo := newFakeUserRepo()
	app := buildTestApp(repo)

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer   "} {
		resp := doRequest(t, app, "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q debe rechazarse", header)
		resp.Body.Close()
	}
	assert.Equal(t, 0, repo.findCalls)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	repo := newFakeUserRepo()
	app := buildTestApp(repo)

	resp := doRequest(t, app, "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, repo.findCalls)
}

// Token emitido con vigencia ya vencida → no autenticado.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	repo := newFakeUserRepo()
	app := buildTestApp(repo)

	tok, err := pkgjwt.Generate(testJWTSecret, adminEmail, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, repo.findCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin — rol consultado en el store por email del Principal
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminAccede(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{Email: adminEmail, Role: entity.RoleAdmin})
	app := buildTestApp(repo)

	resp := doRequest(t, app, "/protected", tokenFor(t, adminEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, adminEmail, body["email"], "el Principal debe quedar en el contexto")
}

func TestRequireAdmin_RolUser_Retorna403(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{Email: userEmail, Role: entity.RoleUser})
	app := buildTestApp(repo)

	resp := doRequest(t, app, "/protected", tokenFor(t, userEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Token válido pero sin registro de usuario → 403 (autenticado, no autorizado).
func TestRequireAdmin_SinRegistro_Retorna403(t *testing.T) {
	repo := newFakeUserRepo()
	app := buildTestApp(repo)

	resp := doRequest(t, app, "/protected", tokenFor(t, "fantasma@x.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 1, repo.findCalls, "la autorización consulta el store exactamente una vez")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de auto-alcance — el handler compara el email del path con el Principal
// ──────────────────────────────────────────────────────────────────────────────

func buildAdminStatusApp(repo *fakeUserRepo) *fiber.App {
	authUC := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	app := fiber.New()
	handler := apphttp.NewAuthHandler(authUC)
	app.Get("/users/admin/:email", apphttp.AuthMiddleware(testJWTSecret), handler.AdminStatus)
	return app
}

func TestAdminStatus_EmailAjeno_Retorna403(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{Email: adminEmail, Role: entity.RoleAdmin})
	app := buildAdminStatusApp(repo)

	// user consulta el estado de admin de OTRO email
	resp := doRequest(t, app, "/users/admin/"+adminEmail, tokenFor(t, userEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminStatus_EmailPropio_RespondeRol(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{Email: adminEmail, Role: entity.RoleAdmin})
	app := buildAdminStatusApp(repo)

	resp := doRequest(t, app, "/users/admin/"+adminEmail, tokenFor(t, adminEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["admin"])
}

func TestAdminStatus_EmailPropioSinRolAdmin_RespondeFalse(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{Email: userEmail, Role: entity.RoleUser})
	app := buildAdminStatusApp(repo)

	resp := doRequest(t, app, "/users/admin/"+userEmail, tokenFor(t, userEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body["admin"])
}
