package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dev-mohitbeniwal/shop/api/audit"
	"github.com/dev-mohitbeniwal/shop/api/controller"
	"github.com/dev-mohitbeniwal/shop/api/dao"
	"github.com/dev-mohitbeniwal/shop/api/middleware"
	"github.com/dev-mohitbeniwal/shop/api/model"
	"github.com/dev-mohitbeniwal/shop/api/pdp/engine"
	"github.com/dev-mohitbeniwal/shop/api/service"
	mocks "github.com/dev-mohitbeniwal/shop/api/test/mock"
	"github.com/dev-mohitbeniwal/shop/api/util"
)

const (
	clientSecret   = "client-secret"
	employeeSecret = "employee-secret"
)

type harness struct {
	t      *testing.T
	router *gin.Engine
	store  *dao.MemoryClientStore
	audit  *mocks.MockAuditService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	roles, err := engine.RoleTableFromConfig(map[string][]string{
		"support": {"READ", "UPDATE", "DELETE"},
		"sales":   {"CREATE", "READ"},
	})
	require.NoError(t, err)

	auditSvc := new(mocks.MockAuditService)
	auditSvc.On("LogAccess", mock.Anything, mock.Anything).Return(nil).Maybe()

	store := dao.NewMemoryClientStore()
	bus := util.NewEventBus()
	t.Cleanup(bus.Wait)

	services, err := service.InitializeServices(store, roles, auditSvc, util.NewValidationUtil(), util.NoopCache{}, util.NewNotificationService(), bus)
	require.NoError(t, err)

	r := SetupRouter(controller.InitializeControllers(services), middleware.NewTokenResolver(clientSecret, employeeSecret), Options{})
	return &harness{t: t, router: r, store: store, audit: auditSvc}
}

func (h *harness) do(actor model.Actor, method, path, body string) *httptest.ResponseRecorder {
	h.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if actor != nil {
		secret := clientSecret
		if actor.Kind() == model.ActorKindEmployee {
			secret = employeeSecret
		}
		token, err := middleware.IssueToken(actor, secret, time.Minute)
		require.NoError(h.t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

var (
	clientOne = &model.ClientActor{ID: "1", Email: "ann@example.com"}
	clientTwo = &model.ClientActor{ID: "2", Email: "bob@example.com"}
	support   = &model.EmployeeActor{ID: "e1", Role: "support"}
	sales     = &model.EmployeeActor{ID: "e2", Role: "Sales"}
)

func (h *harness) register(actor *model.ClientActor, first string) {
	h.t.Helper()
	body := `{"first_name":"` + first + `","last_name":"Test","email":"` + actor.Email + `","password":"long-enough-pass"}`
	w := h.do(actor, http.MethodPost, "/api/v1/clients", body)
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())
	require.Equal(h.t, actor.ID, gjson.Get(w.Body.String(), "id").String())
}

func TestClientLifecycle(t *testing.T) {
	h := newHarness(t)
	h.register(clientOne, "Ann")
	h.register(clientTwo, "Bob")

	t.Run("client cannot delete another client", func(t *testing.T) {
		w := h.do(clientOne, http.MethodDelete, "/api/v1/clients/2", "")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = h.do(clientTwo, http.MethodGet, "/api/v1/clients/2", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("client cannot read another client", func(t *testing.T) {
		w := h.do(clientOne, http.MethodGet, "/api/v1/clients/2", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("list is filtered per actor", func(t *testing.T) {
		w := h.do(clientOne, http.MethodGet, "/api/v1/clients", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `["1"]`, gjson.Get(w.Body.String(), "#.id").Raw)

		w = h.do(support, http.MethodGet, "/api/v1/clients", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `["1","2"]`, gjson.Get(w.Body.String(), "#.id").Raw)
	})

	t.Run("employee sets staff fields the client cannot see", func(t *testing.T) {
		body := `{"first_name":"Bob","last_name":"Test","email":"bob@example.com","segment":"vip","internal_notes":"priority"}`
		w := h.do(support, http.MethodPut, "/api/v1/clients/2", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "vip", gjson.Get(w.Body.String(), "segment").String())

		w = h.do(clientTwo, http.MethodGet, "/api/v1/clients/2", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, gjson.Get(w.Body.String(), "segment").Exists())
		assert.False(t, gjson.Get(w.Body.String(), "internal_notes").Exists())
		assert.False(t, gjson.Get(w.Body.String(), "password").Exists())
	})

	t.Run("sales role may not update", func(t *testing.T) {
		w := h.do(sales, http.MethodPut, "/api/v1/clients/2", `{"first_name":"X","last_name":"Y","email":"bob@example.com"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("write path errors are bad requests", func(t *testing.T) {
		w := h.do(support, http.MethodPut, "/api/v1/clients/404", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = h.do(sales, http.MethodPost, "/api/v1/clients", `not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("support deletes client", func(t *testing.T) {
		w := h.do(support, http.MethodDelete, "/api/v1/clients/2", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = h.do(support, http.MethodGet, "/api/v1/clients/2", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("requests without a token are unauthorized", func(t *testing.T) {
		w := h.do(nil, http.MethodGet, "/api/v1/clients", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuditTrail(t *testing.T) {
	h := newHarness(t)
	h.register(clientOne, "Ann")
	h.register(clientTwo, "Bob")

	w := h.do(clientOne, http.MethodGet, "/api/v1/clients/2", "")
	require.Equal(t, http.StatusForbidden, w.Code)

	denied := lo.Filter(h.audit.Logged(), func(l audit.AuditLog, _ int) bool { return !l.AccessGranted })
	require.Len(t, denied, 1)
	h.audit.On("QueryLogs", mock.Anything, mock.Anything, mock.Anything, "1", "").Return(denied, nil)

	t.Run("clients cannot read the trail", func(t *testing.T) {
		w := h.do(clientOne, http.MethodGet, "/api/v1/audit?actor_id=1", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("roles without read cannot either", func(t *testing.T) {
		w := h.do(&model.EmployeeActor{ID: "e9", Role: "intern"}, http.MethodGet, "/api/v1/audit?actor_id=1", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("employee with read sees denied attempts", func(t *testing.T) {
		w := h.do(support, http.MethodGet, "/api/v1/audit?actor_id=1", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, `["READ"]`, gjson.Get(w.Body.String(), "#.action").Raw)
		assert.Equal(t, `[false]`, gjson.Get(w.Body.String(), "#.access_granted").Raw)
	})

	t.Run("malformed bounds are bad requests", func(t *testing.T) {
		w := h.do(support, http.MethodGet, "/api/v1/audit?to=tomorrow", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthz(t *testing.T) {
	h := newHarness(t)
	w := h.do(nil, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
