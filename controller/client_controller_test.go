// api/controller/client_controller_test.go
package controller_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/shop/api/controller"
	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	logger "github.com/dev-mohitbeniwal/shop/api/logging"
	"github.com/dev-mohitbeniwal/shop/api/model"
	mock_service "github.com/dev-mohitbeniwal/shop/api/test/service_mock"
	"github.com/dev-mohitbeniwal/shop/api/util"
)

var requester = &model.ClientActor{ID: "1", Email: "ann@example.com"}

func setupRouter(clientController *controller.ClientController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		util.SetActor(c, requester)
		c.Next()
	})
	clientController.RegisterRoutes(r.Group("/"))
	return r
}

func TestClientController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientService := mock_service.NewMockIClientService(ctrl)
	router := setupRouter(controller.NewClientController(mockClientService))

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(method, path, strings.NewReader(body))
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("CreateClient_Success", func(t *testing.T) {
		mockClientService.EXPECT().
			CreateClient(gomock.Any(), requester, []byte(`{"first_name":"Ann"}`)).
			Return([]byte(`{"id":"1","first_name":"Ann"}`), nil)

		w := serve(http.MethodPost, "/clients", `{"first_name":"Ann"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"1","first_name":"Ann"}`, w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})

	t.Run("UpdateClient_Success", func(t *testing.T) {
		mockClientService.EXPECT().
			UpdateClient(gomock.Any(), requester, "1", gomock.Any()).
			Return([]byte(`{"id":"1"}`), nil)

		w := serve(http.MethodPut, "/clients/1", `{}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DeleteClient_Success", func(t *testing.T) {
		mockClientService.EXPECT().DeleteClient(gomock.Any(), requester, "1").Return(nil)

		w := serve(http.MethodDelete, "/clients/1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("GetClient_Success", func(t *testing.T) {
		mockClientService.EXPECT().GetClient(gomock.Any(), requester, "1").Return([]byte(`{"id":"1"}`), nil)

		w := serve(http.MethodGet, "/clients/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
	})

	t.Run("ListClients_Success", func(t *testing.T) {
		mockClientService.EXPECT().ListClients(gomock.Any(), requester).Return([]byte(`[]`), nil)

		w := serve(http.MethodGet, "/clients", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	writeCases := []struct {
		name string
		err  error
		want int
	}{
		{"Unauthenticated", shop_errors.ErrUnauthenticated, http.StatusUnauthorized},
		{"Forbidden", shop_errors.ErrForbidden, http.StatusForbidden},
		{"Malformed", fmt.Errorf("%w: bad", shop_errors.ErrMalformedPayload), http.StatusBadRequest},
		{"Invalid", shop_errors.ErrInvalidClientData, http.StatusBadRequest},
		{"NotFound", fmt.Errorf("load: %w", shop_errors.ErrClientNotFound), http.StatusBadRequest},
		{"Conflict", shop_errors.ErrClientConflict, http.StatusBadRequest},
		{"Database", shop_errors.ErrDatabaseOperation, http.StatusBadRequest},
		{"Internal", shop_errors.ErrInternalServer, http.StatusInternalServerError},
	}
	for _, tc := range writeCases {
		t.Run("UpdateClient_"+tc.name, func(t *testing.T) {
			mockClientService.EXPECT().UpdateClient(gomock.Any(), gomock.Any(), "2", gomock.Any()).Return(nil, tc.err)

			w := serve(http.MethodPut, "/clients/2", `{}`)
			assert.Equal(t, tc.want, w.Code)
		})
		t.Run("DeleteClient_"+tc.name, func(t *testing.T) {
			mockClientService.EXPECT().DeleteClient(gomock.Any(), gomock.Any(), "2").Return(tc.err)

			w := serve(http.MethodDelete, "/clients/2", "")
			assert.Equal(t, tc.want, w.Code)
		})
	}

	readCases := []struct {
		name string
		err  error
		want int
	}{
		{"Forbidden", shop_errors.ErrForbidden, http.StatusForbidden},
		{"NotFound", fmt.Errorf("get: %w", shop_errors.ErrClientNotFound), http.StatusNotFound},
		{"Database", shop_errors.ErrDatabaseOperation, http.StatusInternalServerError},
	}
	for _, tc := range readCases {
		t.Run("GetClient_"+tc.name, func(t *testing.T) {
			mockClientService.EXPECT().GetClient(gomock.Any(), gomock.Any(), "2").Return(nil, tc.err)

			w := serve(http.MethodGet, "/clients/2", "")
			assert.Equal(t, tc.want, w.Code)
		})
	}

	t.Run("ListClients_Failure", func(t *testing.T) {
		mockClientService.EXPECT().ListClients(gomock.Any(), gomock.Any()).Return(nil, shop_errors.ErrDatabaseOperation)

		w := serve(http.MethodGet, "/clients", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to list clients"}`, w.Body.String())
	})
}
