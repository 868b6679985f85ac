package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"member-query/internal/api/router"
	"member-query/internal/dto"
	"member-query/internal/pkg/config"
	"member-query/internal/pkg/jwt"
	"member-query/internal/service/mocks"
	pkgErrors "member-query/pkg/errors"
)

func newConfig(authEnabled bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		Auth: config.AuthConfig{
			Enabled: authEnabled,
			JWT:     config.JWTConfig{Secret: "router-secret", AccessTokenExpire: 60},
		},
	}
}

func do(r http.Handler, method, target, body, token string) (*httptest.ResponseRecorder, int) {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Code int `json:"code"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp.Code
}

func TestSetup_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := router.Setup(newConfig(false), new(mocks.MemberService), new(mocks.TeamService))

	w, _ := do(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSetup_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ms := new(mocks.MemberService)
	ts := new(mocks.TeamService)
	ms.On("Search", mock.Anything, &dto.MemberSearchCondition{}).Return([]dto.MemberTeamDto{}, nil)
	ts.On("List", mock.Anything, false).Return([]*dto.TeamResponse{}, nil)
	ms.On("BulkIncrementAge", mock.Anything, 1).Return(&dto.BulkResponse{Affected: 4}, nil)

	r := router.Setup(newConfig(false), ms, ts)

	_, code := do(r, http.MethodGet, "/api/v1/members/search", "", "")
	assert.Equal(t, pkgErrors.CodeSuccess, code)
	_, code = do(r, http.MethodGet, "/api/v1/teams", "", "")
	assert.Equal(t, pkgErrors.CodeSuccess, code)
	// 未开启认证时批量接口无需Token
	_, code = do(r, http.MethodPost, "/api/v1/members/bulk/age", `{"delta": 1}`, "")
	assert.Equal(t, pkgErrors.CodeSuccess, code)

	ms.AssertExpectations(t)
	ts.AssertExpectations(t)
}

func TestSetup_BulkRequiresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := newConfig(true)
	ms := new(mocks.MemberService)
	ms.On("BulkDelete", mock.Anything, &dto.BulkDeleteRequest{AgeGreaterThan: 18}).
		Return(&dto.BulkResponse{Affected: 3}, nil).Once()
	ms.On("Search", mock.Anything, &dto.MemberSearchCondition{}).Return([]dto.MemberTeamDto{}, nil)

	r := router.Setup(cfg, ms, new(mocks.TeamService))
	body := `{"age_greater_than": 18}`

	_, code := do(r, http.MethodPost, "/api/v1/members/bulk/delete", body, "")
	assert.Equal(t, pkgErrors.CodeUnauthorized, code)

	_, code = do(r, http.MethodPost, "/api/v1/members/bulk/delete", body, "garbage")
	assert.Equal(t, pkgErrors.CodeUnauthorized, code)

	token, err := jwt.GenerateAccessToken(&cfg.Auth.JWT, "ops")
	require.NoError(t, err)
	_, code = do(r, http.MethodPost, "/api/v1/members/bulk/delete", body, token)
	assert.Equal(t, pkgErrors.CodeSuccess, code)

	// 查询接口不受影响
	_, code = do(r, http.MethodGet, "/api/v1/members/search", "", "")
	assert.Equal(t, pkgErrors.CodeSuccess, code)

	ms.AssertExpectations(t)
}
