package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/internal/metrics"
	"github.com/nsxzhou1114/news-admin/internal/mocks"
	"github.com/nsxzhou1114/news-admin/internal/model"
	"github.com/nsxzhou1114/news-admin/internal/router"
	"github.com/nsxzhou1114/news-admin/internal/service"
	"github.com/nsxzhou1114/news-admin/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiEnv struct {
	engine   *gin.Engine
	articles *mocks.MockArticleStore
	bodies   *mocks.MockArticleBodyStore
	token    string
	adminID  uint
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Page  int   `json:"page"`
		Size  int   `json:"size"`
		Total int64 `json:"total"`
	} `json:"meta"`
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	articles := mocks.NewMockArticleStore()
	bodies := mocks.NewMockArticleBodyStore()
	categories := mocks.NewMockCategoryStore()
	categories.Categories[1] = &model.Category{Base: model.Base{ID: 1}, Name: "国内", Status: model.StatusActive}
	admins := mocks.NewMockAdminStore()
	tokens := auth.NewTokenManager("secret", "news-admin", time.Hour)

	adminSvc := service.NewAdminService(admins, tokens)
	admin, err := adminSvc.Create(context.Background(), "editor", "s3cret!")
	require.NoError(t, err)

	articleSvc := service.NewArticleService(service.ArticleDeps{
		Articles:   articles,
		Bodies:     bodies,
		Categories: categories,
		Admins:     admins,
		Tx:         &mocks.MockTransactor{},
		Clock:      func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local) },
	})

	env := &apiEnv{
		engine: router.New(router.Deps{
			ArticleService: articleSvc,
			AdminService:   adminSvc,
			Tokens:         tokens,
			Metrics:        metrics.New(),
		}),
		articles: articles,
		bodies:   bodies,
		adminID:  admin.ID,
	}

	w := env.do(t, http.MethodPost, "/api/admin/login", `{"username":"editor","password":"s3cret!"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	env.token = login.Data.AccessToken
	return env
}

func (e *apiEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func saveBody(overrides map[string]interface{}) string {
	body := map[string]interface{}{
		"cat_id":   1,
		"title":    "央行宣布降准",
		"intro":    strings.Repeat("简", 20),
		"keywords": "央行",
		"source":   "新华社",
		"content":  strings.Repeat("正", 12),
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func TestArticleApi_RequiresToken(t *testing.T) {
	env := newAPIEnv(t)
	env.token = ""
	w := env.do(t, http.MethodGet, "/api/admin/articles", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestArticleApi_CreateDefaultsDisplay(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodPost, "/api/admin/articles", saveBody(nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	a := env.articles.Articles[1]
	require.NotNil(t, a)
	assert.Equal(t, model.DisplayShown, a.Display)
	assert.Equal(t, env.adminID, a.CreatedBy)

	w = env.do(t, http.MethodPost, "/api/admin/articles", saveBody(map[string]interface{}{"display": 0}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.DisplayHidden, env.articles.Articles[2].Display)
}

func TestArticleApi_CreateErrors(t *testing.T) {
	env := newAPIEnv(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   int
		wantMsg    string
	}{
		{"rule violation", saveBody(map[string]interface{}{"intro": "太短"}), http.StatusBadRequest, -1100, "文章简介长度不能小于20个字符"},
		{"missing category", saveBody(map[string]interface{}{"cat_id": 9}), http.StatusNotFound, -1004, "分类不存在或已经删除"},
		{"malformed json", `{"title":`, http.StatusBadRequest, -1100, "请求参数格式错误"},
		{"non integer display", saveBody(map[string]interface{}{"display": "yes"}), http.StatusBadRequest, -1100, "请求参数格式错误"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/admin/articles", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestArticleApi_DetailAndIntegrity(t *testing.T) {
	env := newAPIEnv(t)
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
	env.articles.Put(&model.Article{ID: 7, Title: "有正文", Status: model.StatusActive, CreatedTime: created})
	env.bodies.Bodies[7] = "正文内容"
	env.articles.Put(&model.Article{ID: 8, Title: "无正文", Status: model.StatusActive})

	w := env.do(t, http.MethodGet, "/api/admin/articles/7?with_content=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		ID          uint    `json:"news_id"`
		CreatedTime string  `json:"created_time"`
		Content     *string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &detail))
	assert.Equal(t, uint(7), detail.ID)
	assert.Equal(t, "2024-05-01 09:30:00", detail.CreatedTime)
	require.NotNil(t, detail.Content)
	assert.Equal(t, "正文内容", *detail.Content)

	w = env.do(t, http.MethodGet, "/api/admin/articles/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"content"`)

	w = env.do(t, http.MethodGet, "/api/admin/articles/8?with_content=1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "文章数据异常", decode(t, w).Message)

	w = env.do(t, http.MethodGet, "/api/admin/articles/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "文章不存在或已经删除", decode(t, w).Message)

	w = env.do(t, http.MethodGet, "/api/admin/articles/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArticleApi_List(t *testing.T) {
	env := newAPIEnv(t)
	env.articles.PageResult = []model.Article{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}
	env.articles.PageTotal = 2

	w := env.do(t, http.MethodGet, "/api/admin/articles?title=a&admin_name=editor&page=1&page_size=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.NotNil(t, body.Meta)
	assert.EqualValues(t, 2, body.Meta.Total)
	assert.Equal(t, 5, body.Meta.Size)
	assert.EqualValues(t, env.adminID, env.articles.LastQuery.AdminID)

	w = env.do(t, http.MethodGet, "/api/admin/articles?start_time=2024-13-01", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "开始时间格式不对", decode(t, w).Message)
}

func TestArticleApi_UpdateDeleteSort(t *testing.T) {
	env := newAPIEnv(t)
	env.articles.Put(&model.Article{ID: 3, Title: "旧标题", Status: model.StatusActive})
	env.bodies.Bodies[3] = "旧正文"

	w := env.do(t, http.MethodPut, "/api/admin/articles/3", saveBody(map[string]interface{}{"title": "新标题"}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "新标题", env.articles.Articles[3].Title)
	assert.Equal(t, env.adminID, env.articles.Articles[3].ModifiedBy)

	w = env.do(t, http.MethodPost, "/api/admin/articles/sort", `{"listorders":{"3":4}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 4, env.articles.Articles[3].ListOrder)

	w = env.do(t, http.MethodPost, "/api/admin/articles/sort", `{"listorders":{}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "请选择要排序的文章", decode(t, w).Message)

	w = env.do(t, http.MethodDelete, "/api/admin/articles/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.StatusDeleted, env.articles.Articles[3].Status)

	w = env.do(t, http.MethodDelete, "/api/admin/articles/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPut, "/api/admin/articles/3", saveBody(nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminApi_LoginAndLogout(t *testing.T) {
	env := newAPIEnv(t)

	saved := env.token
	env.token = ""
	w := env.do(t, http.MethodPost, "/api/admin/login", `{"username":"editor","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "用户名或密码错误", decode(t, w).Message)

	w = env.do(t, http.MethodPost, "/api/admin/login", `{"username":"editor"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.token = saved
	w = env.do(t, http.MethodPost, "/api/admin/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/articles", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newAPIEnv(t)
	env.do(t, http.MethodGet, "/api/admin/articles", "")

	w := env.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "news_admin_http_requests_total")
}
