package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
		wantMsg    string
	}{
		{"validation", errcode.New(errcode.Validation, "标题不能为空"), http.StatusBadRequest, -1100, "标题不能为空"},
		{"unauthorized", errcode.New(errcode.Unauthorized, "用户名或密码错误"), http.StatusUnauthorized, -1001, "用户名或密码错误"},
		{"not found", errcode.New(errcode.NotFound, "文章不存在或已经删除"), http.StatusNotFound, -1004, "文章不存在或已经删除"},
		{"integrity", errcode.New(errcode.DataIntegrity, "文章数据异常"), http.StatusInternalServerError, -2100, "文章数据异常"},
		{"plain error hides detail", errors.New("dial tcp: refused"), http.StatusInternalServerError, -2000, "服务器内部错误"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			FromError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestSuccessPage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SuccessPage(c, "ok", []int{1, 2}, 2, 10, 12)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"ok","data":[1,2],"meta":{"page":2,"size":10,"total":12}}`, w.Body.String())
}

func TestErrorHelpersRecordCause(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	InternalServerError(c, "添加文章失败", errors.New("insert failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "insert failed")
	require.Len(t, c.Errors, 1)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Unauthorized(c, "请先登录", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, c.Errors)
}
