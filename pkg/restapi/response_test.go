package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"subflix/pkg/errno"
)

func perform(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(ctx)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := perform(t, func(ctx *gin.Context) {
		Success(ctx, map[string]string{"hello": "world"})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != errno.OK.Code {
		t.Errorf("code = %d, want %d", resp.Code, errno.OK.Code)
	}
}

func TestFailedMapsNotFound(t *testing.T) {
	w := perform(t, func(ctx *gin.Context) {
		Failed(ctx, errno.ErrVideoFileNotFound)
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != errno.ErrVideoFileNotFound.Code {
		t.Errorf("code = %d", resp.Code)
	}
}

func TestFailedMapsBusinessErrorsToBadRequest(t *testing.T) {
	w := perform(t, func(ctx *gin.Context) {
		Failed(ctx, errno.ErrNoSubtitlePaired)
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestFailedMapsSystemErrorsToInternal(t *testing.T) {
	w := perform(t, func(ctx *gin.Context) {
		Failed(ctx, errno.NewBizError(errno.ErrDatabase, nil))
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
