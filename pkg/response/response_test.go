package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "library-management-system/pkg/errors"
	"library-management-system/pkg/response"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.OK(c, gin.H{"hello": "world"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.ErrorCode != 0 || resp.Message != response.MessageSuccess {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestCreated(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Created(c, nil)
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestError(t *testing.T) {
	t.Run("HTTPError keeps its status", func(t *testing.T) {
		w := record(func(c *gin.Context) {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusConflict, "no copies available"))
		})

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if resp.Message != "no copies available" {
			t.Errorf("unexpected message: %q", resp.Message)
		}
	})

	t.Run("plain error is a bad request", func(t *testing.T) {
		w := record(func(c *gin.Context) {
			response.Error(c, errors.New("json: cannot unmarshal"))
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
