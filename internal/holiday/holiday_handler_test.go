package holiday_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/holiday"
	holidayerrors "go-hrms/internal/holiday/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeHolidayService struct {
	createFn func(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.StatusResponse, error)
	getAllFn func(ctx context.Context) ([]holiday.HolidayResponse, error)
	updateFn func(ctx context.Context, name, date string, req holiday.UpdateHolidayRequest) (holiday.StatusResponse, error)
	deleteFn func(ctx context.Context, name, date string) (holiday.StatusResponse, error)
}

func (f *fakeHolidayService) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.StatusResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeHolidayService) GetAll(ctx context.Context) ([]holiday.HolidayResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeHolidayService) Update(ctx context.Context, name, date string, req holiday.UpdateHolidayRequest) (holiday.StatusResponse, error) {
	return f.updateFn(ctx, name, date, req)
}
func (f *fakeHolidayService) Delete(ctx context.Context, name, date string) (holiday.StatusResponse, error) {
	return f.deleteFn(ctx, name, date)
}

func TestHolidayHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeHolidayService{
			createFn: func(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.StatusResponse, error) {
				assert.Equal(t, "Independence Day", req.Name)
				assert.Equal(t, "17-08-2026", req.Date)
				return holiday.StatusResponse{Status: "holiday added"}, nil
			},
		}
		h := holiday.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"name":"Independence Day","date":"17-08-2026","type":"National"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/holidays", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got holiday.StatusResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, "holiday added", got.Status)
	})

	t.Run("negative missing required fields", func(t *testing.T) {
		h := holiday.NewHandler(&fakeHolidayService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/holidays", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Contains(t, env.Error.Message, "is required")
	})

	t.Run("negative duplicate returns bad request", func(t *testing.T) {
		svc := &fakeHolidayService{
			createFn: func(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.StatusResponse, error) {
				return holiday.StatusResponse{}, holidayerrors.ErrHolidayAlreadyExists
			},
		}
		h := holiday.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"name":"Independence Day","date":"17-08-2026"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/holidays", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "CONFLICT", env.Error.Code)
		assert.Equal(t, "Holiday already exists", env.Error.Message)
	})
}

func TestHolidayHandler_GetAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeHolidayService{
			getAllFn: func(ctx context.Context) ([]holiday.HolidayResponse, error) {
				return []holiday.HolidayResponse{
					{Row: 2, Name: "Independence Day", Date: "17-08-2026", Type: "National"},
				}, nil
			},
		}
		h := holiday.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/holidays", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []holiday.HolidayResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Independence Day", got[0].Name)
	})

	t.Run("negative service error", func(t *testing.T) {
		svc := &fakeHolidayService{
			getAllFn: func(ctx context.Context) ([]holiday.HolidayResponse, error) {
				return nil, errors.New("sheet read failed")
			},
		}
		h := holiday.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/holidays", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}

func TestHolidayHandler_Update(t *testing.T) {
	t.Run("success passes composite key from path", func(t *testing.T) {
		desc := "Moved to Monday"
		svc := &fakeHolidayService{
			updateFn: func(ctx context.Context, name, date string, req holiday.UpdateHolidayRequest) (holiday.StatusResponse, error) {
				assert.Equal(t, "Independence Day", name)
				assert.Equal(t, "17-08-2026", date)
				assert.NotNil(t, req.Description)
				assert.Equal(t, desc, *req.Description)
				return holiday.StatusResponse{Status: "holiday updated"}, nil
			},
		}
		h := holiday.NewHandler(svc)
		r := gin.New()
		r.PUT("/holidays/:name/:date", h.Update)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/holidays/Independence%20Day/17-08-2026", strings.NewReader(`{"description":"Moved to Monday"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeHolidayService{
			updateFn: func(ctx context.Context, name, date string, req holiday.UpdateHolidayRequest) (holiday.StatusResponse, error) {
				return holiday.StatusResponse{}, holidayerrors.ErrHolidayNotFound
			},
		}
		h := holiday.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/holidays/Ghost%20Day/01-01-2026", strings.NewReader(`{"type":"National"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "name", Value: "Ghost Day"}, {Key: "date", Value: "01-01-2026"}}

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
		assert.Equal(t, "Holiday not found", env.Error.Message)
	})
}

func TestHolidayHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeHolidayService{
			deleteFn: func(ctx context.Context, name, date string) (holiday.StatusResponse, error) {
				assert.Equal(t, "Independence Day", name)
				assert.Equal(t, "17-08-2026", date)
				return holiday.StatusResponse{Status: "holiday deleted"}, nil
			},
		}
		h := holiday.NewHandler(svc)
		r := gin.New()
		r.DELETE("/holidays/:name/:date", h.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/holidays/Independence%20Day/17-08-2026", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got holiday.StatusResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, "holiday deleted", got.Status)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeHolidayService{
			deleteFn: func(ctx context.Context, name, date string) (holiday.StatusResponse, error) {
				return holiday.StatusResponse{}, holidayerrors.ErrHolidayNotFound
			},
		}
		h := holiday.NewHandler(svc)
		r := gin.New()
		r.DELETE("/holidays/:name/:date", h.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/holidays/Ghost%20Day/01-01-2026", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}
