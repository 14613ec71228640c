package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

func TestPropertyHandler_BulkCreateRooms_PartialSuccess(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/property/rooms/bulk-create" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req domain.BulkCreateRoomsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Status != domain.RoomReady {
			t.Errorf("expected default status READY, got %q", req.Status)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"successCount":1,"failureCount":1,"totalCount":2,` +
			`"successMessages":["Room 101 created"],"errorMessages":["Room 102 already exists"],"allSuccessful":false}`))
	})
	h := NewPropertyHandler(backend)
	body := `{"roomTypeId":3,"floor":1,"roomNumbers":["101","102"]}`
	c, rec := newContext(http.MethodPost, "/property/rooms/bulk-create", body, authenticated("tok"))

	if err := h.BulkCreateRooms(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp domain.BulkOperationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Partial() || len(resp.ErrorMessages) != 1 {
		t.Fatalf("expected partial result, got %+v", resp)
	}
}

func TestPropertyHandler_BulkCreateRooms_Invalid(t *testing.T) {
	h := NewPropertyHandler(unreachableBackend(t))
	c, _ := newContext(http.MethodPost, "/property/rooms/bulk-create", `{"roomTypeId":3,"floor":1,"roomNumbers":[]}`, authenticated("tok"))

	err := h.BulkCreateRooms(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPropertyHandler_BulkDeleteRooms(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		var ids []int64
		if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(ids) != 2 || ids[0] != 4 || ids[1] != 5 {
			t.Errorf("unexpected ids: %v", ids)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"successCount":2,"failureCount":0,"totalCount":2,"allSuccessful":true}`))
	})
	h := NewPropertyHandler(backend)
	c, rec := newContext(http.MethodDelete, "/property/rooms/bulk-delete", `[4,5]`, authenticated("tok"))

	if err := h.BulkDeleteRooms(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPropertyHandler_FloorRooms_InvalidFloor(t *testing.T) {
	h := NewPropertyHandler(unreachableBackend(t))
	c, _ := newContext(http.MethodGet, "/property/floors/x/rooms", "", authenticated("tok"))
	c.SetParamNames("floor")
	c.SetParamValues("x")

	err := h.FloorRooms(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
