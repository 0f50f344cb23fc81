package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/usecase"
	"go-services-marketplace/pkg/response"
	"go-services-marketplace/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingUsecase struct {
	createResp  *dto.BookingResponse
	createErr   error
	listResp    *dto.BookingListResponse
	listErr     error
	createCalls int
}

func (f *fakeBookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	f.createCalls++
	return f.createResp, f.createErr
}

func (f *fakeBookingUsecase) GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	return f.listResp, f.listErr
}

func postBooking(t *testing.T, h *BookingHandler, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return rec, envelope
}

func validBookingBody() string {
	return fmt.Sprintf(`{
		"worker_id": "%s",
		"scheduled_at": "2026-09-15T10:00:00Z",
		"customer_address": "Rua das Flores 123"
	}`, uuid.New())
}

func TestCreateBooking_ValidationFailureSkipsUsecase(t *testing.T) {
	uc := &fakeBookingUsecase{}
	h := NewBookingHandler(uc, validator.NewValidator())

	rec, envelope := postBooking(t, h, fmt.Sprintf(`{"worker_id": "%s", "scheduled_at": "2026-09-15T10:00:00Z"}`, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, 0, uc.createCalls)
}

func TestCreateBooking_UnauthenticatedMapsTo401(t *testing.T) {
	uc := &fakeBookingUsecase{createErr: usecase.ErrNotAuthenticated}
	h := NewBookingHandler(uc, validator.NewValidator())

	rec, _ := postBooking(t, h, validBookingBody())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBooking_StoreFailureBodyCarriesStoreMessage(t *testing.T) {
	storeErr := fmt.Errorf("%w: %v", usecase.ErrBookingSubmission, errors.New("permission denied for table bookings"))
	uc := &fakeBookingUsecase{createErr: storeErr}
	h := NewBookingHandler(uc, validator.NewValidator())

	rec, envelope := postBooking(t, h, validBookingBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, envelope.Message, "permission denied for table bookings")
}

func TestCreateBooking_ServiceNotOfferedMapsTo400(t *testing.T) {
	uc := &fakeBookingUsecase{createErr: usecase.ErrServiceNotOffered}
	h := NewBookingHandler(uc, validator.NewValidator())

	rec, _ := postBooking(t, h, validBookingBody())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking_Created(t *testing.T) {
	uc := &fakeBookingUsecase{createResp: &dto.BookingResponse{ID: uuid.New(), Status: "requested"}}
	h := NewBookingHandler(uc, validator.NewValidator())

	rec, envelope := postBooking(t, h, validBookingBody())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)
}
