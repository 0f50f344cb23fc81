package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-services-marketplace/internal/service"
	"go-services-marketplace/pkg/response"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_UnconfiguredProviderMapsToNotImplemented(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	h := NewLocationHandler(service.NewGeolocationService(nil, log))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/location?address=Av.+Paulista+1000", nil)
	rec := httptest.NewRecorder()
	h.Locate(rec, req)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.False(t, envelope.Success)
}
