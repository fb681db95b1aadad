package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthController(t *testing.T) {
	ctrl := NewHealthController(testLogger, fakePinger{})
	rr, envelope := call(t, ctrl.Health, http.MethodGet, "/healthz", "", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var data HealthResponse
	decodeData(t, envelope, &data)
	assert.Equal(t, HealthResponse{Status: "ok", Database: "ok"}, data)

	ctrl = NewHealthController(testLogger, fakePinger{err: errors.New("connection refused")})
	rr, envelope = call(t, ctrl.Health, http.MethodGet, "/healthz", "", nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	decodeData(t, envelope, &data)
	assert.Equal(t, "unreachable", data.Database)
}
