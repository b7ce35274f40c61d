package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAppointmentEndpoint(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerUser(t)

	req := httptest.NewRequest(http.MethodPost, "/api/counseling/appointments",
		jsonBody(`{"counselorId":1,"appointmentDate":"2026-04-02","appointmentTime":"14:00","type":"academic","notes":"Course planning"}`))
	req.AddCookie(cookie)
	w := env.do(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Status          string `json:"status"`
			AppointmentDate string `json:"appointmentDate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "scheduled", body.Data.Status)
	assert.Equal(t, "2026-04-02", body.Data.AppointmentDate)
}

func TestBookAppointmentInvalidTypeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerUser(t)

	req := httptest.NewRequest(http.MethodPost, "/api/counseling/appointments",
		jsonBody(`{"appointmentDate":"2026-04-02","appointmentTime":"14:00","type":"astrology"}`))
	req.AddCookie(cookie)
	w := env.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMyAppointmentsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerUser(t)

	book := httptest.NewRequest(http.MethodPost, "/api/counseling/appointments",
		jsonBody(`{"appointmentDate":"2026-04-02","appointmentTime":"14:00","type":"career"}`))
	book.AddCookie(cookie)
	require.Equal(t, http.StatusCreated, env.do(book).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/counseling/appointments", nil)
	req.AddCookie(cookie)
	w := env.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"career"`)
}

func TestCounselorsIsPublic(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/counselors", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
