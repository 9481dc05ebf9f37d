package main

import (
	"net/http"
	"testing"
)

func TestConvert(t *testing.T) {
	router, _ := setupTest(t)

	cases := []struct {
		query string
		want  float64
	}{
		{"value=180&from=cm&to=in", 71},
		{"value=71&from=in&to=cm", 180},
		{"value=80&from=kg&to=lb", 176},
		{"value=176&from=lb&to=kg", 79.83},
	}
	for _, tc := range cases {
		w := doRequest(router, "GET", "/api/convert?"+tc.query, "")
		expectStatus(t, w, http.StatusOK)
		resp := decode[map[string]any](t, w)
		if resp["result"] != tc.want {
			t.Errorf("%s: result = %v, want %v", tc.query, resp["result"], tc.want)
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	router, _ := setupTest(t)

	cases := []struct {
		query, msg string
	}{
		{"value=180&from=cm&to=kg", "unsupported conversion, expected cm<->in or kg<->lb"},
		{"value=180", "unsupported conversion, expected cm<->in or kg<->lb"},
		{"value=tall&from=cm&to=in", "value must be a number"},
		{"value=0&from=cm&to=in", "value must be a positive number"},
		{"value=-5&from=lb&to=kg", "value must be a positive number"},
		{"value=1e300&from=cm&to=in", "value is out of range"},
		{"value=1e19&from=kg&to=lb", "value is out of range"},
		{"value=1e10&from=in&to=cm", "value is out of range"},
	}
	for _, tc := range cases {
		w := doRequest(router, "GET", "/api/convert?"+tc.query, "")
		expectStatus(t, w, http.StatusBadRequest)
		expectError(t, w, tc.msg)
	}
}
