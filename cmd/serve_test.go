package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/barsim/constants"
	"github.com/jsphweid/barsim/model"
	"github.com/stretchr/testify/assert"
)

// measures A B A
const trackJSON = `{
	"name": "lead",
	"notes": [
		{"pitch": 60, "start": 0, "end": 1},
		{"pitch": 62, "start": 1, "end": 2},
		{"pitch": 64, "start": 2, "end": 3},
		{"pitch": 60, "start": 3, "end": 4},
		{"pitch": 62, "start": 4, "end": 5}
	],
	"measure_indices": [2, 3]
}`

func post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	rec := post(`{"track": ` + trackJSON + `, "colormap": "bluered"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var res model.AnalyzeResponse
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Id)
	assert.Len(t, res.Matrix, 3)
	assert.Len(t, res.Colors, 3)
	assert.Equal(t, res.Colors[0], res.Colors[2])
	assert.NotEqual(t, res.Colors[0], res.Colors[1])
	assert.Equal(t, []model.Section{
		{Name: model.NoSectionsName, StartMeasure: 0, EndMeasure: 2, Length: 3},
	}, res.Sections)
}

func TestHandleAnalyzeSections(t *testing.T) {
	rec := post(`{"track": ` + trackJSON + `, "colormap": "bluered", "granularity": "sections", "reducer": "mds"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var res model.AnalyzeResponse
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Matrix, 1)
	assert.Len(t, res.Colors, 1)
}

func TestHandleAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"track": `},
		{"unknown metric", `{"track": ` + trackJSON + `, "metric": "cosine"}`},
		{"unknown reducer", `{"track": ` + trackJSON + `, "reducer": "pca"}`},
		{"unknown colormap", `{"track": ` + trackJSON + `, "colormap": "rainbow"}`},
		{"unknown granularity", `{"track": ` + trackJSON + `, "granularity": "beats"}`},
		{"threshold out of range", `{"track": ` + trackJSON + `, "threshold": 2}`},
		{"malformed track", `{"track": {"notes": [{"pitch": 60}], "measure_indices": [3]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var res model.ErrorResponse
			assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestHandleAnalyzeRejectsLargeBody(t *testing.T) {
	body := `{"track": {"name": "` + strings.Repeat("a", constants.MaxRequestBytes) + `"}}`
	rec := post(body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var res model.ErrorResponse
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Error)
}

func TestHandleMetrics(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var names []string
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Contains(t, names, "levenshteinPitch")
	assert.Contains(t, names, "chordJaccard")
}

func TestHandleColormaps(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/colormaps", nil))

	var names []string
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Contains(t, names, "bluered")
}

func TestRouterAllowsCrossOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
