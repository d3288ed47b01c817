package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "gorandtest/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSamples(t *testing.T) {
	values, dropped, err := ExtractSamples([]byte(`[0.1, "0.2", null, "", "NaN", 0.9]`), "")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.9}, values)
	assert.Equal(t, 3, dropped)
}

func TestExtractSamples_DropsInfinities(t *testing.T) {
	values, dropped, err := ExtractSamples([]byte(`["Inf", 0.4, "-Inf", "+inf", 0.6]`), "")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.4, 0.6}, values)
	assert.Equal(t, 3, dropped)
}

func TestExtractSamples_NestedPaths(t *testing.T) {
	doc := []byte(`{"data":{"samples":[0.3,0.4]},"rows":[{"v":0.5},{"v":0.6}]}`)

	values, _, err := ExtractSamples(doc, "data.samples")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.3, 0.4}, values)

	values, _, err = ExtractSamples(doc, "rows.#.v")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.6}, values)
}

func TestExtractSamples_Errors(t *testing.T) {
	_, _, err := ExtractSamples([]byte(`{"data":1}`), "missing")
	assert.ErrorIs(t, err, ErrNoSamples)

	_, _, err = ExtractSamples([]byte(`{"data":1}`), "data")
	assert.ErrorIs(t, err, ErrNoSamples)

	_, _, err = ExtractSamples([]byte(`[1, "x"]`), "")
	assert.Error(t, err)

	_, _, err = ExtractSamples([]byte(`[1, {"a":2}]`), "")
	assert.Error(t, err)

	_, _, err = ExtractSamples([]byte(`{not json`), "")
	assert.Error(t, err)
}

func TestAPIReader_LoadSamples(t *testing.T) {
	var gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("seed")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{"values":[0.25,0.75,0.5]}}`))
	}))
	defer server.Close()

	reader := NewAPIReader(&APIDataSource{
		BaseURL:     server.URL,
		QueryParams: map[string]string{"seed": "42"},
		AuthMethod:  "bearer",
		AuthToken:   "secret",
		DataPath:    "result.values",
	}, nil)

	set, err := reader.LoadSamples(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []float64{0.25, 0.75, 0.5}, set.Values)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "42", gotQuery)
	assert.Equal(t, 3, reader.Metadata().RecordsCount)
	assert.Equal(t, http.StatusOK, reader.Metadata().StatusCode)
}

func TestAPIReader_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewAPIReader(&APIDataSource{BaseURL: server.URL}, nil).LoadSamples(context.Background())
	assert.ErrorContains(t, err, "status 500")
	assert.Equal(t, apperrors.CodeExternalService, apperrors.GetCode(err))
	assert.Equal(t, http.StatusBadGateway, apperrors.HTTPStatus(apperrors.GetCode(err)))
}

func TestAPIReader_UnreachableUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewAPIReader(&APIDataSource{BaseURL: url}, nil).LoadSamples(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeExternalService, apperrors.GetCode(err))
}

func TestAPIReader_SampleLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[1,2,3]`))
	}))
	defer server.Close()

	limits := DefaultAPIAdapterConfig()
	limits.MaxSamples = 2
	_, err := NewAPIReader(&APIDataSource{BaseURL: server.URL}, limits).LoadSamples(context.Background())
	assert.Error(t, err)
}

func TestAPIAdapterConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultAPIAdapterConfig().Validate())

	cfg := DefaultAPIAdapterConfig()
	cfg.DefaultTimeout = 0
	var verr *ValidationError
	assert.ErrorAs(t, cfg.Validate(), &verr)
	assert.Equal(t, "DefaultTimeout", verr.Field)
}
