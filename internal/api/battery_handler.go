package api

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"

	apiadapter "gorandtest/adapters/api"
	"gorandtest/adapters/report"
	statsrand "gorandtest/adapters/stats/randomness"
	"gorandtest/app"
	"gorandtest/domain/randomness"
	apperrors "gorandtest/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// DefaultMaxBodyBytes bounds the size of a battery request body
const DefaultMaxBodyBytes = 32 << 20

// BatteryHandler serves battery runs over HTTP
type BatteryHandler struct {
	service      *app.BatteryService
	maxBodyBytes int64
}

// NewBatteryHandler creates a new battery handler
func NewBatteryHandler(service *app.BatteryService) *BatteryHandler {
	return &BatteryHandler{service: service, maxBodyBytes: DefaultMaxBodyBytes}
}

// RunBattery handles POST /api/v1/battery. The body carries the samples and
// optional alpha, intervals and tests; the format query parameter selects
// the response rendering.
func (h *BatteryHandler) RunBattery(c *gin.Context) {
	format, err := report.ParseFormat(c.DefaultQuery("format", string(report.FormatJSON)))
	if err != nil {
		respondError(c, apperrors.WrapCode(apperrors.CodeValidationError, err, "invalid format"))
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, h.maxBodyBytes+1))
	if err != nil {
		respondError(c, apperrors.WrapCode(apperrors.CodeInvalidInput, err, "failed to read request body"))
		return
	}
	if int64(len(body)) > h.maxBodyBytes {
		respondError(c, apperrors.InvalidInput(fmt.Sprintf("request body exceeds %d bytes", h.maxBodyBytes)))
		return
	}

	set, req, err := parseBatteryRequest(body)
	if err != nil {
		respondError(c, err)
		return
	}

	rep, err := h.service.RunSamples(c.Request.Context(), set, req)
	if err != nil {
		respondError(c, err)
		return
	}

	// Encode before the status is written
	var buf bytes.Buffer
	if err := report.Render(&buf, rep, format); err != nil {
		respondError(c, apperrors.Wrap(err, "failed to render report"))
		return
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// ListTests handles GET /api/v1/tests
func (h *BatteryHandler) ListTests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tests": statsrand.Catalog()})
}

// Health handles GET /api/v1/health
func (h *BatteryHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseBatteryRequest(body []byte) (*randomness.SampleSet, app.RunRequest, error) {
	var req app.RunRequest
	if !gjson.ValidBytes(body) {
		return nil, req, apperrors.InvalidInput("request body is not valid JSON")
	}
	root := gjson.ParseBytes(body)

	samples := root.Get("samples")
	if !samples.IsArray() {
		return nil, req, apperrors.InvalidInput("samples must be a JSON array")
	}
	values, dropped, err := apiadapter.FromResults(samples.Array())
	if err != nil {
		return nil, req, apperrors.WrapCode(apperrors.CodeInvalidInput, err, "invalid samples")
	}

	if alpha := root.Get("alpha"); alpha.Exists() {
		if alpha.Type != gjson.Number {
			return nil, req, apperrors.ValidationError("alpha must be a number")
		}
		if err := randomness.ValidateAlpha(alpha.Float()); err != nil {
			return nil, req, apperrors.WrapCode(apperrors.CodeValidationError, err, "invalid alpha")
		}
		req.Alpha = alpha.Float()
	}

	if intervals := root.Get("intervals"); intervals.Exists() {
		if intervals.Type != gjson.Number || intervals.Int() < 2 || float64(intervals.Int()) != intervals.Float() {
			return nil, req, apperrors.ValidationError("intervals must be an integer of at least 2")
		}
		req.Intervals = int(intervals.Int())
	}

	for _, item := range root.Get("tests").Array() {
		name, ok := randomness.ParseTestName(item.String())
		if !ok {
			return nil, req, apperrors.ValidationError(fmt.Sprintf("unknown test %q", item.String()))
		}
		req.Tests = append(req.Tests, name)
	}

	source := root.Get("source").String()
	if source == "" {
		source = "request"
	}
	return &randomness.SampleSet{Source: source, Values: values, Dropped: dropped}, req, nil
}

func respondError(c *gin.Context, err error) {
	code := apperrors.Classify(err)
	status := apperrors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		log.Printf("[API] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
