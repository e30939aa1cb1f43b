package api

import (
	"net/http"
	"strings"
	"time"

	"TradePulse/internal/domain/models"
	"TradePulse/internal/service/metrics"
	"TradePulse/internal/usecase"
	xhttp "TradePulse/pkg/http"
	xlogger "TradePulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Indonesian user-facing error for a missing symbol; the deployment locale.
const errSymbolRequired = "Symbol harus diisi"

// AnalyzeHandler implements the Echo-based analysis endpoint. Per contract,
// the endpoint answers HTTP 200 for every well-formed connection and carries
// failures in the JSON body.
type AnalyzeHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.SignalAnalyzer
}

func NewAnalyzeHandler(logger *xlogger.Logger, analyzer *usecase.SignalAnalyzer) *AnalyzeHandler {
	metrics.Register()
	return &AnalyzeHandler{logger: logger, analyzer: analyzer}
}

func (h *AnalyzeHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/analyze", h.Analyze)
	e.GET("/healthz", h.Health)
}

func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	start := time.Now()
	endpoint := "analyze"
	defer func() { metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.AnalyzeRequest{}
	if verrs := xhttp.ReadAndValidateRequest(c, req); verrs != nil {
		// A missing symbol is the one expected validation failure and has a
		// fixed message; anything else is a malformed body.
		for _, ve := range verrs {
			if ve.Field == "Symbol" {
				h.logger.Warn("analyze missing symbol")
				return xhttp.ErrorResponse(c, errSymbolRequired)
			}
		}
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		h.logger.Warn("analyze bad request", xlogger.Any("errors", verrs))
		return xhttp.ErrorResponse(c, "Server error: "+verrs[0].Message)
	}

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		h.logger.Warn("analyze missing symbol")
		return xhttp.ErrorResponse(c, errSymbolRequired)
	}

	res, err := h.analyzer.Analyze(c.Request().Context(), symbol, req.AssetType, req.Timeframe)
	if err != nil {
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("analyze pipeline error",
			xlogger.String("symbol", symbol),
			xlogger.Error(err),
		)
		return xhttp.ErrorResponse(c, "Server error: "+err.Error())
	}

	h.logger.Debug("analyze ok",
		xlogger.String("symbol", symbol),
		xlogger.String("signal", string(res.Signal)),
		xlogger.Int("confidence", res.Confidence),
	)
	return xhttp.ResultResponse(c, res)
}

func (h *AnalyzeHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
