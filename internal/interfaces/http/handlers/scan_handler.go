package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cybershield.backend/internal/domain/entities"
	domainerrors "cybershield.backend/internal/domain/errors"
	"cybershield.backend/internal/interfaces/http/response"
	"cybershield.backend/internal/usecases"
)

// ScanHandler handles the scan, AI query and breach check endpoints
type ScanHandler struct {
	scanUsecase *usecases.ScanUsecase
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanUsecase *usecases.ScanUsecase) *ScanHandler {
	return &ScanHandler{scanUsecase: scanUsecase}
}

// ScanURL classifies a URL
// POST /scan
func (h *ScanHandler) ScanURL(c *gin.Context) {
	var input entities.ScanURLInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(domainerrors.CodeValidation, err.Error()))
		return
	}

	report, err := h.scanUsecase.ScanURL(c.Request.Context(), &input)
	if err != nil {
		respondScanError(c, err)
		return
	}

	response.Success(c, http.StatusOK, scanResult("url", input.URL, report))
}

// ScanFile classifies an uploaded file by its filename. The attachment body
// is accepted but never inspected.
// POST /scan-file
func (h *ScanHandler) ScanFile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.PostForm("user_id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest(domainerrors.CodeValidation, "user_id form field is required"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest(domainerrors.CodeValidation, "file attachment is required"))
		return
	}

	report, err := h.scanUsecase.ScanFile(c.Request.Context(), uint(userID), file.Filename)
	if err != nil {
		respondScanError(c, err)
		return
	}

	response.Success(c, http.StatusOK, scanResult("filename", file.Filename, report))
}

// RunAIQuery answers a free-text security question
// POST /ai-query
func (h *ScanHandler) RunAIQuery(c *gin.Context) {
	var input entities.AIQueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(domainerrors.CodeValidation, err.Error()))
		return
	}

	report, err := h.scanUsecase.RunAIQuery(c.Request.Context(), &input)
	if err != nil {
		respondScanError(c, err)
		return
	}

	response.Success(c, http.StatusOK, scanResult("query", input.Query, report))
}

// CheckEmail runs the breach lookup for an email address
// POST /check-email
func (h *ScanHandler) CheckEmail(c *gin.Context) {
	var input entities.CheckEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(domainerrors.CodeValidation, err.Error()))
		return
	}

	report, err := h.scanUsecase.CheckEmail(c.Request.Context(), &input)
	if err != nil {
		respondScanError(c, err)
		return
	}

	response.Success(c, http.StatusOK, scanResult("email", input.Email, report))
}

// scanResult assembles the response document: the original input echo, the
// summary, and the details document of the report just written.
func scanResult(echoKey, echoValue string, report *entities.ScanReport) gin.H {
	return gin.H{
		echoKey:           echoValue,
		"report_id":       report.ID,
		"status":          report.Status,
		"overall_summary": report.OverallSummary,
		"details":         report.Details,
	}
}

func respondScanError(c *gin.Context, err error) {
	if errors.Is(err, domainerrors.ErrNotFound) {
		response.Error(c, domainerrors.NotFound(domainerrors.CodeUserNotFound, "User not found"))
		return
	}
	response.Error(c, err)
}
