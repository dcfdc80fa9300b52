package api

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	apperrors "github.com/Kamar-Folarin/commit-insights/internal/errors"
	"github.com/Kamar-Folarin/commit-insights/internal/ingest"
	"github.com/Kamar-Folarin/commit-insights/internal/models"
	"github.com/Kamar-Folarin/commit-insights/pkg/utils"
)

const (
	headerEvent     = "X-GitHub-Event"
	headerSignature = "X-Hub-Signature-256"

	// GitHub caps webhook payloads at 25 MB
	maxWebhookBodyBytes = 25 << 20
)

// DeliveryProcessor handles verified webhook deliveries
type DeliveryProcessor interface {
	HandleDelivery(ctx context.Context, d ingest.Delivery) (*ingest.Result, error)
}

// Reporter answers commit listing and overview queries
type Reporter interface {
	ListCommits(ctx context.Context, filter models.CommitFilter) (*models.CommitPage, error)
	GetCommit(ctx context.Context, sha string) (*models.CommitRecord, error)
	Overview(ctx context.Context, from time.Time, to *time.Time) (*models.OverviewResponse, error)
}

type Handler struct {
	deliveries DeliveryProcessor
	reporter   Reporter
	logger     *logrus.Logger
}

func NewHandler(deliveries DeliveryProcessor, reporter Reporter, logger *logrus.Logger) *Handler {
	registerValidators()
	return &Handler{
		deliveries: deliveries,
		reporter:   reporter,
		logger:     logger,
	}
}

// HandleGitHubWebhook godoc
// @Summary Receive a GitHub webhook
// @Description Verifies the X-Hub-Signature-256 header against the raw body and ingests push events. Other event types are acknowledged and ignored.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-GitHub-Event header string true "GitHub event type" example(push)
// @Param X-Hub-Signature-256 header string true "HMAC-SHA256 signature of the body" example(sha256=757107ea0eb2509fc211221cce984b8a37570b6d7586c22c46f4379c8b043e17)
// @Success 200 {object} WebhookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /webhooks/github [post]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)

	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(c, http.StatusRequestEntityTooLarge, "Payload too large")
			return
		}
		respondWithError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	result, err := h.deliveries.HandleDelivery(c.Request.Context(), ingest.Delivery{
		EventType: c.GetHeader(headerEvent),
		Signature: c.GetHeader(headerSignature),
		Body:      body,
	})
	if err != nil {
		h.respondWithAppError(c, err)
		return
	}

	respondWithJSON(c, http.StatusOK, WebhookResponse{
		OK:        true,
		Processed: result.Processed,
		Ignored:   result.Ignored,
	})
}

// commitListQuery holds the raw query string of the commit listing. Numbers
// and dates stay strings so every failing parameter can be reported.
type commitListQuery struct {
	Repository   string `form:"repository" binding:"omitempty,max=255"`
	Branch       string `form:"branch" binding:"omitempty,max=255"`
	CommitType   string `form:"commitType" binding:"omitempty,committype"`
	Search       string `form:"search" binding:"omitempty,max=200"`
	IncludeMerge string `form:"includeMerge" binding:"omitempty,oneof=true false"`
	SortBy       string `form:"sortBy" binding:"omitempty,oneof=day month year latest"`
	From         string `form:"from"`
	To           string `form:"to"`
	Page         string `form:"page"`
	PageSize     string `form:"pageSize"`
}

// ListCommits godoc
// @Summary List commits
// @Description Returns one page of commits in the window, newest first, with the repositories, branches and commit types available for filtering
// @Tags commits
// @Produce json
// @Param repository query string false "Repository full name" example(octo/api)
// @Param branch query string false "Branch name" example(main)
// @Param commitType query string false "Commit type" Enums(feat, fix, refactor, chore, docs, style, test, perf, build, ci, merge, revert, other)
// @Param search query string false "Case-insensitive text search over the full message"
// @Param includeMerge query string false "Include merge commits" Enums(true, false) default(true)
// @Param sortBy query string false "Grouping hint for clients" Enums(day, month, year, latest) default(latest)
// @Param from query string false "Inclusive window start, RFC3339 or YYYY-MM-DD. Defaults to the start of the current month" example(2024-03-01)
// @Param to query string false "Inclusive window end, RFC3339 or YYYY-MM-DD" example(2024-03-31T23:59:59Z)
// @Param page query int false "Page number" default(1) minimum(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} CommitListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /commits [get]
func (h *Handler) ListCommits(c *gin.Context) {
	var q commitListQuery
	verr := apperrors.NewValidationError()
	if err := c.ShouldBindQuery(&q); err != nil {
		collectBindingErrors(err, verr)
	}

	pageSize := parseIntParam(verr, "pageSize", q.PageSize, models.DefaultPageSize, 1, models.MaxPageSize)
	filter := models.CommitFilter{
		Page:     parseIntParam(verr, "page", q.Page, 1, 1, models.MaxPage(pageSize)),
		PageSize: pageSize,
		SortBy:   q.SortBy,
	}
	filter.From, filter.To = parseWindow(verr, q.From, q.To)

	if verr.HasErrors() {
		h.respondWithAppError(c, verr)
		return
	}

	if q.Repository != "" {
		filter.Repository = &q.Repository
	}
	if q.Branch != "" {
		filter.Branch = &q.Branch
	}
	if q.CommitType != "" {
		commitType := models.CommitType(q.CommitType)
		filter.CommitType = &commitType
	}
	if q.Search != "" {
		filter.Search = &q.Search
	}
	if q.IncludeMerge != "" {
		include := q.IncludeMerge == "true"
		filter.IncludeMerges = &include
	}

	page, err := h.reporter.ListCommits(c.Request.Context(), filter)
	if err != nil {
		h.respondWithAppError(c, err)
		return
	}

	respondWithJSON(c, http.StatusOK, page)
}

// GetCommit godoc
// @Summary Get a commit
// @Description Returns the stored record for one commit
// @Tags commits
// @Produce json
// @Param sha path string true "Commit SHA" example(aaa111)
// @Success 200 {object} Commit
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /commits/{sha} [get]
func (h *Handler) GetCommit(c *gin.Context) {
	commit, err := h.reporter.GetCommit(c.Request.Context(), c.Param("sha"))
	if err != nil {
		h.respondWithAppError(c, err)
		return
	}

	respondWithJSON(c, http.StatusOK, commit)
}

// GetOverview godoc
// @Summary Get the analytics overview
// @Description Summarizes every commit in the window: totals, leaders, streak, daily and monthly series, hour histogram and a 120 day heatmap
// @Tags analytics
// @Produce json
// @Param from query string false "Inclusive window start, RFC3339 or YYYY-MM-DD. Defaults to the start of the current month" example(2024-03-01)
// @Param to query string false "Inclusive window end, RFC3339 or YYYY-MM-DD" example(2024-03-31)
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	verr := apperrors.NewValidationError()
	from, to := parseWindow(verr, c.Query("from"), c.Query("to"))
	if verr.HasErrors() {
		h.respondWithAppError(c, verr)
		return
	}

	overview, err := h.reporter.Overview(c.Request.Context(), from, to)
	if err != nil {
		h.respondWithAppError(c, err)
		return
	}

	respondWithJSON(c, http.StatusOK, overview)
}

// HealthCheck reports that the process is serving requests
func (h *Handler) HealthCheck(c *gin.Context) {
	respondWithJSON(c, http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) respondWithAppError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		h.logger.WithField("fields", verr.Fields).Info("Rejected invalid query parameters")
		respondWithJSON(c, http.StatusBadRequest, ErrorResponse{
			Error:  "Invalid query parameters",
			Fields: verr.Fields,
		})
		return
	}

	message := "Internal server error"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	logger := h.logger.WithError(err).WithField("path", c.FullPath())
	switch {
	case apperrors.IsInvalidInput(err):
		logger.Warn("Rejected invalid request")
		respondWithError(c, http.StatusBadRequest, message)
	case apperrors.IsUnauthorized(err):
		logger.Warn("Rejected unauthenticated request")
		respondWithError(c, http.StatusUnauthorized, message)
	case apperrors.IsNotFound(err):
		respondWithError(c, http.StatusNotFound, message)
	case apperrors.IsConfiguration(err):
		logger.Error("Server is misconfigured")
		respondWithError(c, http.StatusInternalServerError, message)
	default:
		logger.Error("Request failed")
		respondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func respondWithJSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

func respondWithError(c *gin.Context, code int, message string) {
	respondWithJSON(c, code, ErrorResponse{Error: message})
}

// parseIntParam returns def for an empty value. max <= 0 means unbounded.
func parseIntParam(verr *apperrors.ValidationError, name, value string, def, min, max int) int {
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		verr.Add(name, "must be an integer")
		return def
	}
	if n < min {
		verr.Add(name, "must be at least "+strconv.Itoa(min))
		return def
	}
	if max > 0 && n > max {
		verr.Add(name, "must be at most "+strconv.Itoa(max))
		return def
	}
	return n
}

func parseWindow(verr *apperrors.ValidationError, fromValue, toValue string) (time.Time, *time.Time) {
	var from time.Time
	var to *time.Time

	if fromValue != "" {
		t, err := utils.ParseTimeParam(fromValue)
		if err != nil {
			verr.Add("from", "must be an RFC3339 timestamp or YYYY-MM-DD date")
		} else {
			from = t
		}
	}
	if toValue != "" {
		t, err := utils.ParseTimeParam(toValue)
		if err != nil {
			verr.Add("to", "must be an RFC3339 timestamp or YYYY-MM-DD date")
		} else {
			to = &t
		}
	}
	if !from.IsZero() && to != nil && to.Before(from) {
		verr.Add("to", "must not be before from")
	}
	return from, to
}

func collectBindingErrors(err error, verr *apperrors.ValidationError) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("query", err.Error())
		return
	}

	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "oneof":
			verr.Add(fe.Field(), "must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", "))
		case "committype":
			verr.Add(fe.Field(), "must be one of: "+commitTypeList())
		case "max":
			verr.Add(fe.Field(), "must be at most "+fe.Param()+" characters")
		default:
			verr.Add(fe.Field(), "is invalid")
		}
	}
}

func commitTypeList() string {
	types := models.AllCommitTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

var registerValidatorsOnce sync.Once

// registerValidators adds the committype rule and makes validation errors
// report query parameter names
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("committype", func(fl validator.FieldLevel) bool {
			return models.CommitType(fl.Field().String()).Valid()
		})
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
