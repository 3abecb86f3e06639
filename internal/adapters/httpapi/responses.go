package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"notedock/internal/application"
)

// Error codes returned in ErrorResponse
const (
	CodeMissingParams = "MISSING_PARAMS"
	CodeServerError   = "SERVER_ERROR"
	CodeNoFile        = "NO_FILE"
	CodeFileTooLarge  = "FILE_TOO_LARGE"
	CodeUploadError   = "UPLOAD_ERROR"
	CodeForbidden     = "FORBIDDEN"
)

// Response is the body of every completed operation, successful or not
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	FilePath  string `json:"filePath,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	URL       string `json:"url,omitempty"`
}

// ErrorResponse is returned with 4xx and 5xx statuses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RecentFile is the wire form of a recently modified document
type RecentFile struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Mtime    int64  `json:"mtime"`
	MtimeStr string `json:"mtimeStr"`
}

func missingParams(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Code: CodeMissingParams, Message: message})
}

// fail maps an operation error onto the response contract. Request errors
// complete with success=false; anything else is a server error.
func (s *Server) fail(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, application.ErrMissingParams):
		s.count(operation, outcomeFailed)
		missingParams(c, err.Error())
	case application.IsUserError(err):
		s.count(operation, outcomeFailed)
		c.JSON(http.StatusOK, Response{Success: false, Message: err.Error()})
	default:
		s.count(operation, outcomeError)
		s.logger.Error("operation failed", "operation", operation, "error", err)
		code := CodeServerError
		if operation == opUpload {
			code = CodeUploadError
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: code, Message: "server error: " + err.Error()})
	}
}

func (s *Server) ok(c *gin.Context, operation string, resp Response) {
	s.count(operation, outcomeOK)
	resp.Success = true
	c.JSON(http.StatusOK, resp)
}
