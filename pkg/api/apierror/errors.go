package apierror

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// APIError is the structured error body every failing endpoint returns.
// Messages are user-facing; the error code is for clients that branch.
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

var (
	// 400 Bad Request
	ErrInvalidRequest = New(http.StatusBadRequest, "INVALID_REQUEST", "Yêu cầu không hợp lệ.")

	// 404 Not Found
	ErrNoAnalysis = New(http.StatusNotFound, "NO_ANALYSIS", "Chưa có dữ liệu phân tích. Vui lòng tải lên file Excel để bắt đầu.")
	ErrNoSession  = New(http.StatusNotFound, "NO_SESSION", "Phiên làm việc không tồn tại hoặc đã hết hạn.")
)

// Structural wraps an analysis pipeline failure: the file could not be read
// as tabular data or a required line item is missing. No partial results are
// returned alongside it.
func Structural(err error) *APIError {
	return New(http.StatusUnprocessableEntity, "STRUCTURAL_ERROR",
		fmt.Sprintf("Lỗi cấu trúc dữ liệu: %v. Vui lòng kiểm tra định dạng file.", err))
}
