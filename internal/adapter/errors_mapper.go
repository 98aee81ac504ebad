package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/keepno/models"
	"github.com/go-resty/resty/v2"
)

// errorBody is the envelope of every keepno error answer.
type errorBody struct {
	Error *models.ErrorDetail `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	// login_required answers with a redirect to the login page
	if status >= http.StatusMultipleChoices && status < http.StatusBadRequest {
		return fmt.Errorf("%w: redirected to %s", ErrUnauthorized, resp.Header().Get("Location"))
	}

	sentinel := statusSentinel(status)
	if detail, ok := decodeErrorDetail(resp.Body()); ok {
		valErr := &models.ValidationError{StatusCode: status, Detail: detail}
		if sentinel == nil {
			return valErr
		}
		return fmt.Errorf("%w: %w", sentinel, valErr)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}
	if sentinel == nil {
		return fmt.Errorf("http %d: %s", status, body)
	}
	return fmt.Errorf("%w: %s", sentinel, body)
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return nil
	}
}

// decodeErrorDetail extracts a non-empty "error" payload from body.
func decodeErrorDetail(body []byte) (models.ErrorDetail, bool) {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Error == nil || eb.Error.IsZero() {
		return models.ErrorDetail{}, false
	}
	return *eb.Error, true
}

// validationFromBody turns an "error" payload delivered with a 2xx status into
// a ValidationError.
func validationFromBody(status int, detail *models.ErrorDetail) error {
	if detail == nil || detail.IsZero() {
		return nil
	}
	return &models.ValidationError{StatusCode: status, Detail: *detail}
}
