package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TASVideos/wikimark/db"
	"github.com/TASVideos/wikimark/wikitext"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Fields: fields}
}

// ExtractErrorFields converts validation errors into per-field messages.
// Other errors have no fields.
func ExtractErrorFields(err error) []ErrorField {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, ErrorField{
			FieldName:    fe.Field(),
			ErrorMessage: getBindingErrorMessage(fe.Tag()),
		})
	}

	return fields
}

func getBindingErrorMessage(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "len":
		return "invalid length"
	case "url":
		return "invalid URL format"
	case "alphanum":
		return "must contain only letters and numbers"
	case "gte":
		return "must be greater than or equal to the allowed minimum"
	case "lte":
		return "must be less than or equal to the allowed maximum"
	case "oneof":
		return "must be one of the allowed values"
	case "page_name":
		return "invalid page name"
	case "dialect":
		return "must be either wiki or forum"
	}

	return "invalid input"
}

// errorStatus maps an error to the HTTP status. Store errors are mapped by their kind.
func errorStatus(err error) int {
	var ce *wikitext.ConfigError
	if errors.As(err, &ce) {
		return http.StatusBadRequest
	}

	kind, ok := db.ErrorKind(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch kind {
	case db.KindNotFound:
		return http.StatusNotFound
	case db.KindConflict:
		return http.StatusConflict
	case db.KindInvalid:
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// respondError writes the error response. Internal errors are logged and hidden from the client.
func respondError(ctx *gin.Context, err error) {
	status := errorStatus(err)

	if status == http.StatusInternalServerError {
		logger := requestLogger(ctx)
		logger.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("request failed")

		ctx.JSON(status, NewErrorResponse(ErrInternal))
		return
	}

	ctx.JSON(status, NewErrorResponse(err))
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
