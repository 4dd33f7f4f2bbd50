package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/equipbook/equipbook/shared/errors"
	"github.com/equipbook/equipbook/shared/logger"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var withStatus *errors.ErrorWithStatusCode
	if errors.As(err, &withStatus) {
		http.Error(w, withStatus.Error(), withStatus.StatusCode)
		return
	}
	var failure *errors.Failure
	if errors.As(err, &failure) {
		http.Error(w, failure.Error(), http.StatusBadGateway)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("encoding json response", "error", err)
	}
}

func ValidateStruct(body any) error {
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("validation failed", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	return ValidateStruct(body)
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("decoding json body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	return nil
}
