package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/equipbook/equipbook/shared/domain"
	"github.com/equipbook/equipbook/shared/errors"
)

var errInvalidID = &errors.ErrorWithStatusCode{Message: "Invalid equipment id", StatusCode: http.StatusBadRequest}

func equipmentID(r *http.Request) (domain.EquipmentId, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// formInt reads a positive integer form or query value; anything else is 0.
func formInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// wantsJSON reports a script caller, which gets JSON instead of a redirect.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// returnPath is where a form post redirects back to. Only local paths are
// accepted so the field cannot be used as an open redirect.
func returnPath(r *http.Request, fallback string) string {
	target := r.FormValue("return")
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, `\`) {
		return fallback
	}
	return target
}
