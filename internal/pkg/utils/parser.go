package utils

import (
	"heallink-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

func ParseRequestBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
