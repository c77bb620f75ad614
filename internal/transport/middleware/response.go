package middleware

import (
	"encoding/json"
	"net/http"
)

type gqlErrorBody struct {
	Errors []gqlErrorItem `json:"errors"`
}

type gqlErrorItem struct {
	Message    string            `json:"message"`
	Extensions map[string]string `json:"extensions"`
}

// writeGraphQLError answers in the GraphQL response shape so clients can
// handle transport rejections and resolver errors the same way.
func writeGraphQLError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(gqlErrorBody{
		Errors: []gqlErrorItem{{Message: message, Extensions: map[string]string{"code": code}}},
	})
}
