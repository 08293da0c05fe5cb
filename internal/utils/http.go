// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// GraphQLErrorBody is a GraphQL response that carries errors only.
type GraphQLErrorBody struct {
	Errors []GraphQLError `json:"errors"`
}

// GraphQLError is a single entry of a GraphQL "errors" array.
type GraphQLError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// WriteGraphQLError answers a request that was rejected before reaching the
// GraphQL executor, keeping the response shape GraphQL clients expect.
func WriteGraphQLError(w http.ResponseWriter, statusCode int, message, code string) (int, error) {
	body := GraphQLErrorBody{Errors: []GraphQLError{{
		Message:    message,
		Extensions: map[string]any{"code": code},
	}}}

	return WriteJSON(w, body, statusCode)
}
