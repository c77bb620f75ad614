// Package graphql provides the GraphQL transport for the links API: the
// code-first schema, the HTTP handler serving it, and the error presenter that
// turns domain errors into coded GraphQL errors.
package graphql
