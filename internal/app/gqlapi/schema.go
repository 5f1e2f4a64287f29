// Package gqlapi wires the feature resolvers into one GraphQL schema and serves it over gin.
package gqlapi

import (
	_ "embed"
	"fmt"
	"regexp"

	"github.com/graph-gophers/graphql-go"

	authgraphql "blog_backend/internal/feature/auth/transport/graphql"
	bloggraphql "blog_backend/internal/feature/blog/transport/graphql"
)

//go:embed schema.graphql
var schemaSDL string

// maxQueryDepth bounds nested User/Post/Profile selections.
const maxQueryDepth = 10

// readOnlySDL is schemaSDL without the mutation root, for requests that must not write.
var readOnlySDL = regexp.MustCompile(`(?s)\s*mutation: Mutation|type Mutation \{.*?\n\}\n`).ReplaceAllString(schemaSDL, "")

// rootResolver exposes Mutation fields from auth and Query fields from blog.
type rootResolver struct {
	*authgraphql.MutationResolver
	*bloggraphql.QueryResolver
}

// queryRoot exposes Query fields only.
type queryRoot struct {
	*bloggraphql.QueryResolver
}

// Schemas holds the full schema and its query-only counterpart.
type Schemas struct {
	// ReadWrite serves every operation.
	ReadWrite *graphql.Schema
	// ReadOnly has no mutation root; graphql-go refuses mutations on it before any resolver runs.
	ReadOnly *graphql.Schema
}

// NewSchemas parses both schemas and binds them to the resolvers.
// A mismatch between schema and resolver methods is reported here, at startup.
func NewSchemas(mutations *authgraphql.MutationResolver, queries *bloggraphql.QueryResolver) (*Schemas, error) {
	rw, err := graphql.ParseSchema(schemaSDL,
		&rootResolver{MutationResolver: mutations, QueryResolver: queries},
		graphql.MaxDepth(maxQueryDepth),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	ro, err := graphql.ParseSchema(readOnlySDL,
		&queryRoot{QueryResolver: queries},
		graphql.MaxDepth(maxQueryDepth),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse read-only schema: %w", err)
	}
	return &Schemas{ReadWrite: rw, ReadOnly: ro}, nil
}
