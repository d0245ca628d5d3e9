package graphql

import (
	"context"
	"net/http"

	"github.com/graphql-go/handler"

	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
)

type ctxKey int

const ctxKeyCPOOwnerID ctxKey = iota

// WithCPOOwnerID stamps the authenticated CPO onto the request context
// so resolvers can scope their queries.
func WithCPOOwnerID(ctx context.Context, cpoOwnerID int64) context.Context {
	return context.WithValue(ctx, ctxKeyCPOOwnerID, cpoOwnerID)
}

func cpoOwnerIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(ctxKeyCPOOwnerID).(int64)
	if !ok {
		return 0, constants.ErrUnauthorized
	}
	return id, nil
}

// NewHandler builds the HTTP handler serving the location graph.
func NewHandler(st store.Store) (http.Handler, error) {
	schema, err := buildSchema(st)
	if err != nil {
		return nil, err
	}

	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: false,
	}), nil
}
