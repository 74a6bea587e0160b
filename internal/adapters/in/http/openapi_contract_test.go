package http_test

import (
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openAPIDocumentPath = "../../../../api/openapi.yml"

func loadOpenAPIDocument(t *testing.T) *openapi3.T {
	t.Helper()
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(openAPIDocumentPath)
	require.NoError(t, err)
	return doc
}

func TestOpenAPIDocument_IsValid(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(openAPIDocumentPath)
	require.NoError(t, err)

	err = doc.Validate(loader.Context)
	assert.NoError(t, err)
}

func TestOpenAPIDocument_CoversAllRegisteredRoutes(t *testing.T) {
	doc := loadOpenAPIDocument(t)

	server, _ := newTestServer(t)
	e := echo.New()
	server.RegisterRoutes(e)

	for _, route := range e.Routes() {
		path := echoPathToOpenAPIPath(route.Path)

		pathItem := doc.Paths.Find(path)
		require.NotNilf(t, pathItem, "route %s %s is not documented", route.Method, route.Path)

		operation := pathItem.GetOperation(route.Method)
		assert.NotNilf(t, operation, "route %s %s has no documented operation", route.Method, route.Path)
	}
}

func TestOpenAPIDocument_HasNoStaleRoutes(t *testing.T) {
	doc := loadOpenAPIDocument(t)

	server, _ := newTestServer(t)
	e := echo.New()
	server.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+echoPathToOpenAPIPath(route.Path)] = true
	}

	for path, pathItem := range doc.Paths.Map() {
		for method := range pathItem.Operations() {
			assert.Truef(t, registered[method+" "+path],
				"documented operation %s %s is not registered", method, path)
		}
	}
}

// echoPathToOpenAPIPath rewrites echo's :param segments into OpenAPI's
// {param} form.
func echoPathToOpenAPIPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}
