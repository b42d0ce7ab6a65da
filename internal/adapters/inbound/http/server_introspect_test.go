package http

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestIntrospectHandler(t *testing.T) {
	tests := map[string]struct {
		registerDependencies func(t *testing.T)
		expectedCode         int
		expectedType         string
		shouldContain        []string
		shouldNotContain     []string
	}{
		"success-returns-html": {
			registerDependencies: func(t *testing.T) {
				depend.RegisterNamed("graph TD;\nA-->B;\nB-->C;\nA-->C;", "introspection-graph-mermaid")
				t.Cleanup(depend.ClearContainer)
			},
			expectedCode: http.StatusOK,
			expectedType: "text/html; charset=utf-8",
			shouldContain: []string{
				"<!DOCTYPE html>",
				"<title>Catalog Introspection Graph</title>",
				"mermaid.registerLayoutLoaders(elkLayouts);",
				"mermaid.initialize({ startOnLoad: false });",
				"window.addEventListener('DOMContentLoaded', renderGraph);",
				"<h1>Catalog Introspection Graph</h1>",
				`const { svg } = await mermaid.render('mermaid-svg-id', "graph TD;\nA--\u003eB;\nB--\u003eC;\nA--\u003eC;");`,
			},
			shouldNotContain: []string{"<h2>Config defaults</h2>"},
		},
		"success-lists-config-defaults": {
			registerDependencies: func(t *testing.T) {
				depend.RegisterNamed("graph TD;\nA-->B;", "introspection-graph-mermaid")
				depend.RegisterNamed([]string{"HTTP_PORT", "STORE_DRIVER"}, "introspection-config-defaults")
				t.Cleanup(depend.ClearContainer)
			},
			expectedCode: http.StatusOK,
			expectedType: "text/html; charset=utf-8",
			shouldContain: []string{
				"<h2>Config defaults</h2>",
				"<li><code>HTTP_PORT</code></li>",
				"<li><code>STORE_DRIVER</code></li>",
			},
		},
		"failed-to-resolve-dependency": {
			registerDependencies: func(t *testing.T) {},
			expectedCode:         http.StatusInternalServerError,
			expectedType:         "text/plain; charset=utf-8",
			shouldContain:        []string{"Failed to resolve dependency graph"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.registerDependencies(t)

			req := httptest.NewRequest(http.MethodGet, "/introspect", nil)
			w := httptest.NewRecorder()
			var logs bytes.Buffer
			api := CatalogServer{Logger: log.New(&logs, "", 0)}

			api.IntrospectHandler(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Empty(t, logs.String(), "a missing optional dependency is not an error")
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))

			body := w.Body.String()
			for _, expectedText := range tt.shouldContain {
				assert.True(t,
					strings.Contains(body, expectedText),
					"expected response to contain %q", expectedText,
				)
			}
			for _, unexpected := range tt.shouldNotContain {
				assert.NotContains(t, body, unexpected)
			}
		})
	}
}

func TestIsNotRegistered(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := depend.ResolveNamed[[]string]("introspection-config-defaults")
	assert.True(t, isNotRegistered(err), "unknown type")

	depend.RegisterNamed([]string{"HTTP_PORT"}, "other")
	_, err = depend.ResolveNamed[[]string]("introspection-config-defaults")
	assert.True(t, isNotRegistered(err), "unknown name")

	assert.False(t, isNotRegistered(errors.New("container is locked")))
}
