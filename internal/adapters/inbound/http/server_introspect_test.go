package http

import (
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
		target               string
		expectedCode         int
		expectedType         string
		shouldContain        []string
	}{
		"success-returns-html": {
			registerDependencies: func(t *testing.T) {
				depend.RegisterNamed("graph TD;\nA-->B;\nB-->C;\nA-->C;", introspectionGraphName)
				t.Cleanup(depend.ClearContainer)
			},
			target:       "/introspect",
			expectedCode: http.StatusOK,
			expectedType: "text/html; charset=utf-8",
			shouldContain: []string{
				"<!DOCTYPE html>",
				"<title>RepoIndexer Introspection Graph</title>",
				"mermaid.registerLayoutLoaders(elkLayouts);",
				"mermaid.initialize({ startOnLoad: false });",
				"window.addEventListener('DOMContentLoaded', renderGraph);",
				"<h1>RepoIndexer Introspection Graph</h1>",
				`const { svg } = await mermaid.render('mermaid-svg-id', "graph TD;\nA--\u003eB;\nB--\u003eC;\nA--\u003eC;");`,
			},
		},
		"raw-mermaid-format": {
			registerDependencies: func(t *testing.T) {
				depend.RegisterNamed("graph TD;\nA-->B;", introspectionGraphName)
				t.Cleanup(depend.ClearContainer)
			},
			target:        "/introspect?format=mermaid",
			expectedCode:  http.StatusOK,
			expectedType:  "text/plain; charset=utf-8",
			shouldContain: []string{"graph TD;\nA-->B;"},
		},
		"failed-to-resolve-dependency": {
			registerDependencies: func(t *testing.T) {},
			target:               "/introspect",
			expectedCode:         http.StatusInternalServerError,
			expectedType:         "text/plain; charset=utf-8",
			shouldContain:        []string{"Failed to resolve dependency graph"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.registerDependencies(t)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			IntrospectHandler(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))

			body := w.Body.String()
			for _, expectedText := range tt.shouldContain {
				assert.True(t,
					strings.Contains(body, expectedText),
					"expected response to contain %q", expectedText,
				)
			}
		})
	}
}
