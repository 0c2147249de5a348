// Package routes defines declarative route tables that domain handlers
// return and the composition root registers.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
