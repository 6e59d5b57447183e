// Package handler is the HTTP layer. Each endpoint binds and validates a
// request struct, calls one service method and writes the result; errors
// go back to echo untouched and are rendered by the global error handler.
package handler
