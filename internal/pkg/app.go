package pkg

import (
	"littlelemon/internal/api"
)

// App starts the HTTP server.
func App() {
	api.StartServer()
}
