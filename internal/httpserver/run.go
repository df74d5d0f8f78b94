package httpserver

import (
	"context"
	"fmt"
)

// Run wires all routes and blocks serving until the listener fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP server listening on port %d", srv.port)

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
