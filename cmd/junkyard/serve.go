package main

import (
	"fmt"
	"net"
	"strconv"

	jyhttp "github.com/fwojciec/junkyard/http"
	jyslog "github.com/fwojciec/junkyard/slog"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))

	srv := jyhttp.NewServer(
		jyslog.NewLoggingSearcher(deps.Searcher, deps.Logger),
		deps.Catalog,
		jyhttp.WithLogger(deps.Logger),
	)

	fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", addr)
	return srv.ListenAndServe(deps.Ctx, addr)
}
