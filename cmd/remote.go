package main

import (
	"net/http"
	"time"

	"unitconv/pkg/apiclient"

	"github.com/spf13/cobra"
)

const remoteTimeout = 30 * time.Second

// addRemoteFlags registers the flags that point a command at a running server.
func addRemoteFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("server", "", "Base URL of a running server, e.g. http://localhost:8080")
	cmd.PersistentFlags().String("token", "", "Bearer token for the history endpoints")
}

// remoteClient returns an API client when --server is set, or nil to run locally.
func remoteClient(cmd *cobra.Command) *apiclient.Client {
	server, _ := cmd.Flags().GetString("server")
	if server == "" {
		return nil
	}
	token, _ := cmd.Flags().GetString("token")

	return apiclient.New(&http.Client{Timeout: remoteTimeout}, server, token)
}
