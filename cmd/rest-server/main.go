package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cargodham/cargodham-mcp/internal/config"
	"github.com/cargodham/cargodham-mcp/internal/logging"
	"github.com/cargodham/cargodham-mcp/internal/rest"
	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

func main() {
	root := &cobra.Command{
		Use:   "rest-server",
		Short: "CargoDham shipping gateway REST API",
		RunE:  run,
	}

	root.PersistentFlags().String("api-token", "", "Shiprocket API bearer token")
	root.PersistentFlags().String("base-url", "", "Shiprocket API base URL")
	root.PersistentFlags().Duration("upstream-timeout", 30*time.Second, "Timeout for upstream calls")
	root.PersistentFlags().Int("port", 3000, "HTTP port")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	token := "not set"
	if config.APIToken() != "" {
		token = "set"
	}
	log.Printf("vendor code %s, API token %s", config.VendorCode(), token)

	baseLogger := logging.DefaultLogger()
	client := shiprocket.NewClient(shiprocket.Config{
		BaseURL: config.BaseURL(),
		Timeout: config.UpstreamTimeout(),
		Token:   config.APIToken,
		Logger:  logging.New(baseLogger.WithName("shiprocket")),
	})
	router := rest.NewRouter(client, logging.New(baseLogger.WithName("rest")))

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	addr := host + ":" + strconv.Itoa(port)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("REST server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
