// Package cli implements the inventoryctl command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	inventoryv1 "github.com/abgdnv/bakery-inventory/pkg/api/gen/go/inventory/v1"
	"github.com/abgdnv/bakery-inventory/pkg/bootstrap"
	"github.com/abgdnv/bakery-inventory/pkg/client/grpc/interceptors"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Version is set at build time.
var Version = "dev"

type app struct {
	configFile string
	addr       string
	timeout    time.Duration
	output     string
	token      string
	dialOpts   []grpc.DialOption

	cfg    *clientConfig
	logger *slog.Logger
	conn   *grpc.ClientConn
	client inventoryv1.InventoryServiceClient
}

// NewRootCmd builds the inventoryctl command tree.
// dialOpts are appended to the defaults when connecting to the service.
func NewRootCmd(dialOpts ...grpc.DialOption) *cobra.Command {
	a := &app{dialOpts: dialOpts}

	root := &cobra.Command{
		Use:     "inventoryctl",
		Version: Version,
		Short:   "Manage bakery inventory",
		Long: `inventoryctl talks to the inventory service over gRPC.

It registers products, records stock movements and queries what is on hand.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.connect,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "inventoryctl.yaml", "client config file")
	flags.StringVar(&a.addr, "addr", "", "inventory service gRPC address (default client.addr, localhost:9090)")
	flags.DurationVar(&a.timeout, "timeout", 0, "per-call timeout (default client.timeout, 5s)")
	flags.StringVarP(&a.output, "output", "o", "json", "output format (json|yaml)")
	flags.StringVar(&a.token, "token", os.Getenv("INVENTORY_TOKEN"), "bearer token sent with every call (default $INVENTORY_TOKEN)")

	root.AddCommand(
		newAddCmd(a),
		newGetCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newUpdateCmd(a),
		newRemoveCmd(a),
		newStockCmd(a),
		newAddStockCmd(a),
		newOffloadCmd(a),
		newClearCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) connect(cmd *cobra.Command, _ []string) error {
	if a.output != "json" && a.output != "yaml" {
		return fmt.Errorf("unsupported output format %q", a.output)
	}
	cfg, err := loadClientConfig(a.configFile)
	if err != nil {
		return err
	}
	if a.addr != "" {
		cfg.Client.Addr = a.addr
	}
	if a.timeout > 0 {
		cfg.Client.Timeout = a.timeout
	}

	a.cfg = cfg
	a.logger = bootstrap.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(interceptors.Chain(cfg.Client, a.logger)...),
	}
	if a.token != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerToken(a.token)))
	}
	conn, err := grpc.NewClient(cfg.Client.Addr, append(opts, a.dialOpts...)...)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.Client.Addr, err)
	}
	a.conn = conn
	a.client = inventoryv1.NewInventoryServiceClient(conn)
	return nil
}

// run wraps a command body so the connection is closed whether or not it fails.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() { _ = a.close() }()
		return fn(cmd, args)
	}
}

func (a *app) close() error {
	if a.conn == nil {
		return nil
	}
	err := a.conn.Close()
	a.conn = nil
	return err
}

// bearerToken attaches an Authorization header to every call.
type bearerToken string

func (t bearerToken) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + string(t)}, nil
}

func (bearerToken) RequireTransportSecurity() bool {
	return false
}
