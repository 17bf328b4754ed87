package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/api"
	"damafashion/cli/internal/config"
	"damafashion/cli/internal/credstore"
	"damafashion/cli/internal/guard"
	"damafashion/cli/internal/inventory"
	"damafashion/cli/internal/logging"
	"damafashion/cli/internal/session"
)

// app wires the session core and the resource services together. It is
// built once per invocation in the root pre-run; commands reach it through
// the package-level a.
type app struct {
	cfg    config.Config
	log    zerolog.Logger
	tokens credstore.Store
	client *api.Client

	sessions *session.Controller
	guard    *guard.Guard

	auth       *inventory.AuthService
	products   *inventory.ProductService
	categories *inventory.CategoryService
	suppliers  *inventory.SupplierService
	stocks     *inventory.StockService
	users      *inventory.UserService
	dashboard  *inventory.DashboardService
}

var a *app

// initApp builds the application graph and starts the session restore in the
// background. Guards block on the controller's readiness signal, so no
// access decision can happen before the restore resolves.
func initApp(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel)

	tokens := openTokenStore(log)

	client := api.New(cfg.BaseURL, cfg.Timeout, tokens, log)
	auth := inventory.NewAuthService(client)

	nav := &terminalNavigator{}
	sessions := session.New(auth, tokens, nav, log)
	client.SetUnauthorizedHook(sessions.HandleUnauthorized)

	products := inventory.NewProductService(client)
	categories := inventory.NewCategoryService(client)
	suppliers := inventory.NewSupplierService(client)
	stocks := inventory.NewStockService(client)

	a = &app{
		cfg:        cfg,
		log:        log,
		tokens:     tokens,
		client:     client,
		sessions:   sessions,
		guard:      guard.New(sessions, nav),
		auth:       auth,
		products:   products,
		categories: categories,
		suppliers:  suppliers,
		stocks:     stocks,
		users:      inventory.NewUserService(client),
		dashboard:  inventory.NewDashboardService(products, stocks, categories),
	}

	go sessions.Restore(cmd.Context())
	return nil
}

// openTokenStore opens the OS keychain, degrading to an in-process store
// when the keychain is unavailable or disabled. A degraded store reads as
// "no credential", which lands the session in the logged-out state rather
// than failing the command.
func openTokenStore(log zerolog.Logger) credstore.Store {
	if os.Getenv("DAMA_NO_KEYRING") == "1" {
		return credstore.NewMemory()
	}
	ring, err := credstore.Open()
	if err != nil {
		log.Warn().Err(err).Msg("OS keychain unavailable, session will not persist")
		return credstore.NewMemory()
	}
	return ring
}
