package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/asaskevich/EventBus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	addressesmemory "github.com/sneakpeak/storefront/internal/domains/addresses/adapters/memory"
	addressesapp "github.com/sneakpeak/storefront/internal/domains/addresses/application"
	cartmemory "github.com/sneakpeak/storefront/internal/domains/cart/adapters/memory"
	cartobs "github.com/sneakpeak/storefront/internal/domains/cart/adapters/observability"
	cartapp "github.com/sneakpeak/storefront/internal/domains/cart/application"
	cartports "github.com/sneakpeak/storefront/internal/domains/cart/ports"
	catalogmemory "github.com/sneakpeak/storefront/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/sneakpeak/storefront/internal/domains/catalog/application"
	checkoutidentity "github.com/sneakpeak/storefront/internal/domains/checkout/adapters/identity"
	checkoutnotify "github.com/sneakpeak/storefront/internal/domains/checkout/adapters/notify"
	checkoutobs "github.com/sneakpeak/storefront/internal/domains/checkout/adapters/observability"
	checkoutworkflows "github.com/sneakpeak/storefront/internal/domains/checkout/adapters/workflows"
	checkoutapp "github.com/sneakpeak/storefront/internal/domains/checkout/application"
	checkoutports "github.com/sneakpeak/storefront/internal/domains/checkout/ports"
	ordersmemory "github.com/sneakpeak/storefront/internal/domains/orders/adapters/memory"
	ordersobs "github.com/sneakpeak/storefront/internal/domains/orders/adapters/observability"
	ordersapp "github.com/sneakpeak/storefront/internal/domains/orders/application"
	vouchersmemory "github.com/sneakpeak/storefront/internal/domains/vouchers/adapters/memory"
	vouchersapp "github.com/sneakpeak/storefront/internal/domains/vouchers/application"
	orderactivities "github.com/sneakpeak/storefront/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/sneakpeak/storefront/internal/durable/temporal/workflows/orders"
	"github.com/sneakpeak/storefront/internal/platform/async"
	platformobservability "github.com/sneakpeak/storefront/internal/platform/observability"
	"github.com/sneakpeak/storefront/internal/shared/random"
	"github.com/sneakpeak/storefront/internal/transport/httpapi"
)

// Run boots the storefront HTTP API with observability, stores, and
// workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	bus := EventBus.New()
	runner := async.NewRunner()
	defer runner.Shutdown()

	catalogRepo := catalogmemory.NewSeededRepository(random.NewSeeded(cfg.CatalogSeed))
	catalogService := catalogapp.NewService(catalogRepo)

	var cartService cartports.Service = cartapp.NewService(cartmemory.NewRepository(), catalogRepo, cartapp.WithEventBus(bus))
	cartService = cartobs.New(
		cartService,
		cartobs.WithLogger(logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)

	voucherService := vouchersapp.NewService(vouchersmemory.NewRegistry())
	addressService := addressesapp.NewService(addressesmemory.NewRepository())

	orderService := ordersobs.New(
		ordersapp.NewService(ordersmemory.NewRepository()),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderPlacer checkoutports.OrderPlacer = checkoutworkflows.NewInlineOrderPlacer(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		// The worker is hosted in-process so workflow activities write
		// to the same order store the API serves reads from.
		w := worker.New(temporalClient, orderworkflows.OrderPlacementTaskQueue, worker.Options{})
		w.RegisterWorkflowWithOptions(orderworkflows.OrderPlacementWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderPlacementWorkflowName})
		orderActivities := orderactivities.NewActivities(orderService)
		w.RegisterActivityWithOptions(orderActivities.PlaceOrders, activity.RegisterOptions{Name: orderactivities.PlaceOrdersActivityName})
		if err := w.Start(); err != nil {
			logger.Warn("Temporal worker failed to start, placing orders inline", slog.String("error", err.Error()))
		} else {
			defer w.Stop()
			orderPlacer = checkoutworkflows.NewTemporalOrderPlacer(temporalClient)
			logger.Info("Temporal workflows enabled",
				slog.String("namespace", cfg.TemporalNamespace),
				slog.String("taskQueue", orderworkflows.OrderPlacementTaskQueue),
			)
		}
	}

	var checkoutService checkoutports.Service = checkoutapp.NewService(
		cartService,
		voucherService,
		addressService,
		orderPlacer,
		checkoutapp.WithEventBus(bus),
		checkoutapp.WithNotifier(checkoutnotify.NewSlogNotifier(logger)),
		checkoutapp.WithIdentity(checkoutidentity.NewStaticProvider("guest", "shopper")),
		checkoutapp.WithAsyncRunner(runner, cfg.NotifyDelay),
	)
	checkoutService = checkoutobs.New(
		checkoutService,
		checkoutobs.WithLogger(logger),
		checkoutobs.WithTracer(instruments.Tracer("internal.checkout.application")),
		checkoutobs.WithMeter(instruments.Meter("internal.checkout.application")),
	)

	router := httpapi.NewRouter(httpapi.APIHandlers{
		CatalogAPI:  httpapi.NewCatalogAPI(catalogService, cartService),
		CartAPI:     httpapi.NewCartAPI(cartService),
		CheckoutAPI: httpapi.NewCheckoutAPI(checkoutService),
		AddressAPI:  httpapi.NewAddressAPI(addressService),
		OrderAPI:    httpapi.NewOrderAPI(orderService),
	})
	router.Use(otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("Storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("Storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
