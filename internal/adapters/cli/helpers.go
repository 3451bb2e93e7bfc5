package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/aerologix/charterplan/internal/adapters/environment"
	"github.com/aerologix/charterplan/internal/adapters/metrics"
	"github.com/aerologix/charterplan/internal/adapters/persistence"
	"github.com/aerologix/charterplan/internal/application/mediator"
	planningCmd "github.com/aerologix/charterplan/internal/application/planning/commands"
	planningQuery "github.com/aerologix/charterplan/internal/application/planning/queries"
	planningTypes "github.com/aerologix/charterplan/internal/application/planning/types"
	"github.com/aerologix/charterplan/internal/domain/geo"
	"github.com/aerologix/charterplan/internal/domain/planning"
	"github.com/aerologix/charterplan/internal/domain/pricing"
	"github.com/aerologix/charterplan/internal/domain/shared"
	"github.com/aerologix/charterplan/internal/domain/weather"
	"github.com/aerologix/charterplan/internal/infrastructure/config"
	"github.com/aerologix/charterplan/internal/infrastructure/database"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// legTimeLayout is the departure format accepted by --leg flags
const legTimeLayout = "2006-01-02T15:04"

// app wires configuration, storage, and the planning pipeline for a
// single CLI invocation
type app struct {
	cfg          *config.Config
	db           *gorm.DB
	med          *mediator.Mediator
	airportRepo  *persistence.GormAirportRepository
	aircraftRepo *persistence.GormAircraftRepository
	planRepo     *persistence.GormRoutePlanRepository
	metricsSrv   *http.Server
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	airportRepo := persistence.NewGormAirportRepository(db)
	aircraftRepo := persistence.NewGormAircraftRepository(db)
	planRepo := persistence.NewGormRoutePlanRepository(db)

	airports, err := airportRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load airport reference data: %w", err)
	}
	resolver := geo.NewResolver(airports)

	var source weather.Source
	if cfg.Environment.SnapshotPath != "" {
		source, err = environment.LoadSnapshot(cfg.Environment.SnapshotPath)
		if err != nil {
			return nil, err
		}
	} else {
		source = environment.Empty()
	}

	gate := weather.NewGate(source, cfg.Environment.ToDomain())
	engine := pricing.NewEngine(resolver, cfg.Pricing.ToDomain())
	assembler := planning.NewAssembler(shared.NewRealClock())
	optimizer := planning.NewOptimizer(resolver, cfg.Routing.ToDomain(), gate, engine, assembler)
	selector := planning.NewFleetSelector(optimizer, cfg.Planning.MaxWorkers)

	registry := prometheus.NewRegistry()
	collector := metrics.NewPlanningMetricsCollector()
	if err := collector.Register(registry); err != nil {
		return nil, err
	}

	var metricsSrv *http.Server
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		metricsSrv = &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	med := mediator.New()
	med.Register(&planningTypes.ComputeRoutePlanCommand{},
		planningCmd.NewComputeRoutePlanHandler(aircraftRepo, planRepo, optimizer, collector))
	med.Register(&planningTypes.CompareModesQuery{},
		planningQuery.NewCompareModesHandler(aircraftRepo, optimizer))
	med.Register(&planningTypes.SelectAircraftQuery{},
		planningQuery.NewSelectAircraftHandler(aircraftRepo, selector))

	return &app{
		cfg:          cfg,
		db:           db,
		med:          med,
		airportRepo:  airportRepo,
		aircraftRepo: aircraftRepo,
		planRepo:     planRepo,
		metricsSrv:   metricsSrv,
	}, nil
}

func (a *app) Close() {
	if a.metricsSrv != nil {
		_ = a.metricsSrv.Shutdown(context.Background())
	}
	_ = database.Close(a.db)
}

// parseLegFlags converts --leg FROM:TO:DEPARTURE values into leg inputs
func parseLegFlags(values []string) ([]planningTypes.LegInput, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one --leg is required")
	}
	legs := make([]planningTypes.LegInput, 0, len(values))
	for _, v := range values {
		parts := strings.Split(v, ":")
		if len(parts) < 2 {
			return nil, fmt.Errorf("malformed leg %q, expected FROM:TO:DEPARTURE", v)
		}
		leg := planningTypes.LegInput{From: parts[0], To: parts[1]}
		if len(parts) > 2 {
			departure, err := time.Parse(legTimeLayout, strings.Join(parts[2:], ":"))
			if err != nil {
				return nil, fmt.Errorf("malformed departure in leg %q: %w", v, err)
			}
			leg.Departure = departure
		}
		legs = append(legs, leg)
	}
	return legs, nil
}

// printPlan renders one plan for terminal output
func printPlan(plan *planning.RoutePlan) {
	fmt.Printf("Plan %s  aircraft=%s  mode=%s\n", plan.ID, plan.AircraftTail, plan.Mode)
	fmt.Printf("  distance=%.0fnm  flight=%.1fh  ground=%dmin  risk=%.2f  on-time=%.0f%%\n",
		plan.TotalDistanceNM, plan.TotalFlightTimeHr, plan.TotalGroundTimeMin,
		plan.RiskScore, plan.OnTimeProbability*100)

	fmt.Println("  Legs:")
	for _, leg := range plan.Legs {
		fmt.Printf("    %s\n", leg)
	}
	if len(plan.Stops) > 0 {
		fmt.Println("  Refuel stops:")
		for _, stop := range plan.Stops {
			fmt.Printf("    %s: %s\n", stop, stop.Reason)
		}
	}

	b := plan.Breakdown
	fmt.Println("  Quote:")
	fmt.Printf("    fuel=%s  fbo=%s  repositioning=%s  permits=%s\n",
		b.FuelCost.StringFixed(2), b.FBOFees.StringFixed(2),
		b.RepositioningCost.StringFixed(2), b.PermitFees.StringFixed(2))
	fmt.Printf("    overnight=%s  catering=%s  peak=%s\n",
		b.CrewOvernight.StringFixed(2), b.Catering.StringFixed(2), b.PeakSurcharge.StringFixed(2))
	fmt.Printf("    subtotal=%s  margin=%s  tax=%s  TOTAL=%s\n",
		b.Subtotal.StringFixed(2), b.MarginAmount.StringFixed(2),
		b.Tax.StringFixed(2), b.Total.StringFixed(2))

	for _, warning := range plan.Warnings {
		fmt.Printf("  WARNING: %s\n", warning)
	}
}
