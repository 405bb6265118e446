package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/repos"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

// Fixture is a YAML description of a demo dataset. Week positions are
// offsets in weeks relative to the base week (last Monday), so fixtures
// stay useful no matter when they are loaded.
type Fixture struct {
	Products []struct {
		SKU  string `yaml:"sku"`
		Name string `yaml:"name"`
	} `yaml:"products"`
	Warehouses []struct {
		Code string `yaml:"code"`
		Name string `yaml:"name"`
	} `yaml:"warehouses"`
	Suppliers []struct {
		Code  string   `yaml:"code"`
		Name  string   `yaml:"name"`
		Lanes []string `yaml:"lanes"`
	} `yaml:"suppliers"`
	Policies []struct {
		SKU                     string `yaml:"sku"`
		WarehouseCode           string `yaml:"warehouse_code"`
		Mode                    string `yaml:"mode"`
		TargetWeeks             string `yaml:"target_weeks"`
		SafetyStockMethod       string `yaml:"safety_stock_method"`
		SafetyStockWeeks        string `yaml:"safety_stock_weeks"`
		ServiceLevel            string `yaml:"service_level"`
		ForecastWindowWeeks     int    `yaml:"forecast_window_weeks"`
		LeadTimeProductionWeeks string `yaml:"lead_time_production_weeks"`
		LeadTimeHaulageWeeks    string `yaml:"lead_time_haulage_weeks"`
		OrderUpToQty            string `yaml:"order_up_to_qty"`
		IncludeSamples          *bool  `yaml:"include_samples"`
	} `yaml:"policies"`
	Inventory []struct {
		WeekOffset    int    `yaml:"week_offset"`
		SKU           string `yaml:"sku"`
		WarehouseCode string `yaml:"warehouse_code"`
		OnHandQty     string `yaml:"on_hand_qty"`
	} `yaml:"inventory"`
	Receipts []struct {
		WeekOffset    int    `yaml:"week_offset"`
		SKU           string `yaml:"sku"`
		WarehouseCode string `yaml:"warehouse_code"`
		Qty           string `yaml:"qty"`
		SourceType    string `yaml:"source_type"`
	} `yaml:"receipts"`
	Demand []struct {
		WeekOffset    int    `yaml:"week_offset"`
		SKU           string `yaml:"sku"`
		WarehouseCode string `yaml:"warehouse_code"`
		DemandType    string `yaml:"demand_type"`
		Qty           string `yaml:"qty"`
	} `yaml:"demand"`
	// DemandHistory expands into weekly CUSTOMER and SAMPLES rows for the
	// trailing `weeks` weeks before the base week, one set per pair.
	DemandHistory struct {
		Weeks int `yaml:"weeks"`
		Pairs []struct {
			SKU           string `yaml:"sku"`
			WarehouseCode string `yaml:"warehouse_code"`
			CustomerQty   string `yaml:"customer_qty"`
			SamplesQty    string `yaml:"samples_qty"`
		} `yaml:"pairs"`
	} `yaml:"demand_history"`
}

// Load reads a fixture file; an empty path yields the built-in demo set.
func Load(path string) (*Fixture, error) {
	raw := []byte(defaultFixture)
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
	}
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &f, nil
}

type Seeder struct {
	db  *gorm.DB
	log *logger.Logger

	products   repos.ProductRepo
	warehouses repos.WarehouseRepo
	suppliers  repos.SupplierRepo
	lanes      repos.LaneRepo
	policies   repos.PolicyRepo
	snapshots  repos.SnapshotRepo
	receipts   repos.ReceiptRepo
	demand     repos.DemandRepo
}

func NewSeeder(db *gorm.DB, baseLog *logger.Logger) *Seeder {
	log := baseLog.With("component", "Seeder")
	return &Seeder{
		db:         db,
		log:        log,
		products:   repos.NewProductRepo(db, baseLog),
		warehouses: repos.NewWarehouseRepo(db, baseLog),
		suppliers:  repos.NewSupplierRepo(db, baseLog),
		lanes:      repos.NewLaneRepo(db, baseLog),
		policies:   repos.NewPolicyRepo(db, baseLog),
		snapshots:  repos.NewSnapshotRepo(db, baseLog),
		receipts:   repos.NewReceiptRepo(db, baseLog),
		demand:     repos.NewDemandRepo(db, baseLog),
	}
}

// Apply loads the fixture into the database. Weekly facts are upserted so
// reseeding is idempotent; reference rows are created only when missing.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) error {
	base := planning.WeekOf(time.Now().UTC()).Add(-1)

	for _, p := range f.Products {
		existing, err := s.products.GetBySKU(ctx, nil, p.SKU)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.SKU, err)
		}
		if existing == nil {
			if _, err := s.products.Create(ctx, nil, []*types.Product{{SKU: p.SKU, Name: p.Name}}); err != nil {
				return fmt.Errorf("seed product %s: %w", p.SKU, err)
			}
		}
	}

	warehouseByCode := make(map[string]*types.Warehouse)
	for _, w := range f.Warehouses {
		existing, err := s.warehouses.GetByCode(ctx, nil, w.Code)
		if err != nil {
			return fmt.Errorf("seed warehouse %s: %w", w.Code, err)
		}
		if existing == nil {
			created, err := s.warehouses.Create(ctx, nil, []*types.Warehouse{{Code: w.Code, Name: w.Name}})
			if err != nil {
				return fmt.Errorf("seed warehouse %s: %w", w.Code, err)
			}
			existing = created[0]
		}
		warehouseByCode[w.Code] = existing
	}

	for _, sup := range f.Suppliers {
		existing, err := s.suppliers.GetByCode(ctx, nil, sup.Code)
		if err != nil {
			return fmt.Errorf("seed supplier %s: %w", sup.Code, err)
		}
		if existing == nil {
			created, err := s.suppliers.Create(ctx, nil, []*types.Supplier{{Code: sup.Code, Name: sup.Name}})
			if err != nil {
				return fmt.Errorf("seed supplier %s: %w", sup.Code, err)
			}
			existing = created[0]
			for _, whCode := range sup.Lanes {
				wh, ok := warehouseByCode[whCode]
				if !ok {
					return fmt.Errorf("seed supplier %s: unknown warehouse %s", sup.Code, whCode)
				}
				lane := &types.Lane{
					SupplierID:  existing.ID,
					WarehouseID: wh.ID,
					Code:        sup.Code + "-" + whCode,
				}
				if _, err := s.lanes.Create(ctx, nil, []*types.Lane{lane}); err != nil {
					return fmt.Errorf("seed lane %s: %w", lane.Code, err)
				}
			}
		}
	}

	for _, p := range f.Policies {
		existing, err := s.policies.GetByPair(ctx, nil, p.SKU, p.WarehouseCode)
		if err != nil {
			return fmt.Errorf("seed policy %s@%s: %w", p.SKU, p.WarehouseCode, err)
		}
		if existing != nil {
			continue
		}
		policy := &types.PlanningPolicy{
			SKU:                     p.SKU,
			WarehouseCode:           p.WarehouseCode,
			Mode:                    types.PlanningModeWOSTarget,
			TargetWeeks:             mustDec(p.TargetWeeks, "4"),
			SafetyStockMethod:       types.SafetyStockMethodWeeks,
			SafetyStockWeeks:        mustDec(p.SafetyStockWeeks, "1"),
			ServiceLevel:            mustDec(p.ServiceLevel, "0.95"),
			ForecastWindowWeeks:     p.ForecastWindowWeeks,
			LeadTimeProductionWeeks: mustDec(p.LeadTimeProductionWeeks, "2"),
			LeadTimeHaulageWeeks:    mustDec(p.LeadTimeHaulageWeeks, "1"),
			OrderUpToQty:            mustDec(p.OrderUpToQty, "0"),
			IncludeSamples:          true,
		}
		if p.Mode != "" {
			policy.Mode = types.PlanningMode(p.Mode)
		}
		if p.SafetyStockMethod != "" {
			policy.SafetyStockMethod = types.SafetyStockMethod(p.SafetyStockMethod)
		}
		if policy.ForecastWindowWeeks == 0 {
			policy.ForecastWindowWeeks = 8
		}
		if p.IncludeSamples != nil {
			policy.IncludeSamples = *p.IncludeSamples
		}
		if err := planning.ValidatePolicy(*policy); err != nil {
			return fmt.Errorf("seed policy %s@%s: %w", p.SKU, p.WarehouseCode, err)
		}
		if _, err := s.policies.Create(ctx, nil, []*types.PlanningPolicy{policy}); err != nil {
			return fmt.Errorf("seed policy %s@%s: %w", p.SKU, p.WarehouseCode, err)
		}
	}

	var snapshots []*types.InventorySnapshot
	for _, row := range f.Inventory {
		snapshots = append(snapshots, &types.InventorySnapshot{
			WeekStart:     base.Add(row.WeekOffset).Time(),
			SKU:           row.SKU,
			WarehouseCode: row.WarehouseCode,
			OnHandQty:     mustDec(row.OnHandQty, "0"),
		})
	}
	if err := s.snapshots.Upsert(ctx, nil, snapshots); err != nil {
		return fmt.Errorf("seed inventory: %w", err)
	}

	var receipts []*types.Receipt
	for _, row := range f.Receipts {
		receipts = append(receipts, &types.Receipt{
			WeekStart:     base.Add(row.WeekOffset).Time(),
			SKU:           row.SKU,
			WarehouseCode: row.WarehouseCode,
			Qty:           mustDec(row.Qty, "0"),
			SourceType:    row.SourceType,
		})
	}
	if err := s.receipts.Upsert(ctx, nil, receipts); err != nil {
		return fmt.Errorf("seed receipts: %w", err)
	}

	var demand []*types.DemandActual
	for _, row := range f.Demand {
		demand = append(demand, &types.DemandActual{
			WeekStart:     base.Add(row.WeekOffset).Time(),
			SKU:           row.SKU,
			WarehouseCode: row.WarehouseCode,
			DemandType:    types.DemandType(row.DemandType),
			Qty:           mustDec(row.Qty, "0"),
		})
	}
	for _, pair := range f.DemandHistory.Pairs {
		for off := -f.DemandHistory.Weeks; off < 0; off++ {
			week := base.Add(off).Time()
			demand = append(demand,
				&types.DemandActual{
					WeekStart:     week,
					SKU:           pair.SKU,
					WarehouseCode: pair.WarehouseCode,
					DemandType:    types.DemandTypeCustomer,
					Qty:           mustDec(pair.CustomerQty, "0"),
				},
				&types.DemandActual{
					WeekStart:     week,
					SKU:           pair.SKU,
					WarehouseCode: pair.WarehouseCode,
					DemandType:    types.DemandTypeSamples,
					Qty:           mustDec(pair.SamplesQty, "0"),
				})
		}
	}
	if err := s.demand.Upsert(ctx, nil, demand); err != nil {
		return fmt.Errorf("seed demand: %w", err)
	}

	s.log.Info("Seed completed",
		"products", len(f.Products),
		"warehouses", len(f.Warehouses),
		"policies", len(f.Policies),
		"inventory", len(snapshots),
		"receipts", len(receipts),
		"demand", len(demand))
	return nil
}

func mustDec(s, fallback string) decimal.Decimal {
	if s == "" {
		s = fallback
	}
	return decimal.RequireFromString(s)
}
