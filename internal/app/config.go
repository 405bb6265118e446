package app

import (
	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/utils"
)

type Config struct {
	Port     string
	Planning planning.Config
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port: utils.GetEnv("PORT", "8080", log),
		Planning: planning.Config{
			HorizonWeeks:      utils.GetEnvAsInt("PLAN_HORIZON_WEEKS", 52, log),
			Workers:           utils.GetEnvAsInt("PLAN_WORKERS", 8, log),
			MinHistoryWeeks:   utils.GetEnvAsInt("MIN_HISTORY_WEEKS", 4, log),
			FallbackDemandQty: utils.GetEnvAsDecimal("FORECAST_FALLBACK_QTY", decimal.Zero, log),
			MinSafetyStockQty: utils.GetEnvAsDecimal("MIN_SAFETY_STOCK_QTY", decimal.Zero, log),
		},
	}
}
