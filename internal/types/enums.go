package types

type PlanningMode string

const (
	PlanningModeWOSTarget PlanningMode = "WOS_TARGET"
	PlanningModeROP       PlanningMode = "ROP"
)

func (m PlanningMode) Valid() bool {
	return m == PlanningModeWOSTarget || m == PlanningModeROP
}

type SafetyStockMethod string

const (
	SafetyStockMethodWeeks        SafetyStockMethod = "WEEKS"
	SafetyStockMethodServiceLevel SafetyStockMethod = "SERVICE_LEVEL"
)

func (m SafetyStockMethod) Valid() bool {
	return m == SafetyStockMethodWeeks || m == SafetyStockMethodServiceLevel
}

type DemandType string

const (
	DemandTypeCustomer   DemandType = "CUSTOMER"
	DemandTypeSamples    DemandType = "SAMPLES"
	DemandTypeAdjustment DemandType = "ADJUSTMENT"
)

func (t DemandType) Valid() bool {
	return t == DemandTypeCustomer || t == DemandTypeSamples || t == DemandTypeAdjustment
}

type PlanRunStatus string

const (
	PlanRunStatusCompleted           PlanRunStatus = "completed"
	PlanRunStatusCompletedWithErrors PlanRunStatus = "completed_with_errors"
	PlanRunStatusFailed              PlanRunStatus = "failed"
)
