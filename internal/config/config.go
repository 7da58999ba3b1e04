// Package config defines the data structures related to the model
// configuration file and includes functions for loading, validating, and
// adapting the config into engine inputs.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration holds the complete model file: engine-wide system
// parameters, one or more scenarios, and the CLI's logging/output sections.
type Configuration struct {
	System    SystemConfig
	Scenarios []ScenarioConfig
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// SystemConfig is the shared, externally supplied engine configuration.
type SystemConfig struct {
	ZakatRate           float64 `validate:"gte=0,lte=1"`
	DebtInterestRate    float64 `validate:"gte=0,lte=1"`
	DepositInterestRate float64 `validate:"gte=0,lte=1"`
	MinimumCashBalance  float64 `validate:"gte=0"`
}

// ScenarioConfig is one named what-if model.
type ScenarioConfig struct {
	Name   string `validate:"required"`
	Active bool

	WorkingCapitalBaselineYear int

	Historical []HistoricalYear `validate:"min=1,dive"`
	Transition []TransitionYear `validate:"dive"`
	Dynamic    *DynamicBand     `validate:"omitempty"`

	CapEx CapExConfig
}

// HistoricalYear is one recorded actual year.
type HistoricalYear struct {
	Year        int `validate:"required,gte=1950,lte=2200"`
	Confirmed   bool
	OpeningCash float64

	ProfitLoss   HistoricalProfitLoss
	BalanceSheet HistoricalBalanceSheet
}

// HistoricalProfitLoss mirrors the engine's actual income-statement lines.
type HistoricalProfitLoss struct {
	TuitionRevenue  float64
	OtherRevenue    float64
	RentExpense     float64
	StaffCosts      float64
	OtherOpex       float64
	Depreciation    float64 `validate:"gte=0"`
	InterestIncome  float64
	InterestExpense float64
	ZakatExpense    float64
}

// HistoricalBalanceSheet mirrors the engine's actual balance-sheet lines.
type HistoricalBalanceSheet struct {
	Cash                    float64
	AccountsReceivable      float64
	PrepaidExpenses         float64
	GrossPPE                float64 `validate:"gte=0"`
	AccumulatedDepreciation float64 `validate:"gte=0"`
	AccountsPayable         float64
	AccruedExpenses         float64
	DeferredRevenue         float64
	DebtBalance             float64 `validate:"gte=0"`
	RetainedEarnings        float64
}

// TransitionYear is one manually-adjusted transition year.
type TransitionYear struct {
	Year int `validate:"required,gte=1950,lte=2200"`

	PreFill           bool
	TuitionRevenue    float64
	TuitionGrowthRate float64
	StudentCount      int     `validate:"gte=0"`
	TuitionRate       float64 `validate:"gte=0"`

	StaffCosts          *float64
	RentExpense         *float64
	OtherOpexGrowthRate float64

	CapExSpending []SpendingEntry `validate:"dive"`
}

// SpendingEntry is a manual capital spending line during transition.
type SpendingEntry struct {
	Category string  `validate:"required"`
	Amount   float64 `validate:"gt=0"`
}

// DynamicBand configures the fully modeled years from StartYear through
// EndYear inclusive; the per-year models are year-independent.
type DynamicBand struct {
	StartYear int `validate:"required,gte=1950,lte=2200"`
	EndYear   int `validate:"required,gte=1950,lte=2200"`

	Enrollment EnrollmentConfig
	Curriculum CurriculumConfig
	StaffCost  StaffCostConfig
	Rent       RentConfig
}

// EnrollmentConfig configures the enrollment ramp.
type EnrollmentConfig struct {
	RampStartYear   int `validate:"gte=1950,lte=2200"`
	RampEndYear     int `validate:"gte=1950,lte=2200"`
	TargetStudents  int `validate:"gte=0"`
	RampPercentages []float64
}

// CurriculumConfig configures dual-curriculum tuition.
type CurriculumConfig struct {
	BaseYear           int     `validate:"gte=1950,lte=2200"`
	NationalFee        float64 `validate:"gte=0"`
	NationalGrowthRate float64
	GrowthFrequency    int `validate:"gte=0,lte=50"`
	IBEnabled          bool
	IBShare            float64 `validate:"gte=0,lte=1"`
	IBFee              float64 `validate:"gte=0"`
	IBGrowthRate       float64
}

// StaffCostConfig selects and parameterizes a staff-cost model.
type StaffCostConfig struct {
	Model string `validate:"required,oneof=fixedVariable percentOfRevenue ratioBased"`

	FixedCost          float64 `validate:"gte=0"`
	VariablePerStudent float64 `validate:"gte=0"`

	RevenuePercent float64 `validate:"gte=0,lte=1"`

	StudentsPerTeacher int     `validate:"gte=0"`
	TeacherSalary      float64 `validate:"gte=0"`
	AdminPerTeacher    float64 `validate:"gte=0"`
	AdminSalary        float64 `validate:"gte=0"`
	CPIRate            float64
	BaseYear           int
}

// RentConfig selects and parameterizes a rent model.
type RentConfig struct {
	Model    string `validate:"required,oneof=fixedEscalation revenueShare partnerYield"`
	BaseYear int

	BaseRent            float64 `validate:"gte=0"`
	EscalationRate      float64
	EscalationFrequency int `validate:"gte=0,lte=50"`

	RevenueShare float64 `validate:"gte=0,lte=1"`

	PartnerInvestment    float64 `validate:"gte=0"`
	YieldRate            float64
	YieldGrowthRate      float64
	YieldGrowthFrequency int `validate:"gte=0,lte=50"`
}

// CapExConfig configures the capital-asset subsystem for a scenario.
type CapExConfig struct {
	ExistingAssets []AssetConfig    `validate:"dive"`
	Categories     []CategoryConfig `validate:"dive"`
}

// AssetConfig is one fixed existing/new asset record.
type AssetConfig struct {
	Name           string  `validate:"required"`
	PurchaseYear   int     `validate:"required"`
	PurchaseAmount float64 `validate:"gte=0"`
	UsefulLife     int     `validate:"gte=1"`
	Method         string  `validate:"omitempty,oneof=straightLine decliningBalance"`
	DecliningRate  float64 `validate:"gte=0"`
}

// CategoryConfig is one virtual-asset category.
type CategoryConfig struct {
	Name                  string  `validate:"required"`
	StartYear             int     `validate:"required"`
	UsefulLife            int     `validate:"gte=1"`
	ReinvestmentFrequency int     `validate:"gte=0,lte=50"`
	ReinvestmentAmount    float64 `validate:"gte=0"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}
