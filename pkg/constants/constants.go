// Package constants provides shared constants for the proforma application.
package constants

// Model shape constants.
const (
	// HistoricalYears is the number of recorded actual years opening the chain.
	HistoricalYears = 2

	// TransitionYears is the length of the manually-adjusted transition band.
	TransitionYears = 3

	// DefaultProjectionYears is the default total chain length.
	DefaultProjectionYears = 30
)

// Output format constants.
const (
	// OutputFormatPretty is the human-readable output format.
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format.
	OutputFormatCSV = "csv"
)

// Configuration file constants.
const (
	// DefaultConfigFile is the default model configuration file name.
	DefaultConfigFile = "model.yaml"
)
