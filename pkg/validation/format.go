// Package validation checks computed statements for internal consistency:
// per-statement recomputation, cross-statement identities, and
// period-to-period linkage. Findings are diagnostics, never errors; the
// caller decides whether to reject a period.
package validation

import (
	"fmt"

	"github.com/edufin/proforma/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}
