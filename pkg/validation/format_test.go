package validation

import (
	"testing"

	"github.com/edufin/proforma/pkg/constants"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{constants.OutputFormatPretty, false},
		{constants.OutputFormatCSV, false},
		{"json", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateOutputFormat(tt.format)
		if tt.wantErr && err == nil {
			t.Errorf("ValidateOutputFormat(%q) expected an error", tt.format)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", tt.format, err)
		}
	}
}
