package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepal/secreport/internal/models"
)

func TestTrivyLoader_Parse(t *testing.T) {
	l := NewTrivyLoader()

	tests := []struct {
		validate      func(t *testing.T, findings []models.Finding)
		name          string
		input         string
		expectedCount int
		wantErr       bool
	}{
		{
			name: "single SARIF result at level error",
			input: `{
				"runs": [
					{
						"results": [
							{
								"ruleId": "CVE-2023-12345",
								"level": "error",
								"message": {"text": "openssl: buffer overflow in X.509 parsing"},
								"locations": [
									{
										"physicalLocation": {
											"artifactLocation": {"uri": "usr/lib/libssl.so"}
										}
									}
								]
							}
						]
					}
				]
			}`,
			expectedCount: 1,
			validate: func(t *testing.T, findings []models.Finding) {
				t.Helper()
				f := findings[0]
				assert.Equal(t, "Trivy", f.Tool)
				assert.Equal(t, models.CategoryContainer, f.Category)
				// "error" is outside the four-value scale and defaults to MEDIUM.
				assert.Equal(t, models.SeverityMedium, f.Severity)
				assert.Equal(t, "openssl: buffer overflow in X.509 parsing", f.Title)
				assert.Equal(t, "CVE-2023-12345", f.Attributes["rule_id"])
				assert.Equal(t, "usr/lib/libssl.so", f.Attributes["location"])
			},
		},
		{
			name: "result with recognized severity text",
			input: `{
				"runs": [
					{"results": [{"ruleId": "CVE-2023-1", "level": "critical", "message": {"text": "bad"}}]}
				]
			}`,
			expectedCount: 1,
			validate: func(t *testing.T, findings []models.Finding) {
				t.Helper()
				assert.Equal(t, models.SeverityCritical, findings[0].Severity)
			},
		},
		{
			name: "missing message text becomes Unknown",
			input: `{
				"runs": [{"results": [{"ruleId": "CVE-2023-2", "level": "warning"}]}]
			}`,
			expectedCount: 1,
			validate: func(t *testing.T, findings []models.Finding) {
				t.Helper()
				assert.Equal(t, "Unknown", findings[0].Title)
				assert.Equal(t, "", findings[0].Attributes["location"])
			},
		},
		{
			name:          "multiple runs are flattened in order",
			input:         `{"runs": [{"results": [{"message": {"text": "first"}}]}, {"results": [{"message": {"text": "second"}}]}]}`,
			expectedCount: 2,
			validate: func(t *testing.T, findings []models.Finding) {
				t.Helper()
				assert.Equal(t, "first", findings[0].Title)
				assert.Equal(t, "second", findings[1].Title)
			},
		},
		{
			name:          "empty runs",
			input:         `{"runs": []}`,
			expectedCount: 0,
		},
		{
			name:    "malformed JSON",
			input:   `{"runs": [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, err := l.Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				var loadErr *Error
				require.ErrorAs(t, err, &loadErr)
				assert.Equal(t, "Trivy", loadErr.Tool)
				return
			}
			require.NoError(t, err)
			require.Len(t, findings, tt.expectedCount)
			if tt.validate != nil {
				tt.validate(t, findings)
			}
		})
	}
}

func TestTrivyLoader_Paths(t *testing.T) {
	assert.Equal(t, []string{"trivy-results.sarif"}, NewTrivyLoader().Paths())
}
