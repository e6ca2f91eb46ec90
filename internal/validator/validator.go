// Package validator audits compiled descriptor sets for configuration
// mistakes before they reach a build pipeline.
package validator

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding describes one issue in a descriptor set.
type Finding struct {
	Severity        Severity
	DescriptorIndex int
	// FieldIndex is -1 for descriptor-level findings.
	FieldIndex int
	Message    string
}

func (f Finding) String() string {
	if f.FieldIndex < 0 {
		return fmt.Sprintf("[%s] descriptor %d: %s", f.Severity, f.DescriptorIndex, f.Message)
	}
	return fmt.Sprintf("[%s] descriptor %d, field %d: %s", f.Severity, f.DescriptorIndex, f.FieldIndex, f.Message)
}

// Audit inspects a descriptor set and reports findings in order.
// A missing predicate is an error (the attacher would refuse the whole set);
// inert or duplicated fields are warnings because the attacher tolerates them.
func Audit(descriptors []domain.Descriptor) []Finding {
	var findings []Finding

	for i, desc := range descriptors {
		if desc.Predicate == nil {
			findings = append(findings, Finding{
				Severity:        SeverityError,
				DescriptorIndex: i,
				FieldIndex:      -1,
				Message:         "missing predicate",
			})
		}

		seen := make(map[string]int)
		for j, field := range desc.Fields {
			if field.Name == "" && field.Getter == nil && field.Setter == nil {
				findings = append(findings, Finding{
					Severity:        SeverityWarning,
					DescriptorIndex: i,
					FieldIndex:      j,
					Message:         "field has no name, getter, or setter; it contributes no action",
				})
			}
			if field.Name != "" && field.Setter == nil {
				if prev, dup := seen[field.Name]; dup {
					findings = append(findings, Finding{
						Severity:        SeverityWarning,
						DescriptorIndex: i,
						FieldIndex:      j,
						Message:         fmt.Sprintf("field name %q already used by field %d; the later value wins", field.Name, prev),
					})
				}
				seen[field.Name] = j
			}
		}
	}
	return findings
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
