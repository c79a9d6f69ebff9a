package fabric

import "fmt"

// ValidationSeverity indicates whether a validation finding blocks
// assembly or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks assembly
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding. Interval is
// the interval's sequence index, Joint the joint's source index; a
// value of -1 means the finding is not tied to that kind of element.
type ValidationError struct {
	Interval int
	Joint    int
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	switch {
	case e.Interval >= 0:
		return fmt.Sprintf("[%s] interval %d: %s", e.Severity, e.Interval, e.Message)
	case e.Joint >= 0:
		return fmt.Sprintf("[%s] joint %d: %s", e.Severity, e.Joint, e.Message)
	default:
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Interval int
	Joint    int
	Message  string
}

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Validate runs the blocking checks on a loaded fabric and returns a
// slice of validation errors. An empty slice means the fabric can be
// assembled. The function is read-only and never mutates the fabric.
func Validate(f *Fabric) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateEndpoints(f)...)
	errs = append(errs, validateSpans(f)...)
	errs = append(errs, validateStiffness(f)...)
	return errs
}

// ValidateAll runs blocking checks plus advisory checks and returns a
// ValidationResult with the two separated.
func ValidateAll(f *Fabric) ValidationResult {
	result := ValidationResult{Errors: Validate(f)}
	result.Warnings = append(result.Warnings, warnUnknownRoles(f)...)
	result.Warnings = append(result.Warnings, warnUnconnectedJoints(f)...)
	return result
}

// validateEndpoints checks that every interval connects two distinct
// joints and that both endpoints belong to the fabric's joint set.
func validateEndpoints(f *Fabric) []ValidationError {
	var errs []ValidationError

	for _, iv := range f.Intervals {
		if iv.Alpha == nil || iv.Omega == nil {
			errs = append(errs, ValidationError{
				Interval: iv.Index,
				Joint:    -1,
				Message:  "interval has an unresolved endpoint",
				Severity: SeverityError,
			})
			continue
		}
		if iv.Alpha.Index == iv.Omega.Index {
			errs = append(errs, ValidationError{
				Interval: iv.Index,
				Joint:    -1,
				Message:  fmt.Sprintf("both endpoints reference joint %d", iv.Alpha.Index),
				Severity: SeverityError,
			})
		}
		for _, j := range []*Joint{iv.Alpha, iv.Omega} {
			if got, ok := f.Joint(j.Index); !ok || got != j {
				errs = append(errs, ValidationError{
					Interval: iv.Index,
					Joint:    j.Index,
					Message:  fmt.Sprintf("endpoint joint %d is not part of this fabric", j.Index),
					Severity: SeverityError,
				})
			}
		}
	}

	return errs
}

// validateSpans checks for coincident endpoint locations. A zero span
// has no direction, so placement would be undefined.
func validateSpans(f *Fabric) []ValidationError {
	var errs []ValidationError

	for _, iv := range f.Intervals {
		if iv.Alpha == nil || iv.Omega == nil {
			continue // reported by validateEndpoints
		}
		if iv.Span().Length() == 0 {
			errs = append(errs, ValidationError{
				Interval: iv.Index,
				Joint:    -1,
				Message: fmt.Sprintf("joints %d and %d are coincident (zero span)",
					iv.Alpha.Index, iv.Omega.Index),
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// validateStiffness checks that stiffness is positive. The visual
// diameter is derived from sqrt(stiffness), so zero or negative values
// would collapse or corrupt the cross-section scale.
func validateStiffness(f *Fabric) []ValidationError {
	var errs []ValidationError

	for _, iv := range f.Intervals {
		if iv.Stiffness <= 0 {
			errs = append(errs, ValidationError{
				Interval: iv.Index,
				Joint:    -1,
				Message:  fmt.Sprintf("stiffness is %v, must be positive", iv.Stiffness),
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// warnUnknownRoles flags role tags outside the known set.
func warnUnknownRoles(f *Fabric) []ValidationWarning {
	var warnings []ValidationWarning

	for _, iv := range f.Intervals {
		if !KnownRoles[iv.Role] {
			warnings = append(warnings, ValidationWarning{
				Interval: iv.Index,
				Joint:    -1,
				Message:  fmt.Sprintf("unknown role %q", iv.Role),
			})
		}
	}

	return warnings
}

// warnUnconnectedJoints flags joints no interval references.
func warnUnconnectedJoints(f *Fabric) []ValidationWarning {
	connected := make(map[int]bool, len(f.Joints))
	for _, iv := range f.Intervals {
		if iv.Alpha != nil {
			connected[iv.Alpha.Index] = true
		}
		if iv.Omega != nil {
			connected[iv.Omega.Index] = true
		}
	}

	var warnings []ValidationWarning
	for _, j := range f.Joints {
		if !connected[j.Index] {
			warnings = append(warnings, ValidationWarning{
				Interval: -1,
				Joint:    j.Index,
				Message:  "joint is not referenced by any interval",
			})
		}
	}

	return warnings
}
