package recipe

// Validated is a composable predicate outcome, combined with And the
// way original_source's UpgradeDependencyVersion.validate() composes
// super.validate().and(DependencyMatcher.build(...)): both sides'
// errors are collected even once one side is already invalid, so a
// caller sees every configuration problem at once rather than one at
// a time across repeated runs.
type Validated struct {
	valid  bool
	errors []error
}

// Valid returns a Validated with no errors.
func Valid() Validated { return Validated{valid: true} }

// Invalid returns a Validated carrying one error.
func Invalid(err error) Validated { return Validated{valid: false, errors: []error{err}} }

// IsValid reports whether validation passed.
func (v Validated) IsValid() bool { return v.valid }

// Errors lists every validation failure collected so far.
func (v Validated) Errors() []error { return v.errors }

// And composes v with o: the result is valid only if both are, and
// carries every error from both sides regardless.
func (v Validated) And(o Validated) Validated {
	errs := make([]error, 0, len(v.errors)+len(o.errors))
	errs = append(errs, v.errors...)
	errs = append(errs, o.errors...)
	return Validated{valid: v.valid && o.valid, errors: errs}
}
