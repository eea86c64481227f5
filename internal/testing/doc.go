// Package testing provides test utilities, builders, and fixtures for unit and integration tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - DataBuilder: Fluent builder for form records
//   - WizardFixture: A wizard wired to an in-memory draft store with autosave
//
// Usage:
//
//	data := testutil.NewDataBuilder().
//	    Without(form.FieldEmail).
//	    Build()
//
//	fx := testutil.NewWizardFixture(t)
//	fx.Wizard.Update(ctx, data)
package testing
