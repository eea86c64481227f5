// Package form declares the wizard's data record and its per-field rules.
//
// Data is a flat record of eight string fields. Every field has a Spec in
// the schema table: its label, placeholder and the Rule that decides whether
// a value is acceptable. ValidateFields checks an ordered subset of fields and
// reports failures as ValidationErrors, whose first entry is the field that
// should receive focus.
package form
