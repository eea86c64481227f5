package wizard

import "github.com/imamik/stepform/internal/form"

// Step is one page of the wizard and the fields validated before leaving it.
type Step struct {
	ID          string
	Name        string
	Description string
	Fields      []form.Field
}

// Confirms reports whether the step only displays the collected values.
func (s Step) Confirms() bool {
	return len(s.Fields) == 0
}

// DefaultSteps maps each step index to the fields it validates.
// Address Line 2 belongs to step 1 but has no rule, so it always passes.
var DefaultSteps = []Step{
	{
		ID:          "Step 1",
		Name:        "Personal Information",
		Description: "Provide your personal details.",
		Fields:      []form.Field{form.FieldName, form.FieldEmail, form.FieldPhone},
	},
	{
		ID:          "Step 2",
		Name:        "Address Information",
		Description: "Provide your address details.",
		Fields: []form.Field{
			form.FieldAddress1,
			form.FieldAddress2,
			form.FieldCity,
			form.FieldState,
			form.FieldZip,
		},
	},
	{
		ID:          "Step 3",
		Name:        "Confirmation",
		Description: "Confirm your details before submitting.",
	},
}
