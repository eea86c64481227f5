// Package wizard holds the navigation state of the multi-step form.
//
// A Wizard owns the form record, the current and previous step indices and
// the submitting flag. Advance validates exactly the current step's fields
// before moving on, Retreat moves back, and Submit runs the final
// submission: it suspends change observers for its whole duration, waits on
// a Submitter, clears the draft, resets the record and navigates to the
// thank-you route.
//
// Change observers (autosave) run after every Set or Update unless a
// submission is in progress.
package wizard
