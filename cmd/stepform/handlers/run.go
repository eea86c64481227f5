package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/imamik/stepform/internal/config"
	"github.com/imamik/stepform/internal/draft"
	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/ui/tui"
	"github.com/imamik/stepform/internal/wizard"
)

// ErrNotInteractive is returned when the wizard UI cannot be shown.
var ErrNotInteractive = errors.New("stdout is not a terminal; use --input to fill the form from a file")

// Factory function variables for run - can be replaced in tests.
var (
	// isInteractiveTTY reports whether stdout is a terminal.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// runTUI shows the interactive wizard.
	runTUI = tui.Run

	// stdin is read when --input is "-".
	stdin io.Reader = os.Stdin
)

// RunOptions holds the flags of the run command.
type RunOptions struct {
	ConfigPath string
	InputPath  string
	Ephemeral  bool
}

// Run fills in the form, either in the terminal UI or from an input file.
func Run(ctx context.Context, opts RunOptions) (err error) {
	sess, err := openSession(ctx, opts.ConfigPath, opts.Ephemeral)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	router := wizard.NewRouter()
	w := newWizard(sess, router)

	if _, err := w.Restore(ctx); err != nil {
		fmt.Println("Warning: the saved draft could not be read; starting with an empty form.")
	}

	if opts.InputPath != "" {
		return runInput(ctx, w, opts.InputPath)
	}

	if !isInteractiveTTY() {
		return ErrNotInteractive
	}

	receipt, err := runTUI(ctx, w, router)
	if err != nil {
		return err
	}
	if receipt == nil {
		if sess.cfg.Draft.Backend != config.BackendMemory {
			fmt.Println("Your answers are saved. Run 'stepform run' again to continue.")
		}
		return nil
	}
	fmt.Printf("Submitted. Reference: %s\n", receipt.ID)
	return nil
}

// newWizard assembles a wizard that autosaves into the session's store.
func newWizard(sess *session, router *wizard.Router) *wizard.Wizard {
	return wizard.New(
		wizard.WithStore(sess.store),
		wizard.WithObserver(draft.Autosave(sess.store, sess.logger.WithName("draft"), sess.recorder)),
		wizard.WithSubmitter(wizard.SimulatedSubmitter{Delay: sess.cfg.Submit.Delay}),
		wizard.WithNavigator(router),
		wizard.WithRecorder(sess.recorder),
		wizard.WithLogger(sess.logger.WithName("wizard")),
	)
}

// runInput drives the wizard with a record read from path: each step is
// validated in order and the form is submitted once all of them pass.
func runInput(ctx context.Context, w *wizard.Wizard, path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	w.Update(ctx, data)

	for !w.IsLast() {
		step := w.Step()
		if err := w.Advance(); err != nil {
			printStepErrors(step, w.Errors())
			return fmt.Errorf("%s is incomplete: %w", step.Name, err)
		}
		fmt.Printf("%s  %s: ok\n", step.ID, step.Name)
	}

	printSummary(w.Data())

	fmt.Println("Submitting...")
	receipt, err := w.Submit(ctx)
	if err != nil {
		return err
	}

	printThankYou(receipt)
	return nil
}

// readInput decodes a YAML or JSON record. A path of "-" reads stdin.
func readInput(path string) (form.Data, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		// #nosec G304
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return form.Data{}, fmt.Errorf("failed to read input: %w", err)
	}

	var data form.Data
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return form.Data{}, fmt.Errorf("failed to parse input: %w", err)
	}
	return data, nil
}

func printStepErrors(step wizard.Step, errs form.ValidationErrors) {
	fmt.Printf("%s  %s:\n", step.ID, step.Name)
	for _, fe := range errs {
		fmt.Printf("  %-16s %s\n", form.Label(fe.Field), fe.Message)
	}
}

func printSummary(data form.Data) {
	fmt.Println()
	fmt.Println("Confirmation")
	fmt.Println("------------")
	for _, f := range form.Fields {
		fmt.Printf("  %-16s %s\n", form.Label(f)+":", data.Get(f))
	}
	fmt.Println()
}

func printThankYou(receipt *wizard.Receipt) {
	fmt.Println()
	fmt.Println("Thank You!")
	fmt.Println()
	fmt.Println("Thank you for filling the form. We appreciate you taking the time to share your details.")
	fmt.Println()
	fmt.Printf("  Reference: %s\n", receipt.ID)
}
