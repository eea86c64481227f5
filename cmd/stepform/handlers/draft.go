package handlers

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DraftShow prints the saved draft as YAML.
func DraftShow(ctx context.Context, configPath string) (err error) {
	sess, err := openSession(ctx, configPath, false)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	data, found, err := sess.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}
	if !found {
		fmt.Println("No saved draft.")
		return nil
	}

	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// DraftClear removes the saved draft.
func DraftClear(ctx context.Context, configPath string) (err error) {
	sess, err := openSession(ctx, configPath, false)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := sess.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	fmt.Println("Draft cleared.")
	return nil
}
