package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"
)

var (
	ErrEmptyInput = errors.New("input is empty")
	ErrNullInput  = errors.New("input must not be null")
)

// readInput decodes the JSON input into v, which must be a pointer to a
// slice or to a pointer.
func readInput(cmd *cobra.Command, flags *Flags, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if flags.Input != "" && flags.Input != "-" {
		f, err := os.Open(flags.Input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyInput
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	if reflect.ValueOf(v).Elem().IsNil() {
		return ErrNullInput
	}
	return nil
}

func writeOutput(cmd *cobra.Command, flags *Flags, v any) error {
	var (
		data []byte
		err  error
	)
	if flags.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	data = append(data, '\n')

	if flags.Output == "" || flags.Output == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(flags.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
