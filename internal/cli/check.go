package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemakit/typemap/internal/resolver"
)

// CheckResult is the JSON shape of one property's outcome.
type CheckResult struct {
	Property  string `json:"property"`
	StoreType string `json:"store_type,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

// CheckReport is the JSON envelope for a whole model file.
type CheckReport struct {
	File    string        `json:"file"`
	Checked int           `json:"checked"`
	Failed  int           `json:"failed"`
	Results []CheckResult `json:"results"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <model-file>",
		Short: "Resolve and validate every property of a YAML model file",
		Long: `Resolve every property of a YAML model file and validate the results.

Each property is resolved to a storage type mapping and the mapping is
checked for unqualified store type names. Properties the engine has no
specific mapping for are reported as deferred, not failed; an explicit
store type that only names a family (bare varchar, nchar, ...) fails.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	model, err := LoadModelFile(path)
	if err != nil {
		_ = formatter.Error(ErrCodeLoad, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading model", err)
	}

	r := resolver.New()
	report := CheckReport{File: path, Checked: len(model.Properties)}

	for _, p := range model.Properties {
		result := checkProperty(r, p)
		if result.Status == "failed" {
			report.Failed++
		}
		report.Results = append(report.Results, result)
		formatter.VerboseLog("%s: %s", p.Name, result.Status)
	}

	if formatter.Format == "json" {
		if report.Failed > 0 {
			if err := formatter.Success(report); err != nil {
				return err
			}
			return NewExitError(ExitFailure, fmt.Sprintf("%d of %d properties failed", report.Failed, report.Checked))
		}
		return formatter.Success(report)
	}

	for _, result := range report.Results {
		switch result.Status {
		case "ok":
			fmt.Fprintf(formatter.Writer, "ok       %s => %s\n", result.Property, result.StoreType)
		case "deferred":
			fmt.Fprintf(formatter.Writer, "deferred %s\n", result.Property)
		case "failed":
			fmt.Fprintf(formatter.Writer, "FAILED   %s: %s\n", result.Property, result.Message)
		}
	}
	fmt.Fprintf(formatter.Writer, "%d checked, %d failed\n", report.Checked, report.Failed)

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d properties failed", report.Failed, report.Checked))
	}
	return nil
}

func checkProperty(r *resolver.Resolver, p PropertySpec) CheckResult {
	desc, err := p.Description()
	if err != nil {
		return CheckResult{Property: p.Name, Status: "failed", Message: err.Error()}
	}

	m := r.Resolve(desc)
	if err := r.Validate(m, p.Name); err != nil {
		return CheckResult{Property: p.Name, Status: "failed", Message: err.Error()}
	}
	if m == nil {
		return CheckResult{Property: p.Name, Status: "deferred"}
	}
	return CheckResult{Property: p.Name, StoreType: m.StoreType, Status: "ok"}
}
