package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemakit/typemap/internal/resolver"
	"github.com/schemakit/typemap/internal/typemap"
)

// resolveFlags collects the raw flag values for the resolve command.
// Facet flags use sentinels so "unset" survives into the tri-state
// Description fields: -1 for sizes, and explicit --unicode=true/false for
// the encoding flags (cobra's Changed tracks whether they were given).
type resolveFlags struct {
	valueType  string
	storeType  string
	size       int
	precision  int
	scale      int
	unicode    bool
	fixed      bool
	key        bool
	rowversion bool
}

// MappingView is the JSON shape of a resolved mapping.
type MappingView struct {
	StoreType     string `json:"store_type"`
	StoreTypeBase string `json:"store_type_base"`
	ValueType     string `json:"value_type,omitempty"`
	Size          *int   `json:"size,omitempty"`
	Precision     *int   `json:"precision,omitempty"`
	Scale         *int   `json:"scale,omitempty"`
	Unicode       bool   `json:"unicode"`
	FixedLength   bool   `json:"fixed_length"`
}

// NewMappingView converts a StoreMapping for output.
func NewMappingView(m *typemap.StoreMapping) MappingView {
	view := MappingView{
		StoreType:     m.StoreType,
		StoreTypeBase: m.StoreTypeBase,
		Size:          m.Size,
		Precision:     m.Precision,
		Scale:         m.Scale,
		Unicode:       m.Unicode,
		FixedLength:   m.FixedLength,
	}
	if m.Tag != typemap.TagNone {
		view.ValueType = m.Tag.String()
	}
	return view
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a value description to a storage type mapping",
		Long: `Resolve a value description to a concrete SQL Server storage type mapping.

At least one of --type and --store-type must be given. A description the
engine has no specific answer for exits with code 1; that is the signal to
consult a fallback resolver, not an error in the description.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(rootOpts, flags, cmd)
		},
	}

	cmd.Flags().StringVar(&flags.valueType, "type", "", "language value type (int64, string, uuid, ...)")
	cmd.Flags().StringVar(&flags.storeType, "store-type", "", "requested store type name (nvarchar(450), bigint, ...)")
	cmd.Flags().IntVar(&flags.size, "size", -1, "requested size facet")
	cmd.Flags().IntVar(&flags.precision, "precision", -1, "requested precision facet")
	cmd.Flags().IntVar(&flags.scale, "scale", -1, "requested scale facet")
	cmd.Flags().BoolVar(&flags.unicode, "unicode", true, "wide-character text (pass --unicode=false for ANSI)")
	cmd.Flags().BoolVar(&flags.fixed, "fixed", false, "fixed-length representation")
	cmd.Flags().BoolVar(&flags.key, "key", false, "value participates in a key or index")
	cmd.Flags().BoolVar(&flags.rowversion, "rowversion", false, "value is a concurrency token")

	return cmd
}

func runResolve(opts *RootOptions, flags *resolveFlags, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	desc, err := descriptionFromFlags(flags, cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	r := resolver.New()
	m := r.Resolve(desc)
	if m == nil {
		msg := "no specific mapping; consult the fallback resolver"
		_ = formatter.Error(ErrCodeNoMapping, msg, nil)
		return NewExitError(ExitFailure, msg)
	}

	formatter.VerboseLog("resolved to %s", m.StoreType)

	if formatter.Format == "json" {
		return formatter.Success(NewMappingView(m))
	}
	fmt.Fprintln(formatter.Writer, renderMapping(m))
	return nil
}

// descriptionFromFlags builds the engine input from command line flags.
func descriptionFromFlags(flags *resolveFlags, cmd *cobra.Command) (resolver.Description, error) {
	var desc resolver.Description

	if flags.valueType == "" && flags.storeType == "" {
		return desc, fmt.Errorf("at least one of --type and --store-type is required")
	}

	if flags.valueType != "" {
		tag, err := typemap.ParseTag(flags.valueType)
		if err != nil {
			return desc, err
		}
		desc.Tag = tag
	}
	desc.StoreType = flags.storeType

	if flags.size >= 0 {
		size := flags.size
		desc.Size = &size
	}
	if flags.precision >= 0 {
		precision := flags.precision
		desc.Precision = &precision
	}
	if flags.scale >= 0 {
		scale := flags.scale
		desc.Scale = &scale
	}
	if cmd.Flags().Changed("unicode") {
		unicode := flags.unicode
		desc.Unicode = &unicode
	}
	if cmd.Flags().Changed("fixed") {
		fixed := flags.fixed
		desc.FixedLength = &fixed
	}
	desc.Key = flags.key
	desc.RowVersion = flags.rowversion

	return desc, nil
}

// renderMapping formats a mapping for text output.
func renderMapping(m *typemap.StoreMapping) string {
	s := m.StoreType
	if m.Tag != typemap.TagNone {
		s += fmt.Sprintf(" [%s]", m.Tag)
	}
	switch {
	case m.Unicode && m.FixedLength:
		s += " unicode fixed-length"
	case m.Unicode:
		s += " unicode"
	case m.FixedLength:
		s += " fixed-length"
	}
	return s
}
