package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemakit/typemap/internal/resolver"
)

// CatalogEntryView is the JSON shape of one catalog listing row.
type CatalogEntryView struct {
	Name      string `json:"name"`
	StoreType string `json:"store_type"`
	ValueType string `json:"value_type"`
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "List every registered store type name and its mapping",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(rootOpts, cmd)
		},
	}
	return cmd
}

func runCatalog(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	c := resolver.New().Catalog()

	if formatter.Format == "json" {
		names := c.Names()
		entries := make([]CatalogEntryView, 0, len(names))
		for _, name := range names {
			m, ok := c.LookupByName(name)
			if !ok {
				continue
			}
			entries = append(entries, CatalogEntryView{
				Name:      name,
				StoreType: m.StoreType,
				ValueType: m.Tag.String(),
			})
		}
		return formatter.Success(entries)
	}

	fmt.Fprint(formatter.Writer, c.Listing())
	return nil
}
