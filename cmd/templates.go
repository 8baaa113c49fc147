package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"recruitmail/internal/templates"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect the compiled-in email templates",
	}
	cmd.AddCommand(newTemplatesListCmd(), newTemplatesRenderCmd())
	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the template catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := templates.Default()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSUBJECT")
			for _, s := range reg.List() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.DisplayName, s.Subject)
			}
			return tw.Flush()
		},
	}
}

func newTemplatesRenderCmd() *cobra.Command {
	var vars []string
	var strict bool
	cmd := &cobra.Command{
		Use:   "render <template-id>",
		Short: "Render a template with --var name=value pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := templates.Default()
			if err != nil {
				return err
			}
			t, err := reg.Get(args[0])
			if err != nil {
				return err
			}
			values, err := parseVars(vars)
			if err != nil {
				return err
			}
			out := templates.Render(t, values)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Subject: %s\n\n%s", out.Subject, out.Body)
			if !out.Complete() {
				fmt.Fprintf(cmd.ErrOrStderr(), "unresolved: %s\n", strings.Join(out.Unresolved, ", "))
				if strict {
					return fmt.Errorf("%d unresolved placeholders", len(out.Unresolved))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "variable as name=value (repeatable)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when placeholders remain unresolved")
	return cmd
}

func parseVars(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q, want name=value", p)
		}
		out[name] = value
	}
	return out, nil
}
