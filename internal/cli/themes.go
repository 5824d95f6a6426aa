package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newThemesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the registered colour themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLABEL\tPRIMARY\tSECONDARY\tACCENT")
			for _, th := range cfg.Themes.All() {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Primary)).Render("■")
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\n",
					th.Name, th.Label, swatch, th.Primary, th.Secondary, th.Accent)
			}
			return w.Flush()
		},
	}
}
