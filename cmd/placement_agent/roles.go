package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles in the catalogue",
	RunE:  runRoles,
}

var rolesPath string

func init() {
	rolesCmd.Flags().StringVar(&rolesPath, "roles", "", "Path to role catalogue JSON (embedded default when empty)")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(_ *cobra.Command, _ []string) error {
	_, cat, err := loadCatalogues("", rolesPath)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROLE\tREQUIRED\tMIN CGPA\tDSA WEIGHT")
	for _, role := range cat.Roles() {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.2f\n",
			role.Name, len(role.FlattenedRequirements()), role.MinCGPA, role.DSAWeight)
	}
	return w.Flush()
}
