package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"liyu1981.xyz/battery-tracking-service/pkg/models"
	"liyu1981.xyz/battery-tracking-service/pkg/report"
	"liyu1981.xyz/battery-tracking-service/pkg/ui"
)

func dashboardCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show inventory totals and the batteries needing charge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.App()
			if err != nil {
				return err
			}

			dashboard, err := app.Inventory.Dashboard()
			if err != nil {
				return err
			}
			batteries, err := app.Inventory.Battery.List()
			if err != nil {
				return err
			}

			u := ui.New(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, u.Table(
				[]string{"TOTAL", "ACTIVE", "LOW VOLTAGE", "CRITICAL"},
				[][]string{{
					strconv.Itoa(dashboard.Total),
					strconv.Itoa(dashboard.Active),
					strconv.Itoa(dashboard.LowVoltage),
					strconv.Itoa(dashboard.Critical),
				}},
			))

			critical := report.Critical(batteries)
			if len(critical) == 0 {
				fmt.Fprintln(out, u.Dim("No batteries need charging."))
				return nil
			}
			fmt.Fprintln(out, u.Bold("Batteries needing charge:"))
			fmt.Fprintln(out, batteryTable(u, critical, app.Inventory.Now()))
			return nil
		},
	}
}

func exportCommand(ctx *Context) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the inventory as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.App()
			if err != nil {
				return err
			}

			batteries, err := app.Inventory.Battery.List()
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return report.WriteCSV(cmd.OutOrStdout(), batteries)
			}

			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := report.WriteCSV(f, batteries); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d batteries to %s\n", len(batteries), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func notifyCommand(ctx *Context) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send the status report to all stakeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.App()
			if err != nil {
				return err
			}

			batteries, err := app.Inventory.Battery.List()
			if err != nil {
				return err
			}
			stakeholders, err := app.Inventory.Stakeholder.List()
			if err != nil {
				return err
			}

			dashboard := models.Summarize(batteries)
			body := report.Summary(&dashboard, report.Critical(batteries))

			result, err := app.Notifier.SendReport(stakeholders, subject, body)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Simulated {
				fmt.Fprintln(out, "No notification URL configured, report not delivered. It would have gone to:")
			} else {
				fmt.Fprintln(out, "Report sent to:")
			}
			fmt.Fprintln(out, "  "+strings.Join(result.Recipients, "\n  "))
			if result.Simulated {
				fmt.Fprint(out, "\n"+body)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "Battery status report", "Report subject")

	return cmd
}
