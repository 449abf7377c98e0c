package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
	"liyu1981.xyz/battery-tracking-service/pkg/ui"
)

func scanCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <id-or-product-number>",
		Short: "Look up a battery by id, falling back to product number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.App()
			if err != nil {
				return err
			}

			battery, err := app.Inventory.Battery.Scan(args[0])
			if err != nil {
				return err
			}
			if battery == nil {
				return fmt.Errorf("no battery matches %q", args[0])
			}

			u := ui.New(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), batteryDetail(u, battery, app.Inventory.Now()))
			return nil
		},
	}
}

func addCommand(ctx *Context) *cobra.Command {
	var packingMonth string
	var voltage string

	cmd := &cobra.Command{
		Use:   "add <product-number>",
		Short: "Register a new battery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.App()
			if err != nil {
				return err
			}

			initialVoltage, err := common.ParseOptionalFloat(voltage)
			if err != nil {
				return errs.Validation("voltage", fmt.Sprintf("must be a number, got %q", voltage))
			}
			var month *string
			if cmd.Flags().Changed("packing-month") {
				month = &packingMonth
			}

			battery, err := app.Inventory.Battery.Add(args[0], month, initialVoltage)
			if err != nil {
				return err
			}

			common.GetLoggerWith(common.LoggerNameCli).Info("Battery added", zap.Int("id", battery.ID))
			u := ui.New(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "Added battery %s as #%d\n", u.Bold(battery.ProductNumber), battery.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&packingMonth, "packing-month", "", "Packing month, e.g. 2024-01")
	cmd.Flags().StringVar(&voltage, "voltage", "", "Initial voltage reading")

	return cmd
}

func updateVoltageCommand(ctx *Context) *cobra.Command {
	var checkedBy string
	var notes string
	var during string

	cmd := &cobra.Command{
		Use:   "update-voltage <id> <reading>",
		Short: "Record a voltage check",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			reading, err := parseVoltage("reading", args[1])
			if err != nil {
				return err
			}
			duringCheck, err := common.ParseOptionalFloat(during)
			if err != nil {
				return errs.Validation("during", fmt.Sprintf("must be a number, got %q", during))
			}

			app, err := ctx.App()
			if err != nil {
				return err
			}

			input := &models.VoltageUpdate{
				Reading:            reading,
				CheckedBy:          checkedBy,
				VoltageDuringCheck: duringCheck,
			}
			if cmd.Flags().Changed("notes") {
				input.Notes = &notes
			}

			battery, err := app.Inventory.Battery.UpdateVoltage(id, input)
			if err != nil {
				return err
			}

			u := ui.New(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "Battery #%d now at %s %s (%d checks)\n",
				battery.ID, formatVoltage(battery.CurrentVoltage), u.Status(battery.Color()), battery.TotalChecks)
			return nil
		},
	}

	cmd.Flags().StringVar(&checkedBy, "by", "", "Who took the reading (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free text notes")
	cmd.Flags().StringVar(&during, "during", "", "Voltage measured under load during the check")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func handoverCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "handover <id> <status>",
		Short: "Move a battery to SPD or production",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := ctx.App()
			if err != nil {
				return err
			}

			battery, err := app.Inventory.Battery.Handover(id, models.BatteryStatus(args[1]))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Battery #%d handed over to %s\n", battery.ID, battery.Status)
			return nil
		},
	}
}

func deleteCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a battery (its check history is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := ctx.App()
			if err != nil {
				return err
			}

			removed, err := app.Inventory.Battery.Delete(id)
			if err != nil {
				return err
			}
			if !removed {
				return errs.NotFound("battery", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted battery #%d\n", id)
			return nil
		},
	}
}

func listCommand(ctx *Context) *cobra.Command {
	var filter models.BatteryFilter
	var voltageMin, voltageMax string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List batteries, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if filter.VoltageMin, err = common.ParseOptionalFloat(voltageMin); err != nil {
				return errs.Validation("min", fmt.Sprintf("must be a number, got %q", voltageMin))
			}
			if filter.VoltageMax, err = common.ParseOptionalFloat(voltageMax); err != nil {
				return errs.Validation("max", fmt.Sprintf("must be a number, got %q", voltageMax))
			}

			app, err := ctx.App()
			if err != nil {
				return err
			}

			batteries, err := app.Inventory.Battery.Filter(&filter)
			if err != nil {
				return err
			}

			u := ui.New(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, batteryTable(u, batteries, app.Inventory.Now()))

			counts := models.CountColors(batteries)
			fmt.Fprintf(out, "%d batteries: %d %s, %d %s, %d %s, %d %s\n", len(batteries),
				counts.Green, u.Status(models.StatusColorGreen),
				counts.Yellow, u.Status(models.StatusColorYellow),
				counts.Red, u.Status(models.StatusColorRed),
				counts.Gray, u.Status(models.StatusColorGray))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.ProductQuery, "product", "", "Case-insensitive product number substring")
	cmd.Flags().StringVar(&filter.Status, "status", "", "Exact status, e.g. active, SPD, production")
	cmd.Flags().StringVar(&voltageMin, "min", "", "Minimum voltage (inclusive)")
	cmd.Flags().StringVar(&voltageMax, "max", "", "Maximum voltage (inclusive)")

	return cmd
}

func checksCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "checks <battery-id>",
		Short: "Show the voltage check history of a battery, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := ctx.App()
			if err != nil {
				return err
			}

			checks, err := app.Inventory.Battery.Checks(id)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(checks))
			for _, c := range checks {
				notes := ""
				if c.Notes != nil {
					notes = *c.Notes
				}
				rows = append(rows, []string{
					formatDate(&c.CheckedAt),
					formatVoltage(&c.VoltageReading),
					formatVoltage(c.VoltageDuringCheck),
					c.CheckedBy,
					orDash(notes),
				})
			}

			u := ui.New(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), u.Table([]string{"CHECKED AT", "READING", "DURING CHECK", "BY", "NOTES"}, rows))
			return nil
		},
	}
}
