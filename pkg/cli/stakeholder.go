package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/ui"
)

func stakeholderCommand(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stakeholder",
		Short: "Manage report recipients",
	}

	cmd.AddCommand(
		stakeholderAddCommand(ctx),
		stakeholderUpdateCommand(ctx),
		stakeholderDeleteCommand(ctx),
		stakeholderListCommand(ctx),
	)

	return cmd
}

func stakeholderAddCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <email>",
		Short: "Add a stakeholder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.App()
			if err != nil {
				return err
			}

			stakeholder, err := app.Inventory.Stakeholder.Add(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added stakeholder %s <%s> as #%d\n", stakeholder.Name, stakeholder.Email, stakeholder.ID)
			return nil
		},
	}
}

func stakeholderUpdateCommand(ctx *Context) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a stakeholder's name or email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var namePtr, emailPtr *string
			if cmd.Flags().Changed("name") {
				namePtr = &name
			}
			if cmd.Flags().Changed("email") {
				emailPtr = &email
			}

			app, err := ctx.App()
			if err != nil {
				return err
			}

			stakeholder, err := app.Inventory.Stakeholder.Update(id, namePtr, emailPtr)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stakeholder #%d is now %s <%s>\n", stakeholder.ID, stakeholder.Name, stakeholder.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&email, "email", "", "New email")

	return cmd
}

func stakeholderDeleteCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a stakeholder",
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

			removed, err := app.Inventory.Stakeholder.Delete(id)
			if err != nil {
				return err
			}
			if !removed {
				return errs.NotFound("stakeholder", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted stakeholder #%d\n", id)
			return nil
		},
	}
}

func stakeholderListCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stakeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.App()
			if err != nil {
				return err
			}

			stakeholders, err := app.Inventory.Stakeholder.List()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(stakeholders))
			for _, s := range stakeholders {
				rows = append(rows, []string{strconv.Itoa(s.ID), s.Name, s.Email})
			}

			u := ui.New(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), u.Table([]string{"ID", "NAME", "EMAIL"}, rows))
			return nil
		},
	}
}
