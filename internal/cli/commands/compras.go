package commands

import (
	"fmt"

	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/shopping"
	"github.com/sevenplus-app/sevenplus-cli/internal/logger"
	"github.com/spf13/cobra"
)

// NewComprasCmd creates the compras command group
func NewComprasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compras",
		Short: "Manage the shopping lists (galpão, arca, escritório)",
	}

	cmd.AddCommand(newComprasLsCmd())
	cmd.AddCommand(newComprasAddCmd())
	cmd.AddCommand(newComprasDoneCmd())
	cmd.AddCommand(newComprasEditCmd())
	cmd.AddCommand(newComprasRmCmd())
	cmd.AddCommand(newComprasClearDoneCmd())

	return cmd
}

// openShopping gates the shopping screen and opens the local store.
// Callers must Close the store to flush pending writes.
func openShopping(cmd *cobra.Command, serverAlias string) (*shopping.Store, error) {
	if _, _, err := openScreen(cmd.Context(), serverAlias, access.ComprasPath); err != nil {
		return nil, err
	}

	path, err := shopping.DefaultPath()
	if err != nil {
		return nil, err
	}
	store, err := shopping.Open(path, logger.GetLogger())
	if err != nil {
		return nil, fmt.Errorf("failed to open shopping list: %w", err)
	}
	return store, nil
}

func parseLocFlag(loc string) (shopping.Location, error) {
	if loc == "" {
		return shopping.LocationGalpao, nil
	}
	return shopping.ParseLocation(loc)
}

func newComprasLsCmd() *cobra.Command {
	var serverAlias, loc string
	var all bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Show a shopping list",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openShopping(cmd, serverAlias)
			if err != nil {
				return err
			}
			defer store.Close()

			locations := []shopping.Location{shopping.LocationGalpao, shopping.LocationArca, shopping.LocationEscritorio}
			if !all {
				l, err := parseLocFlag(loc)
				if err != nil {
					return err
				}
				locations = []shopping.Location{l}
			}

			totals := store.Totals()
			for _, l := range locations {
				t := totals[l]
				fmt.Printf("== %s (%d/%d done)\n", l.Label(), t.Done, t.All)
				for _, item := range store.Items(l) {
					mark := " "
					if item.Done {
						mark = "x"
					}
					fmt.Printf("  [%s] %s  %s", mark, item.ID, item.Name)
					if item.Qty != "" {
						fmt.Printf("  (%s)", item.Qty)
					}
					fmt.Println()
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&loc, "loc", "", "List location: galpao, arca or escritorio (default galpao)")
	cmd.Flags().BoolVar(&all, "all", false, "Show all three lists")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func newComprasAddCmd() *cobra.Command {
	var serverAlias, loc, qty string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to a shopping list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseLocFlag(loc)
			if err != nil {
				return err
			}

			store, err := openShopping(cmd, serverAlias)
			if err != nil {
				return err
			}
			defer store.Close()

			name := args[0]
			for _, extra := range args[1:] {
				name += " " + extra
			}

			item, err := store.Add(l, name, qty)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Added %s to %s (id %s)\n", item.Name, l.Label(), item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&loc, "loc", "", "List location: galpao, arca or escritorio (default galpao)")
	cmd.Flags().StringVar(&qty, "qty", "", "Quantity, free text (e.g. \"2 caixas\")")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func newComprasDoneCmd() *cobra.Command {
	var serverAlias, loc string

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle an item between done and pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseLocFlag(loc)
			if err != nil {
				return err
			}

			store, err := openShopping(cmd, serverAlias)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Toggle(l, args[0]); err != nil {
				return err
			}
			fmt.Println("✓ Item updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&loc, "loc", "", "List location: galpao, arca or escritorio (default galpao)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func newComprasEditCmd() *cobra.Command {
	var serverAlias, loc, name, qty string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an item's name or quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && qty == "" {
				return fmt.Errorf("nothing to change: pass --name and/or --qty")
			}

			l, err := parseLocFlag(loc)
			if err != nil {
				return err
			}

			store, err := openShopping(cmd, serverAlias)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Edit(l, args[0], name, qty); err != nil {
				return err
			}
			fmt.Println("✓ Item updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New item name")
	cmd.Flags().StringVar(&qty, "qty", "", "New quantity")
	cmd.Flags().StringVar(&loc, "loc", "", "List location: galpao, arca or escritorio (default galpao)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func newComprasRmCmd() *cobra.Command {
	var serverAlias, loc string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an item from a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseLocFlag(loc)
			if err != nil {
				return err
			}

			store, err := openShopping(cmd, serverAlias)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Remove(l, args[0]); err != nil {
				return err
			}
			fmt.Println("✓ Item removed")
			return nil
		},
	}

	cmd.Flags().StringVar(&loc, "loc", "", "List location: galpao, arca or escritorio (default galpao)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func newComprasClearDoneCmd() *cobra.Command {
	var serverAlias, loc string

	cmd := &cobra.Command{
		Use:   "clear-done",
		Short: "Remove all completed items from a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseLocFlag(loc)
			if err != nil {
				return err
			}

			store, err := openShopping(cmd, serverAlias)
			if err != nil {
				return err
			}
			defer store.Close()

			removed := store.ClearDone(l)
			fmt.Printf("✓ Removed %d completed item(s) from %s\n", removed, l.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&loc, "loc", "", "List location: galpao, arca or escritorio (default galpao)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}
