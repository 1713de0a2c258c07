package main

import (
	"strconv"

	"github.com/posuniversal/pos-admin-service/internal/masterattr/dto"
	"github.com/spf13/cobra"
)

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func newAttributeCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attribute",
		Short: "Manage master product attributes",
	}

	var addName string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a master attribute",
		RunE: func(cmd *cobra.Command, args []string) error {
			printJSON((*a).attributes.Add(cmd.Context(), &dto.AddAttributeInput{Name: addName}))
			return nil
		},
	}
	addCmd.Flags().StringVar(&addName, "name", "", "attribute name (required)")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one master attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			printJSON((*a).attributes.Get(cmd.Context(), id))
			return nil
		},
	}

	var filters dto.AttributeFilters
	var listAll bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Search master attributes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if listAll {
				if filters.ActiveFilter == "true" {
					printJSON((*a).attributes.GetAllActive(cmd.Context()))
				} else {
					printJSON((*a).attributes.GetAll(cmd.Context()))
				}
				return nil
			}
			if filters.PageSize == 0 {
				filters.PageSize = 10
			}
			printJSON((*a).attributes.GetFiltered(cmd.Context(), &filters))
			return nil
		},
	}
	listCmd.Flags().BoolVar(&listAll, "all", false, "list every attribute without paging")
	listCmd.Flags().StringVar(&filters.SearchTerm, "search", "", "name prefix")
	listCmd.Flags().StringVar(&filters.ActiveFilter, "active", "", `"true" or "false"`)
	listCmd.Flags().IntVar(&filters.Page, "page", 1, "1-based page number")
	listCmd.Flags().IntVar(&filters.PageSize, "page-size", 0, "items per page")

	var updName, updActive string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a master attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			printJSON((*a).attributes.Update(cmd.Context(), &dto.UpdateAttributeInput{
				ID:       id,
				Name:     updName,
				IsActive: updActive != "false",
			}))
			return nil
		},
	}
	updateCmd.Flags().StringVar(&updName, "name", "", "attribute name")
	updateCmd.Flags().StringVar(&updActive, "active", "true", `"true" or "false"`)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a master attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			printJSON((*a).attributes.Delete(cmd.Context(), id))
			return nil
		},
	}

	cmd.AddCommand(addCmd, getCmd, listCmd, updateCmd, deleteCmd)
	return cmd
}
