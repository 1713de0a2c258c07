package main

import (
	"github.com/posuniversal/pos-admin-service/internal/syslog/dto"
	"github.com/spf13/cobra"
)

func newLogCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect system logs",
	}

	var add dto.AddLogInput
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a log entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			printJSON((*a).logs.Add(cmd.Context(), &add))
			return nil
		},
	}
	addCmd.Flags().StringVar(&add.Type, "type", "", "log type, defaults to Info")
	addCmd.Flags().StringVar(&add.PageName, "page-name", "", "originating page")
	addCmd.Flags().StringVar(&add.FunctionName, "function-name", "", "originating function")
	addCmd.Flags().StringVar(&add.Message, "message", "", "log message")
	addCmd.Flags().StringVar(&add.Data, "data", "", "extra payload")
	addCmd.Flags().StringVar(&add.StackTrace, "stack-trace", "", "stack trace text")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			printJSON((*a).logs.Get(cmd.Context(), id))
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			printJSON((*a).logs.Delete(cmd.Context(), id))
			return nil
		},
	}

	var filters dto.LogFilters
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Search system logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if filters.PageSize == 0 {
				filters.PageSize = (*a).cfg.Paging.DefaultPageSize
			}
			printJSON((*a).logs.GetFiltered(cmd.Context(), &filters))
			return nil
		},
	}
	listCmd.Flags().StringVar(&filters.Type, "type", "", "log type: Error, Warning, Info or Debug")
	listCmd.Flags().StringVar(&filters.PageName, "page-name", "", "page name prefix")
	listCmd.Flags().IntVar(&filters.Page, "page", 1, "1-based page number")
	listCmd.Flags().IntVar(&filters.PageSize, "page-size", 0, "items per page")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all system log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			printJSON((*a).logs.Clear(cmd.Context()))
			return nil
		},
	}

	cmd.AddCommand(addCmd, getCmd, deleteCmd, listCmd, clearCmd)
	return cmd
}
