package main

import (
	"fmt"
	"strings"

	"github.com/posuniversal/pos-admin-service/internal/product/dto"
	"github.com/spf13/cobra"
)

func newProductCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}
	cmd.AddCommand(
		newProductAddCmd(a),
		newProductGetCmd(a),
		newProductListCmd(a),
		newProductUpdateCmd(a),
		newProductDeleteCmd(a),
		newProductSetAttributesCmd(a),
		newProductSetImagesCmd(a),
	)
	return cmd
}

func addProductFieldFlags(cmd *cobra.Command, input *dto.CreateProductInput) {
	cmd.Flags().StringVar(&input.SKU, "sku", "", "internal SKU (required)")
	cmd.Flags().StringVar(&input.Barcode, "barcode", "", "EAN/UPC barcode")
	cmd.Flags().StringVar(&input.Name, "name", "", "product name (required)")
	cmd.Flags().Float64Var(&input.CostPrice, "cost-price", 0, "cost price")
	cmd.Flags().Float64Var(&input.SellingPrice, "selling-price", 0, "selling price")
	cmd.Flags().Float64Var(&input.TaxRate, "tax-rate", 0, "tax rate, e.g. 0.10")
	cmd.Flags().Int64Var(&input.Stock, "stock", 0, "stock on hand")
	cmd.Flags().Int64Var(&input.ReorderLevel, "reorder-level", 0, "reorder alert level")
	cmd.Flags().StringVar(&input.Unit, "unit", "", "stock unit")
}

func newProductAddCmd(a **app) *cobra.Command {
	var input dto.CreateProductInput
	var keywords, descriptions []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product; its code is generated from name and sku",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env := (*a).products.Create(ctx, &input)
			printJSON(env)
			if !env.Success {
				return nil
			}
			if len(keywords) > 0 {
				printJSON((*a).products.SaveKeywords(ctx, env.Data.ID, keywords))
			}
			if len(descriptions) > 0 {
				printJSON((*a).products.SaveDescriptions(ctx, env.Data.ID, descriptions))
			}
			return nil
		},
	}
	addProductFieldFlags(cmd, &input)
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "search keyword (repeatable)")
	cmd.Flags().StringArrayVar(&descriptions, "description", nil, "long description (repeatable)")
	return cmd
}

func newProductGetCmd(a **app) *cobra.Command {
	var withChildren bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			printJSON((*a).products.Get(ctx, id))
			if withChildren {
				printJSON((*a).products.ListAttributes(ctx, id))
				printJSON((*a).products.ListImages(ctx, id))
				printJSON((*a).products.ListDescriptions(ctx, id))
				printJSON((*a).products.ListKeywords(ctx, id))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withChildren, "children", false, "include attribute, image, description and keyword rows")
	return cmd
}

func newProductListCmd(a **app) *cobra.Command {
	var filters dto.ProductFilters
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search products with filters and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			if filters.PageSize == 0 {
				filters.PageSize = (*a).cfg.Paging.DefaultPageSize
			}
			printJSON((*a).products.List(cmd.Context(), &filters))
			return nil
		},
	}
	cmd.Flags().StringVar(&filters.Code, "code", "", "filter by code substring")
	cmd.Flags().StringVar(&filters.SKU, "sku", "", "filter by sku substring")
	cmd.Flags().StringVar(&filters.Barcode, "barcode", "", "filter by barcode substring")
	cmd.Flags().StringVar(&filters.Name, "name", "", "filter by name substring")
	cmd.Flags().StringVar(&filters.IsActive, "active", "", `filter by state: "true" or "false"`)
	cmd.Flags().BoolVar(&filters.LowStock, "low-stock", false, "only products at or below their reorder level")
	cmd.Flags().IntVar(&filters.Page, "page", 1, "1-based page number")
	cmd.Flags().IntVar(&filters.PageSize, "page-size", 0, "items per page")
	return cmd
}

func newProductUpdateCmd(a **app) *cobra.Command {
	var input dto.CreateProductInput
	var active string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product; its stored code cannot be changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			// Only flags the operator actually set are written; everything
			// else keeps its stored value.
			update := &dto.UpdateProductInput{ID: id}
			fl := cmd.Flags()
			if fl.Changed("sku") {
				update.SKU = &input.SKU
			}
			if fl.Changed("barcode") {
				update.Barcode = &input.Barcode
			}
			if fl.Changed("name") {
				update.Name = &input.Name
			}
			if fl.Changed("cost-price") {
				update.CostPrice = &input.CostPrice
			}
			if fl.Changed("selling-price") {
				update.SellingPrice = &input.SellingPrice
			}
			if fl.Changed("tax-rate") {
				update.TaxRate = &input.TaxRate
			}
			if fl.Changed("stock") {
				update.Stock = &input.Stock
			}
			if fl.Changed("reorder-level") {
				update.ReorderLevel = &input.ReorderLevel
			}
			if fl.Changed("unit") {
				update.Unit = &input.Unit
			}
			if fl.Changed("active") {
				isActive := !strings.EqualFold(active, "false")
				update.IsActive = &isActive
			}
			printJSON((*a).products.Update(cmd.Context(), update))
			return nil
		},
	}
	addProductFieldFlags(cmd, &input)
	cmd.Flags().StringVar(&active, "active", "true", `"true" or "false"`)
	return cmd
}

func newProductSetAttributesCmd(a **app) *cobra.Command {
	var pairs []string
	cmd := &cobra.Command{
		Use:   "set-attributes <id>",
		Short: "Replace a product's attribute rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rows := make([]dto.AttributeRow, 0, len(pairs))
			for _, pair := range pairs {
				attrID, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q, expected <attribute-id>=<value>", pair)
				}
				aid, err := parseID(attrID)
				if err != nil {
					return fmt.Errorf("invalid attribute id in --set %q", pair)
				}
				rows = append(rows, dto.AttributeRow{AttributeID: aid, Value: value})
			}
			printJSON((*a).products.SaveAttributes(cmd.Context(), id, rows))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&pairs, "set", nil, "<attribute-id>=<value> (repeatable; omit to clear all)")
	return cmd
}

func newProductSetImagesCmd(a **app) *cobra.Command {
	var urls, titles, descriptions []string
	cmd := &cobra.Command{
		Use:   "set-images <id>",
		Short: "Replace a product's image rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rows := make([]dto.ImageRow, 0, len(urls))
			for i, url := range urls {
				row := dto.ImageRow{URL: url}
				if i < len(titles) {
					row.Title = titles[i]
				}
				if i < len(descriptions) {
					row.Description = descriptions[i]
				}
				rows = append(rows, row)
			}
			printJSON((*a).products.SaveImages(cmd.Context(), id, rows))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&urls, "url", nil, "image URL (repeatable; omit to clear all)")
	cmd.Flags().StringArrayVar(&titles, "title", nil, "image title, matched to --url by position")
	cmd.Flags().StringArrayVar(&descriptions, "description", nil, "image description, matched to --url by position")
	return cmd
}

func newProductDeleteCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete a product and remove its child rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			printJSON((*a).products.Delete(cmd.Context(), id))
			return nil
		},
	}
}
