package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewProductCmd создаёт группу команд для управления каталогом товаров.
func NewProductCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage catalog products",
	}

	cmd.AddCommand(
		newProductListCmd(clientFn, outputFn),
		newProductShowCmd(clientFn, outputFn),
		newProductCreateCmd(clientFn, outputFn),
		newProductUpdateCmd(clientFn, outputFn),
		newProductDeleteCmd(clientFn, outputFn),
		newCategoriesCmd(clientFn, outputFn),
	)

	return cmd
}

var productHeaders = []string{"ID", "TITLE", "CATEGORY", "MATERIAL", "SIZE", "ACTIVE", "CREATED"}

func productRow(p ProductResponse) []string {
	return []string{
		p.ID,
		truncate(p.Title, 40),
		p.Category,
		p.MaterialType,
		p.Size,
		strconv.FormatBool(p.IsActive),
		p.CreatedAt,
	}
}

func newProductListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var opts ListProductsOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			products, err := client.ListProducts(opts)
			if err != nil {
				return err
			}

			rows := make([][]string, len(products))
			for i, p := range products {
				rows[i] = productRow(p)
			}

			out.Print(productHeaders, rows, products)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&opts.MaterialType, "material-type", "", "Filter by material type")
	cmd.Flags().StringVar(&opts.Size, "size", "", "Filter by size")
	cmd.Flags().StringVar(&opts.Query, "search", "", "Search in title and description")
	cmd.Flags().BoolVar(&opts.IncludeInactive, "include-inactive", false, "Include deactivated products")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Limit results")

	return cmd
}

func newProductShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show product details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			product, err := client.GetProduct(args[0])
			if err != nil {
				return err
			}

			out.Print(productHeaders, [][]string{productRow(*product)}, product)
			return nil
		},
	}
}

func newProductCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req CreateProductRequest
	var specs string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a catalog product",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if specs != "" {
				if err := json.Unmarshal([]byte(specs), &req.Specs); err != nil {
					return fmt.Errorf("invalid value for --specs: %w", err)
				}
			}

			product, err := client.CreateProduct(req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Product created: %s", product.ID))
			out.Print(productHeaders, [][]string{productRow(*product)}, product)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Product title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Product description")
	cmd.Flags().StringVar(&req.Category, "category", "", "Product category (required)")
	cmd.Flags().StringVar(&req.MaterialType, "material-type", "", "Material type")
	cmd.Flags().StringVar(&req.Size, "size", "", "Size")
	cmd.Flags().StringVar(&req.Weight, "weight", "", "Weight")
	cmd.Flags().StringSliceVar(&req.Images, "image", nil, "Image URL (repeatable)")
	cmd.Flags().StringVar(&specs, "specs", "", "Technical specs as JSON object")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("category")

	return cmd
}

func newProductUpdateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var title, description, category, materialType, size, weight, active, specs string
	var images []string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a catalog product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			req := UpdateProductRequest{}
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("category") {
				req.Category = &category
			}
			if cmd.Flags().Changed("material-type") {
				req.MaterialType = &materialType
			}
			if cmd.Flags().Changed("size") {
				req.Size = &size
			}
			if cmd.Flags().Changed("weight") {
				req.Weight = &weight
			}
			if cmd.Flags().Changed("image") {
				req.Images = images
			}
			if cmd.Flags().Changed("specs") {
				if err := json.Unmarshal([]byte(specs), &req.Specs); err != nil {
					return fmt.Errorf("invalid value for --specs: %w", err)
				}
			}
			if cmd.Flags().Changed("active") {
				b, err := strconv.ParseBool(active)
				if err != nil {
					return fmt.Errorf("invalid value for --active: %s", active)
				}
				req.IsActive = &b
			}

			product, err := client.UpdateProduct(args[0], req)
			if err != nil {
				return err
			}

			out.Success("Product updated")
			out.Print(productHeaders, [][]string{productRow(*product)}, product)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&materialType, "material-type", "", "New material type")
	cmd.Flags().StringVar(&size, "size", "", "New size")
	cmd.Flags().StringVar(&weight, "weight", "", "New weight")
	cmd.Flags().StringSliceVar(&images, "image", nil, "Replace image URLs (repeatable)")
	cmd.Flags().StringVar(&specs, "specs", "", "Replace technical specs as JSON object")
	cmd.Flags().StringVar(&active, "active", "", "Set active status (true/false)")

	return cmd
}

func newProductDeleteCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a catalog product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.DeleteProduct(args[0]); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Product deleted: %s", args[0]))
			return nil
		},
	}
}

func newCategoriesCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			categories, err := client.ListCategories()
			if err != nil {
				return err
			}

			rows := make([][]string, len(categories))
			for i, c := range categories {
				rows[i] = []string{c}
			}

			out.Print([]string{"CATEGORY"}, rows, categories)
			return nil
		},
	}
}
