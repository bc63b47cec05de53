package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

func productScreen(a *app) screen[models.Product] {
	return screen[models.Product]{
		title:     "Products",
		schema:    models.ProductSchema(),
		api:       a.api.Products,
		columns:   []string{"id", "name", "sku", "category", "brand", "price", "stock", "status"},
		groupFlag: "category",
		extra: []*cli.Command{
			productFormCommand(a, "create"),
			productFormCommand(a, "update"),
		},
	}
}

func categoryScreen(a *app) screen[models.Category] {
	return screen[models.Category]{
		title:   "Categories",
		schema:  models.CategorySchema(),
		api:     a.api.Categories,
		columns: []string{"id", "name", "productCount", "status", "featured"},
		extra: []*cli.Command{
			categoryFormCommand(a, "create"),
			categoryFormCommand(a, "update"),
		},
	}
}

func brandScreen(a *app) screen[models.Brand] {
	return screen[models.Brand]{
		title:   "Brands",
		schema:  models.BrandSchema(),
		api:     a.api.Brands,
		columns: []string{"id", "name", "country", "productCount", "status"},
	}
}

// ════════════════════════════════════════════════════════════
// Forms
// ════════════════════════════════════════════════════════════

func flagActivity(cmd *cli.Command, active, featured **bool) {
	if cmd.IsSet("active") {
		v := cmd.Bool("active")
		*active = &v
	}
	if cmd.IsSet("featured") {
		v := cmd.Bool("featured")
		*featured = &v
	}
}

func activityFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "active", Usage: "visible on the storefront (--active=false to hide)"},
		&cli.BoolFlag{Name: "featured", Usage: "show on the home page"},
	}
}

func productFormCommand(a *app, verb string) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "sku"},
		&cli.StringFlag{Name: "description"},
		&cli.FloatFlag{Name: "price"},
		&cli.IntFlag{Name: "stock"},
		&cli.StringFlag{Name: "category", Usage: "category id"},
		&cli.StringFlag{Name: "brand"},
		&cli.StringFlag{Name: "origin"},
		&cli.StringFlag{Name: "image", Usage: "URL, upload path or cloudinary:<public-id>"},
	}
	usage, args := "Create a product", ""
	if verb == "update" {
		usage, args = "Update a product; unset flags keep their value", "<id>"
	}
	return &cli.Command{
		Name:      verb,
		Usage:     usage,
		ArgsUsage: args,
		Flags:     append(flags, activityFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var (
				req models.ProductRequest
				id  string
			)
			if verb == "update" {
				if id = cmd.Args().First(); id == "" {
					return fmt.Errorf("products update: id is required")
				}
				cur, err := a.api.Products.Get(ctx, id)
				if err != nil {
					return err
				}
				req = productRequest(cur)
			}
			overlayProduct(cmd, &req)
			if err := a.checkForm(req); err != nil {
				return err
			}

			var (
				p   models.Product
				err error
			)
			if verb == "update" {
				p, err = a.api.Products.Update(ctx, id, req)
			} else {
				p, err = a.api.Products.Create(ctx, req)
			}
			if err != nil {
				return a.reportAPIError(err)
			}
			a.printf("%sd product %s (%s)\n", verb, p.Name, p.ID)
			return nil
		},
	}
}

// productRequest is the full-update body that leaves p unchanged.
func productRequest(p models.Product) models.ProductRequest {
	active, featured := p.IsActive, p.Featured
	return models.ProductRequest{
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		Brand:       p.Brand,
		Origin:      p.Origin,
		Image:       p.Image,
		IsActive:    &active,
		Featured:    &featured,
	}
}

func overlayProduct(cmd *cli.Command, req *models.ProductRequest) {
	set := func(name string, dst *string) {
		if cmd.IsSet(name) {
			*dst = cmd.String(name)
		}
	}
	set("name", &req.Name)
	set("sku", &req.SKU)
	set("description", &req.Description)
	set("category", &req.CategoryID)
	set("brand", &req.Brand)
	set("origin", &req.Origin)
	set("image", &req.Image)
	if cmd.IsSet("price") {
		req.Price = cmd.Float("price")
	}
	if cmd.IsSet("stock") {
		req.Stock = cmd.Int("stock")
	}
	flagActivity(cmd, &req.IsActive, &req.Featured)
}

func categoryFormCommand(a *app, verb string) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "image", Usage: "URL, upload path or cloudinary:<public-id>"},
	}
	usage, args := "Create a category", ""
	if verb == "update" {
		usage, args = "Update a category; unset flags keep their value", "<id>"
	}
	return &cli.Command{
		Name:      verb,
		Usage:     usage,
		ArgsUsage: args,
		Flags:     append(flags, activityFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var (
				req models.CategoryRequest
				id  string
			)
			if verb == "update" {
				if id = cmd.Args().First(); id == "" {
					return fmt.Errorf("categories update: id is required")
				}
				cur, err := a.api.Categories.Get(ctx, id)
				if err != nil {
					return err
				}
				active, featured := cur.IsActive, cur.Featured
				req = models.CategoryRequest{
					Name:        cur.Name,
					Description: cur.Description,
					Image:       cur.Image,
					IsActive:    &active,
					Featured:    &featured,
				}
			}
			for name, dst := range map[string]*string{"name": &req.Name, "description": &req.Description, "image": &req.Image} {
				if cmd.IsSet(name) {
					*dst = cmd.String(name)
				}
			}
			flagActivity(cmd, &req.IsActive, &req.Featured)
			if err := a.checkForm(req); err != nil {
				return err
			}

			var (
				c   models.Category
				err error
			)
			if verb == "update" {
				c, err = a.api.Categories.Update(ctx, id, req)
			} else {
				c, err = a.api.Categories.Create(ctx, req)
			}
			if err != nil {
				return a.reportAPIError(err)
			}
			a.printf("%sd category %s (%s)\n", verb, c.Name, c.ID)
			return nil
		},
	}
}
