package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// resource is the shared CRUD surface of one collection. Its List, SetActive
// and Delete make every entity API a listview.Source and listview.Mutator.
type resource[T any] struct {
	c      *Client
	path   string
	one    string
	many   []string
	decode func(json.RawMessage) (T, bool)
}

func (r resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// List fetches the whole collection.
func (r resource[T]) List(ctx context.Context) ([]T, error) {
	env, err := r.c.do(ctx, http.MethodGet, r.path, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll(env.list(r.many...), r.decode), nil
}

func (r resource[T]) Get(ctx context.Context, id string) (T, error) {
	return r.send(ctx, http.MethodGet, r.itemPath(id), nil)
}

func (r resource[T]) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.c.do(ctx, http.MethodPatch, r.itemPath(id)+"/status", models.StatusRequest{IsActive: &active})
	return err
}

func (r resource[T]) Delete(ctx context.Context, id string) error {
	_, err := r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil)
	return err
}

// send expects a single entity back.
func (r resource[T]) send(ctx context.Context, method, path string, in any) (T, error) {
	var zero T
	env, err := r.c.do(ctx, method, path, in)
	if err != nil {
		return zero, err
	}
	raw, ok := env.object(r.one)
	if !ok {
		return zero, fmt.Errorf("%s %s: response carried no %s", method, path, r.one)
	}
	v, ok := r.decode(raw)
	if !ok {
		return zero, fmt.Errorf("%s %s: malformed %s", method, path, r.one)
	}
	return v, nil
}

type ProductsAPI struct {
	resource[models.Product]
}

func (a *ProductsAPI) Create(ctx context.Context, req models.ProductRequest) (models.Product, error) {
	return a.send(ctx, http.MethodPost, a.path, req)
}

func (a *ProductsAPI) Update(ctx context.Context, id string, req models.ProductRequest) (models.Product, error) {
	return a.send(ctx, http.MethodPut, a.itemPath(id), req)
}

type CategoriesAPI struct {
	resource[models.Category]
}

func (a *CategoriesAPI) Create(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	return a.send(ctx, http.MethodPost, a.path, req)
}

func (a *CategoriesAPI) Update(ctx context.Context, id string, req models.CategoryRequest) (models.Category, error) {
	return a.send(ctx, http.MethodPut, a.itemPath(id), req)
}

// BrandsAPI has no create or update: brands are derived from products.
type BrandsAPI struct {
	resource[models.Brand]
}
