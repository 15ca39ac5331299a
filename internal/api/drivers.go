package api

import (
	"context"
	"net/http"

	"flotagest/internal/dto"
	"flotagest/internal/model"

	"github.com/google/uuid"
)

func (c *Client) ListDrivers(ctx context.Context, filter dto.DriverFilter) ([]model.Driver, error) {
	var out []model.Driver
	if err := c.do(ctx, http.MethodGet, "/drivers", filter.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActiveDrivers hits the narrowed active-only resource used to populate
// selection inputs.
func (c *Client) ListActiveDrivers(ctx context.Context) ([]model.Driver, error) {
	var out []model.Driver
	if err := c.do(ctx, http.MethodGet, "/drivers/active", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDriver(ctx context.Context, req dto.CreateDriverRequest) (*model.Driver, error) {
	var out model.Driver
	if err := c.do(ctx, http.MethodPost, "/drivers", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDriver(ctx context.Context, id uuid.UUID, req dto.UpdateDriverRequest) (*model.Driver, error) {
	var out model.Driver
	if err := c.do(ctx, http.MethodPut, "/drivers/"+id.String(), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/drivers/"+id.String(), nil, nil, nil)
}
