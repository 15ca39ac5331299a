package api

import (
	"context"
	"net/http"

	"flotagest/internal/dto"
	"flotagest/internal/model"

	"github.com/google/uuid"
)

func (c *Client) ListVehicles(ctx context.Context, filter dto.VehicleFilter) ([]model.Vehicle, error) {
	var out []model.Vehicle
	if err := c.do(ctx, http.MethodGet, "/vehicles", filter.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest) (*model.Vehicle, error) {
	var out model.Vehicle
	if err := c.do(ctx, http.MethodPost, "/vehicles", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateVehicle(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (*model.Vehicle, error) {
	var out model.Vehicle
	if err := c.do(ctx, http.MethodPut, "/vehicles/"+id.String(), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/vehicles/"+id.String(), nil, nil, nil)
}
