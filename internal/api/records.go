package api

import (
	"context"
	"net/http"

	"flotagest/internal/dto"
	"flotagest/internal/model"

	"github.com/google/uuid"
)

func (c *Client) ListRecords(ctx context.Context, filter dto.RecordFilter) ([]model.Record, error) {
	var out []model.Record
	if err := c.do(ctx, http.MethodGet, "/records", filter.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecordFilterOptions fetches the vehicle/driver option lists that drive
// the records page's filter and selection inputs.
func (c *Client) GetRecordFilterOptions(ctx context.Context) (*dto.FilterOptions, error) {
	var out dto.FilterOptions
	if err := c.do(ctx, http.MethodGet, "/records/filters", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*model.Record, error) {
	var out model.Record
	if err := c.do(ctx, http.MethodPost, "/records", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRecord(ctx context.Context, id uuid.UUID, req dto.UpdateRecordRequest) (*model.Record, error) {
	var out model.Record
	if err := c.do(ctx, http.MethodPut, "/records/"+id.String(), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/records/"+id.String(), nil, nil, nil)
}
