package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/importer"
)

// Invoker is the name-addressed backend boundary. *Router implements it.
type Invoker interface {
	Invoke(ctx context.Context, name string, params json.RawMessage) (json.RawMessage, error)
}

// Client is the typed front-end view of the backend commands.
type Client struct {
	inv Invoker
}

func NewClient(inv Invoker) *Client {
	return &Client{inv: inv}
}

func (c *Client) call(ctx context.Context, name string, params any, out any) error {
	var raw json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("encoding parameters for %s: %w", name, err)
		}
		raw = b
	}
	res, err := c.inv.Invoke(ctx, name, raw)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res, out); err != nil {
		return fmt.Errorf("decoding result of %s: %w", name, err)
	}
	return nil
}

func (c *Client) Employees(ctx context.Context) ([]*domain.Employee, error) {
	var out []*domain.Employee
	if err := c.call(ctx, contract.CmdGetEmployees, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Employee(ctx context.Context, id int64) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.call(ctx, contract.CmdGetEmployee, contract.IDParams{ID: id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddEmployee(ctx context.Context, p contract.AddEmployeeParams) error {
	return c.call(ctx, contract.CmdAddEmployee, p, nil)
}

func (c *Client) UpdateEmployee(ctx context.Context, p contract.UpdateEmployeeParams) error {
	return c.call(ctx, contract.CmdUpdateEmployee, p, nil)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.call(ctx, contract.CmdDeleteEmployee, contract.EmployeeRefParams{EmployeeID: id}, nil)
}

func (c *Client) EmployeeName(ctx context.Context, id int64) (string, error) {
	var out string
	if err := c.call(ctx, contract.CmdGetEmployeeName, contract.IDParams{ID: id}, &out); err != nil {
		return "", err
	}
	return out, nil
}

// EmployeeAvgHours returns the stored daily average as a decimal string, e.g. "7.5".
func (c *Client) EmployeeAvgHours(ctx context.Context, id int64) (string, error) {
	var out string
	if err := c.call(ctx, contract.CmdGetEmployeeAvgHours, contract.IDParams{ID: id}, &out); err != nil {
		return "", err
	}
	return out, nil
}

func (c *Client) Therapies(ctx context.Context) ([]*domain.Therapy, error) {
	var out []*domain.Therapy
	if err := c.call(ctx, contract.CmdGetAllTherapies, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddTherapy(ctx context.Context, p contract.TherapyParams) error {
	return c.call(ctx, contract.CmdAddTherapy, p, nil)
}

func (c *Client) UpdateTherapy(ctx context.Context, p contract.UpdateTherapyParams) error {
	return c.call(ctx, contract.CmdUpdateTherapy, p, nil)
}

func (c *Client) AllPerformance(ctx context.Context, employeeID int64) ([]*domain.PerformanceRecord, error) {
	var out []*domain.PerformanceRecord
	if err := c.call(ctx, contract.CmdGetAllPerformance, contract.EmployeeRefParams{EmployeeID: employeeID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Performance(ctx context.Context, employeeID int64, date string) ([]*domain.PerformanceRecord, error) {
	var out []*domain.PerformanceRecord
	if err := c.call(ctx, contract.CmdGetPerformance, contract.EmployeeDateParams{EmployeeID: employeeID, Date: date}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddPerformance(ctx context.Context, p contract.PerformanceParams) error {
	return c.call(ctx, contract.CmdAddPerformance, p, nil)
}

func (c *Client) UpdatePerformance(ctx context.Context, p contract.UpdatePerformanceParams) error {
	return c.call(ctx, contract.CmdUpdatePerformance, p, nil)
}

func (c *Client) MonthlyStats(ctx context.Context, req contract.StatsRequest) ([]*domain.MonthlyStats, error) {
	var out []*domain.MonthlyStats
	if err := c.call(ctx, contract.CmdGetMonthlyStats, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ExportMonthlyStats(ctx context.Context, req contract.ExportRequest) (*contract.ExportResult, error) {
	var out contract.ExportResult
	if err := c.call(ctx, contract.CmdExportMonthlyStats, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ImportData(ctx context.Context, schema *importer.ImportSchema) (*contract.ImportResult, error) {
	var out contract.ImportResult
	if err := c.call(ctx, contract.CmdImportData, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
