package contract

import "github.com/alexanderramin/praxis/internal/domain"

type EmployeeDateParams struct {
	EmployeeID int64  `json:"employeeId"`
	Date       string `json:"date"`
}

// PerformanceParams carries one day of performance in the command wire shape.
type PerformanceParams struct {
	EmployeeID    int64   `json:"employeeId"`
	Date          string  `json:"date"`
	HoursWorked   float64 `json:"hoursWorked"`
	Status        string  `json:"status"`
	Income        float64 `json:"income"`
	KgNum         int     `json:"kgNum"`
	MtNum         int     `json:"mtNum"`
	MldNum        int     `json:"mldNum"`
	Mld45Num      int     `json:"mld45Num"`
	Mld60Num      int     `json:"mld60Num"`
	MaNum         int     `json:"maNum"`
	FangoNum      int     `json:"fangoNum"`
	UltraschalNum int     `json:"ultraschalNum"`
	HbNum         int     `json:"hbNum"`
}

// Record converts the params to a domain record. The status is kept as sent;
// the service parses and validates it.
func (p PerformanceParams) Record() *domain.PerformanceRecord {
	return &domain.PerformanceRecord{
		EmployeeID:  p.EmployeeID,
		Date:        p.Date,
		HoursWorked: p.HoursWorked,
		Status:      domain.Status(p.Status),
		Income:      p.Income,
		ModalityCounts: domain.ModalityCounts{
			KG:         p.KgNum,
			MT:         p.MtNum,
			MLD:        p.MldNum,
			MLD45:      p.Mld45Num,
			MLD60:      p.Mld60Num,
			MA:         p.MaNum,
			Fango:      p.FangoNum,
			Ultraschal: p.UltraschalNum,
			HB:         p.HbNum,
		},
	}
}

func NewPerformanceParams(r *domain.PerformanceRecord) PerformanceParams {
	return PerformanceParams{
		EmployeeID:    r.EmployeeID,
		Date:          r.Date,
		HoursWorked:   r.HoursWorked,
		Status:        string(r.Status),
		Income:        r.Income,
		KgNum:         r.KG,
		MtNum:         r.MT,
		MldNum:        r.MLD,
		Mld45Num:      r.MLD45,
		Mld60Num:      r.MLD60,
		MaNum:         r.MA,
		FangoNum:      r.Fango,
		UltraschalNum: r.Ultraschal,
		HbNum:         r.HB,
	}
}

type UpdatePerformanceParams struct {
	ID int64 `json:"id"`
	PerformanceParams
}

func (p UpdatePerformanceParams) Record() *domain.PerformanceRecord {
	r := p.PerformanceParams.Record()
	r.ID = p.ID
	return r
}

func NewUpdatePerformanceParams(r *domain.PerformanceRecord) UpdatePerformanceParams {
	return UpdatePerformanceParams{ID: r.ID, PerformanceParams: NewPerformanceParams(r)}
}
