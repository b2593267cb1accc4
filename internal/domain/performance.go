package domain

// ModalityCounts holds the per-modality session counts of one day.
type ModalityCounts struct {
	KG         int `json:"kg_num" validate:"gte=0"`
	MT         int `json:"mt_num" validate:"gte=0"`
	MLD        int `json:"mld_num" validate:"gte=0"`
	MLD45      int `json:"mld_45_num" validate:"gte=0"`
	MLD60      int `json:"mld_60_num" validate:"gte=0"`
	MA         int `json:"ma_num" validate:"gte=0"`
	Fango      int `json:"fango_num" validate:"gte=0"`
	Ultraschal int `json:"ultraschal_num" validate:"gte=0"`
	HB         int `json:"hb_num" validate:"gte=0"`
}

// Ptrs returns pointers to each counter in Modalities order, for scanning.
func (c *ModalityCounts) Ptrs() []*int {
	return []*int{&c.KG, &c.MT, &c.MLD, &c.MLD45, &c.MLD60, &c.MA, &c.Fango, &c.Ultraschal, &c.HB}
}

// Count returns the counter for m, or 0 for an unknown modality.
func (c ModalityCounts) Count(m Modality) int {
	for i, mod := range Modalities {
		if mod == m {
			return *c.Ptrs()[i]
		}
	}
	return 0
}

// SetCount sets the counter for m. Unknown modalities are ignored.
func (c *ModalityCounts) SetCount(m Modality, n int) {
	for i, mod := range Modalities {
		if mod == m {
			*c.Ptrs()[i] = n
			return
		}
	}
}

// Values returns the counters in Modalities order.
func (c ModalityCounts) Values() []int {
	ptrs := c.Ptrs()
	out := make([]int, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}

// PerformanceRecord is one day of attendance and treatments for an employee.
// (EmployeeID, Date) identifies the record naturally.
type PerformanceRecord struct {
	ID          int64   `json:"id"`
	EmployeeID  int64   `json:"employee_id" validate:"gt=0"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	HoursWorked float64 `json:"hours_worked" validate:"gte=0,lte=24"`
	Status      Status  `json:"status" validate:"status"`
	Income      float64 `json:"income" validate:"gte=0"`
	ModalityCounts
}

// Month returns the YYYY-MM prefix of the record date.
func (p *PerformanceRecord) Month() string {
	if len(p.Date) < 7 {
		return p.Date
	}
	return p.Date[:7]
}
