package domain

// ModalityTotals holds summed modality counts over a month.
type ModalityTotals struct {
	KG         int `json:"total_kg"`
	MT         int `json:"total_mt"`
	MLD        int `json:"total_mld"`
	MLD45      int `json:"total_mld_45"`
	MLD60      int `json:"total_mld_60"`
	MA         int `json:"total_ma"`
	Fango      int `json:"total_fango"`
	Ultraschal int `json:"total_ultraschal"`
	HB         int `json:"total_hb"`
}

func (t *ModalityTotals) Ptrs() []*int {
	return []*int{&t.KG, &t.MT, &t.MLD, &t.MLD45, &t.MLD60, &t.MA, &t.Fango, &t.Ultraschal, &t.HB}
}

func (t ModalityTotals) Total(m Modality) int {
	for i, mod := range Modalities {
		if mod == m {
			return *t.Ptrs()[i]
		}
	}
	return 0
}

// Income prices every total at its catalog income; unpriced modalities earn nothing.
func (t ModalityTotals) Income(prices map[Modality]float64) float64 {
	var sum float64
	for _, m := range Modalities {
		sum += float64(t.Total(m)) * prices[m]
	}
	return sum
}

// MonthlyStats is the aggregate of one employee's records over a month.
type MonthlyStats struct {
	Month           string  `json:"month"`
	TotalHours      float64 `json:"total_hours"`
	WorkDays        int     `json:"work_days"`
	Cost            float64 `json:"cost"`
	GeneratedIncome float64 `json:"generated_income"`
	ModalityTotals
}

// Margin is the generated income left after the employee cost.
func (s *MonthlyStats) Margin() float64 {
	return s.GeneratedIncome - s.Cost
}
