package contract

// ImportResult counts what an import stored.
type ImportResult struct {
	Employees        int `json:"employees"`
	TherapiesAdded   int `json:"therapiesAdded"`
	TherapiesUpdated int `json:"therapiesUpdated"`
	Performance      int `json:"performance"`
}
