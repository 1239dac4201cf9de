package domain

// MonthCount is one bucket of a 12-month creation time series.
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}
