package domain

// CellPhone is a recommended product as returned by the assistant
// service. Snapshots are immutable once attached to a turn.
type CellPhone struct {
	ID          int     `json:"id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	Price       float64 `json:"price"`
	Storage     string  `json:"storage,omitempty"`
	BatteryLife string  `json:"battery_life,omitempty"`
}
