package sales

import "time"

// timeLayout is the on-disk timestamp format of a sales record.
const timeLayout = "2006-01-02 15:04:05"

// Record is one aggregate sales-log entry: the moment of sale and the total
// charged. Line items are not retained after checkout.
type Record struct {
	At    time.Time `json:"at"`
	Total float64   `json:"total"`
}
