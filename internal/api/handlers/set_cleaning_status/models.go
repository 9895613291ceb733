package set_cleaning_status

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"` // "Clean" или "Needs Cleaning"
}
