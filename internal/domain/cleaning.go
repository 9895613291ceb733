package domain

// CleaningState represents the housekeeping state of a room
type CleaningState string

const (
	CleaningClean CleaningState = "Clean"
	CleaningNeeds CleaningState = "Needs Cleaning"
)

// IsValidCleaningState reports whether s is a known cleaning state
func IsValidCleaningState(s CleaningState) bool {
	return s == CleaningClean || s == CleaningNeeds
}

// CleaningStatus is the per-room housekeeping flag. One record per room,
// independent lifecycle from bookings; defaults to Clean.
//
// Флаг меняется только вручную оператором либо ежедневным сбросом
// (занятые сегодня комнаты переводятся в Needs Cleaning). Автоматического
// возврата в Clean нет.
type CleaningStatus struct {
	RoomNumber string
	Status     CleaningState
}

// Toggled returns the opposite cleaning state
func (s CleaningState) Toggled() CleaningState {
	if s == CleaningClean {
		return CleaningNeeds
	}
	return CleaningClean
}
