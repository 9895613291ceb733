package delete_booking

// Request модель запроса на удаление группы бронирования
type Request struct {
	GroupID string
}

// Response модель ответа на удаление группы бронирования
type Response struct {
	GroupID string
	// GuestDeleted признак того, что карточка гостя удалена каскадно
	// вместе с его последней группой бронирований
	GuestDeleted bool
}
