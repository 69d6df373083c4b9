package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Chat         *ChatHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Admin        *AdminHandler
}
