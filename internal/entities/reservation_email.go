package entities

type ReservationEmailData struct {
	GuestName         string
	HostelName        string
	ReservationCode   string
	RoomNumber        string
	BedNumber         string
	CheckinFormatted  string
	CheckoutFormatted string
	CurrentYear       int
}
