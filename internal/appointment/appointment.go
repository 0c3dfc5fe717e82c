package appointment

import "time"

// Appointment is a consultation booking. Status is carried by the two
// flags: pending {false,false}, confirmed {true,false}, completed
// {true,true}. {false,true} is never stored.
type Appointment struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	AppointmentDate time.Time `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	AppointmentType string    `json:"appointmentType"`
	Notes           *string   `json:"notes"`
	Confirmed       bool      `json:"confirmed"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"createdAt"`
}

// timeSlots is the bookable half-hour grid, 10:00 through 18:30.
var timeSlots = func() map[string]bool {
	slots := make(map[string]bool, 18)
	for h := 10; h <= 18; h++ {
		for _, m := range []string{"00", "30"} {
			slots[twoDigits(h)+":"+m] = true
		}
	}
	return slots
}()

var appointmentTypes = map[string]bool{
	"birth_chart":                true,
	"transit_analysis":           true,
	"relationship_compatibility": true,
	"career_guidance":            true,
	"general_consultation":       true,
}

func ValidSlot(slot string) bool {
	return timeSlots[slot]
}

func ValidType(appointmentType string) bool {
	return appointmentTypes[appointmentType]
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
