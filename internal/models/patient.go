package models

// Patient is the person an appointment is booked for. Values are validated
// before construction and never change afterwards.
type Patient struct {
	NIC   string `json:"nic" validate:"nic"`
	Name  string `json:"name" validate:"personname"`
	Email string `json:"email" validate:"clinicemail"`
	Phone string `json:"phone" validate:"phone10"`
}
