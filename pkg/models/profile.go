package models

import "time"

// BloodGroups lists the eight ABO/Rh labels the profile generator draws from.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Profile represents a synthetic personal record. Only BloodGroup,
// CurrentLocation and Birthdate feed the statistics; the rest are
// identity fields carried for realism.
type Profile struct {
	Name            string     `json:"name"`
	Sex             string     `json:"sex"`
	Mail            string     `json:"mail"`
	Job             string     `json:"job"`
	BloodGroup      string     `json:"blood_group"`
	CurrentLocation Coordinate `json:"current_location"`
	Birthdate       time.Time  `json:"birthdate"`
}

// AsMap returns the dynamically-keyed representation of the profile used by
// the layout benchmark. Both representations must yield identical statistics.
func (p Profile) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"name":             p.Name,
		"sex":              p.Sex,
		"mail":             p.Mail,
		"job":              p.Job,
		"blood_group":      p.BloodGroup,
		"current_location": p.CurrentLocation,
		"birthdate":        p.Birthdate,
	}
}
