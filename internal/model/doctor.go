package model

import "database/sql/driver"

// ScheduleDay is one entry of a doctor's weekly schedule, e.g.
// {day: "Mon", slots: ["09:00-12:00"]}.
type ScheduleDay struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

// Schedule is an ordered weekly schedule stored as a JSON document.
type Schedule []ScheduleDay

func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return jsonValue(s)
}

func (s *Schedule) Scan(src interface{}) error {
	return jsonScan(s, src)
}

// Doctor holds the professional profile linked to a user with role
// doctor.
type Doctor struct {
	Base
	UserID            string   `json:"user_id" db:"user_id"`
	Specialization    *string  `json:"specialization" db:"specialization"`
	LicenseNumber     *string  `json:"license_number,omitempty" db:"license_number"`
	YearsOfExperience *int     `json:"years_of_experience,omitempty" db:"years_of_experience"`
	Schedule          Schedule `json:"schedule,omitempty" db:"schedule"`
}
