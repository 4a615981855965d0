package models

import "time"

type DoctorProfile struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	UserID         string `json:"userId" bson:"userId"`
	Name           string `json:"name" bson:"name"`
	Specialization string `json:"specialization" bson:"specialization"`
	Hospital       string `json:"hospital" bson:"hospital"`
	LicenseNumber  string `json:"licenseNumber" bson:"licenseNumber"`
	Phone          string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email          string `json:"email,omitempty" bson:"email,omitempty"`
}

type PatientProfile struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	UserID           string     `json:"userId" bson:"userId"`
	Name             string     `json:"name" bson:"name"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	BloodGroup       string     `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`
	Phone            string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Email            string     `json:"email,omitempty" bson:"email,omitempty"`
	Address          string     `json:"address,omitempty" bson:"address,omitempty"`
	EmergencyContact string     `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	InsuranceInfo    string     `json:"insuranceInfo,omitempty" bson:"insuranceInfo,omitempty"`
}

type PharmacyProfile struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	UserID        string `json:"userId" bson:"userId"`
	Name          string `json:"name" bson:"name"`
	LicenseNumber string `json:"licenseNumber" bson:"licenseNumber"`
	Address       string `json:"address" bson:"address"`
	Phone         string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`
}
