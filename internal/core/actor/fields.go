// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package actor

// JSON field names reported in validation details.
const (
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldMiddleName      = "middle_name"
	FieldDateOfBirth     = "date_of_birth"
	FieldDignity         = "dignity"
	FieldEmail           = "email"
	FieldTelephone       = "telephone"
	FieldAddress         = "address"
	FieldPassportNumber  = "passport_number"
	FieldPassportGivenBy = "passport_given_by"
	FieldPassportSeries  = "passport_series"
	FieldTaxesNumber     = "taxes_number"
)
