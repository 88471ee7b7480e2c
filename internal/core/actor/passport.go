// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package actor

// Passport holds identity document data. It has no validation of its own.
type Passport struct {
	number  string
	givenBy string
	series  *string
}

// NewPassport builds a Passport. Series is optional.
func NewPassport(number, givenBy string, series *string) Passport {
	var copied *string
	if series != nil {
		value := *series
		copied = &value
	}
	return Passport{number: number, givenBy: givenBy, series: copied}
}

// Number returns the document number.
func (p Passport) Number() string { return p.number }

// GivenBy returns the issuing authority.
func (p Passport) GivenBy() string { return p.givenBy }

// Series returns the optional series, or nil.
func (p Passport) Series() *string {
	if p.series == nil {
		return nil
	}
	value := *p.series
	return &value
}
