package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through the NewAddress constructor.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the customer contact and delivery address record attached to an
// order. It is an immutable value object.
//
// Name, phone, street, city, state, ZIP, and date of birth are required;
// email is optional. The ZIP must be a well-formed five-digit code; whether
// it is serviceable is the quoting engine's concern, not the address's.
type Address struct { //nolint:recvcheck //using for validation
	name   string
	phone  string
	line1  string
	city   string
	state  string
	zip    string
	email  string
	dob    time.Time
	guard  guard.ConstructorGuard
}

// NewAddress creates an address with validation of all required fields.
func NewAddress(name, phone, line1, city, state, zip, email string, dob time.Time) (Address, error) {
	address := Address{
		email:  email,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setRequired(&address.name, "name", name),
		address.setRequired(&address.phone, "phone", phone),
		address.setRequired(&address.line1, "address line", line1),
		address.setRequired(&address.city, "city", city),
		address.setRequired(&address.state, "state", state),
		address.setZip(zip),
		address.setDOB(dob),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Name returns the recipient's full name.
func (a Address) Name() string {
	return a.name
}

// Phone returns the contact phone number.
func (a Address) Phone() string {
	return a.phone
}

// Line1 returns the street address.
func (a Address) Line1() string {
	return a.line1
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the two-letter state code as submitted.
func (a Address) State() string {
	return a.state
}

// Zip returns the five-digit destination ZIP code.
func (a Address) Zip() string {
	return a.zip
}

// Email returns the optional contact email, empty when not provided.
func (a Address) Email() string {
	return a.email
}

// DOB returns the customer's date of birth, used for the 21+ age gate.
func (a Address) DOB() time.Time {
	return a.dob
}

// AgeOn returns the customer's age in whole years on the given date.
func (a Address) AgeOn(date time.Time) int {
	years := date.Year() - a.dob.Year()
	anniversary := a.dob.AddDate(years, 0, 0)
	if anniversary.After(date) {
		years--
	}
	return years
}

func (a *Address) setRequired(field *string, paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*field = value
	return nil
}

func (a *Address) setZip(zip string) error {
	if zip == "" {
		return errs.NewValueIsRequiredError("zip")
	}
	if !delivery.IsWellFormedZip(zip) {
		return errs.NewValueIsInvalidError("zip")
	}
	a.zip = zip
	return nil
}

func (a *Address) setDOB(dob time.Time) error {
	if dob.IsZero() {
		return errs.NewValueIsRequiredError("date of birth")
	}
	a.dob = dob
	return nil
}
