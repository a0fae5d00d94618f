package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/marketplace/backend/internal/domain/shared"
)

// ShippingAddress is a value object representing a delivery address.
// It is immutable - all operations return new instances.
type ShippingAddress struct {
	street  string
	city    string
	state   string
	country string
}

// NewShippingAddress creates a new ShippingAddress.
// All four fields are required for an order to be deliverable.
func NewShippingAddress(street, city, state, country string) (ShippingAddress, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	country = strings.TrimSpace(country)

	if street == "" {
		return ShippingAddress{}, shared.NewDomainError("INVALID_ADDRESS", "Street cannot be empty")
	}
	if city == "" {
		return ShippingAddress{}, shared.NewDomainError("INVALID_ADDRESS", "City cannot be empty")
	}
	if state == "" {
		return ShippingAddress{}, shared.NewDomainError("INVALID_ADDRESS", "State cannot be empty")
	}
	if country == "" {
		return ShippingAddress{}, shared.NewDomainError("INVALID_ADDRESS", "Country cannot be empty")
	}
	if len(street) > 200 || len(city) > 100 || len(state) > 100 || len(country) > 100 {
		return ShippingAddress{}, shared.NewDomainError("INVALID_ADDRESS", "Address field exceeds maximum length")
	}

	return ShippingAddress{
		street:  street,
		city:    city,
		state:   state,
		country: country,
	}, nil
}

// MustNewShippingAddress creates a new ShippingAddress, panics on error
func MustNewShippingAddress(street, city, state, country string) ShippingAddress {
	addr, err := NewShippingAddress(street, city, state, country)
	if err != nil {
		panic(err)
	}
	return addr
}

// Street returns the street line
func (a ShippingAddress) Street() string {
	return a.street
}

// City returns the city
func (a ShippingAddress) City() string {
	return a.city
}

// State returns the state or province
func (a ShippingAddress) State() string {
	return a.state
}

// Country returns the country
func (a ShippingAddress) Country() string {
	return a.country
}

// IsEmpty returns true if all fields are blank
func (a ShippingAddress) IsEmpty() bool {
	return a.street == "" && a.city == "" && a.state == "" && a.country == ""
}

// FullAddress returns the complete formatted address string
func (a ShippingAddress) FullAddress() string {
	if a.IsEmpty() {
		return ""
	}
	return strings.Join([]string{a.street, a.city, a.state, a.country}, ", ")
}

// Equals compares two addresses field by field
func (a ShippingAddress) Equals(other ShippingAddress) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.country == other.country
}

// addressJSON is the serialized form used for persistence and transport
type addressJSON struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// MarshalJSON implements json.Marshaler
func (a ShippingAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Street:  a.street,
		City:    a.city,
		State:   a.state,
		Country: a.country,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (a *ShippingAddress) UnmarshalJSON(data []byte) error {
	var aux addressJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.street = aux.Street
	a.city = aux.City
	a.state = aux.State
	a.country = aux.Country
	return nil
}

// Value implements driver.Valuer for database persistence
func (a ShippingAddress) Value() (driver.Value, error) {
	if a.IsEmpty() {
		return nil, nil
	}
	b, err := a.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (a *ShippingAddress) Scan(value interface{}) error {
	if value == nil {
		*a = ShippingAddress{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ShippingAddress", value)
	}

	return a.UnmarshalJSON(data)
}
