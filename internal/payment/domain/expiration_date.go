package domain

import (
	"fmt"
	"time"
)

// ExpirationDate is a card expiry month. A card stays usable until the last
// microsecond of the last day of that month in ReferenceLocation.
type ExpirationDate struct {
	month     int
	year      int
	expiresAt time.Time
}

// NewExpirationDate builds the expiry instant for month/year, accounting for the
// real day count of the month. Returns ErrInvalidDate when month is outside 1-12
// or year is outside 1-MaxYear.
func NewExpirationDate(month, year int) (ExpirationDate, error) {
	if month < 1 || month > 12 {
		return ExpirationDate{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if year < 1 || year > MaxYear {
		return ExpirationDate{}, fmt.Errorf("%w: year %d", ErrInvalidDate, year)
	}

	// First day of next month minus one microsecond lands on the last day at 23:59:59.999999
	firstNext := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, ReferenceLocation).AddDate(0, 1, 0)

	return ExpirationDate{
		month:     month,
		year:      year,
		expiresAt: firstNext.Add(-time.Microsecond),
	}, nil
}

// Month returns the expiry month (1-12).
func (e ExpirationDate) Month() int {
	return e.month
}

// Year returns the expiry year.
func (e ExpirationDate) Year() int {
	return e.year
}

// ExpiresAt returns the last instant the card is valid, in ReferenceLocation.
func (e ExpirationDate) ExpiresAt() time.Time {
	return e.expiresAt
}

// IsExpired reports whether now is strictly after the expiry instant. The
// boundary itself is still valid.
func (e ExpirationDate) IsExpired(now time.Time) bool {
	return now.In(ReferenceLocation).After(e.expiresAt)
}

// MMYYYY returns the expiration in MM/YYYY format.
func (e ExpirationDate) MMYYYY() string {
	return fmt.Sprintf("%02d/%04d", e.month, e.year)
}

// MMYY returns the expiration in MM/YY format, as printed on cards.
func (e ExpirationDate) MMYY() string {
	return fmt.Sprintf("%02d/%02d", e.month, e.year%100)
}

// MMYYCompact returns the expiration in MMYY format.
func (e ExpirationDate) MMYYCompact() string {
	return fmt.Sprintf("%02d%02d", e.month, e.year%100)
}

// MM returns the two-digit month.
func (e ExpirationDate) MM() string {
	return fmt.Sprintf("%02d", e.month)
}

// YYYY returns the four-digit year.
func (e ExpirationDate) YYYY() string {
	return fmt.Sprintf("%04d", e.year)
}

func (e ExpirationDate) String() string {
	return e.MMYYYY()
}
