package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// DeliverySpeed selects the service level used to compute the delivery estimate.
type DeliverySpeed string

const (
	SpeedSameDay  DeliverySpeed = "Same-Day"
	SpeedNextDay  DeliverySpeed = "Next-Day"
	SpeedExpress  DeliverySpeed = "Express"
	SpeedStandard DeliverySpeed = "Standard"
)

// NewTrackingNumber generates a shipment tracking number: "SGE-" followed by
// 8 uppercase hex characters from a cryptographically strong source.
// Uniqueness is not guaranteed here; callers must check and retry on collision.
func NewTrackingNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return "SGE-" + strings.ToUpper(hex.EncodeToString(b))
}

// NewReferenceCode generates a display-only reference code: "REF-" followed
// by a uniform 5-digit decimal number. Not unique, never used as a key.
func NewReferenceCode() string {
	n := randomBelow(90000)
	return fmt.Sprintf("REF-%d", 10000+n)
}

// NewBarcodeValue generates a cosmetic 12-digit decimal barcode string.
// It is not a valid symbology checksum and is never validated as one.
func NewBarcodeValue() string {
	n := randomBelow(1_000_000_000_000)
	return fmt.Sprintf("%012d", n)
}

// randomBelow returns a uniform random int64 in [0, max).
func randomBelow(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return n.Int64()
}

// EstimateDeliveryDate computes the estimated delivery timestamp for a
// delivery speed relative to now. Unrecognized speeds fall back to the
// standard window. No business-calendar adjustment is applied.
func EstimateDeliveryDate(speed DeliverySpeed, now time.Time) time.Time {
	switch normalizeSpeed(speed) {
	case SpeedSameDay:
		return now.Add(8 * time.Hour)
	case SpeedNextDay:
		return now.AddDate(0, 0, 1)
	case SpeedExpress:
		return now.AddDate(0, 0, 2)
	default:
		return now.AddDate(0, 0, 5)
	}
}

// normalizeSpeed folds case so "express" and "Express" behave the same.
func normalizeSpeed(speed DeliverySpeed) DeliverySpeed {
	switch strings.ToLower(strings.TrimSpace(string(speed))) {
	case "same-day":
		return SpeedSameDay
	case "next-day":
		return SpeedNextDay
	case "express":
		return SpeedExpress
	default:
		return SpeedStandard
	}
}
