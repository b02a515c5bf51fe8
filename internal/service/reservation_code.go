package service

import "fmt"

const reservationCodePrefix = "RES"

// NextCode returns the code of the reservation created after existingCount
// others in the given year, e.g. NextCode(41, 2026) is "RES-2026-0042".
// The sequence is padded to four digits and keeps growing past 9999.
func NextCode(existingCount int64, year int) string {
	return fmt.Sprintf("%s-%04d-%04d", reservationCodePrefix, year, existingCount+1)
}
