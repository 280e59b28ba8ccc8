package parsing

import (
	"fmt"

	"github.com/araddon/dateparse"
)

// ParseYear extracts the four digit year from a loosely formatted date
// string (e.g. "20240131", "Jan 2nd, 2006").
func ParseYear(dateString string) (string, error) {
	t, err := dateparse.ParseAny(dateString)
	if err != nil {
		return "", fmt.Errorf("unable to parse date: %s", dateString)
	}
	return t.Format("2006"), nil
}
