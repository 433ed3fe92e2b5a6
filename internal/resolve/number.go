package resolve

import (
	"regexp"
	"strconv"
)

var numberRun = regexp.MustCompile(`[0-9]{1,4}`)

// ExtractNumber returns the value of the first run of one to four
// decimal digits in text, scanning left to right: "103/165" -> 103,
// "SV1V 053" -> 53, "#245" -> 245. The second return is false when the
// text contains no digits. Pure and total; absence of digits is a valid
// outcome, not an error.
func ExtractNumber(text string) (int, bool) {
	match := numberRun.FindString(text)
	if match == "" {
		return 0, false
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}
