package coordparse

import (
	"regexp"
	"strconv"
	"strings"
)

// matcher extracts a latitude/longitude pair from input. ok is false when the
// input does not have the matcher's shape or a captured number does not convert.
type matcher func(input string) (latitude, longitude float64, ok bool)

var (
	// "52.5, 13.5" or "53.25732 14.24984"
	decimalPattern = regexp.MustCompile(`(-?\d{1,2}\.?\d*)[, ]\s*(-?\d{1,3}\.?\d*)`)

	// "N52.5, E13.5" or "40.2S, 35.3485W"
	cardinalPattern = regexp.MustCompile(`(?i)([NS]?\s*)(\d{1,2}\.?\d*)(\s*[NS]?)[, ]\s*([EW]?\s*)(\d{1,2}\.?\d*)(\s*[EW]?)`)

	// cardinalPattern with up to three integer digits of longitude
	wideCardinalPattern = regexp.MustCompile(`(?i)([NS]?\s*)(\d{1,2}\.?\d*)(\s*[NS]?)[, ]\s*([EW]?\s*)(\d{1,3}\.?\d*)(\s*[EW]?)`)
)

// matchDecimal reads two signed decimal numbers. Signs are taken as written.
func matchDecimal(input string) (float64, float64, bool) {
	m := decimalPattern.FindStringSubmatch(input)
	if m == nil {
		return 0, 0, false
	}

	return parsePair(m[1], m[2])
}

var matchCardinal = cardinalMatcher(cardinalPattern)

// cardinalMatcher builds a matcher for decimal degrees with optional N/S and
// E/W letters before or after each number. S and W negate the magnitude.
func cardinalMatcher(re *regexp.Regexp) matcher {
	return func(input string) (float64, float64, bool) {
		m := re.FindStringSubmatch(input)
		if m == nil {
			return 0, 0, false
		}

		latitude, longitude, ok := parsePair(m[2], m[5])
		if !ok {
			return 0, 0, false
		}

		if isLetter(m[1], "S") || isLetter(m[3], "S") {
			latitude = -latitude
		}
		if isLetter(m[4], "W") || isLetter(m[6], "W") {
			longitude = -longitude
		}

		return latitude, longitude, true
	}
}

func isLetter(group, letter string) bool {
	return strings.ToUpper(strings.TrimSpace(group)) == letter
}

func parsePair(lat, lon string) (float64, float64, bool) {
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return 0, 0, false
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return 0, 0, false
	}
	return latitude, longitude, true
}
