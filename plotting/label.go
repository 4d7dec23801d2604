package plotting

import (
	"math"
	"strconv"
	"strings"
)

// scientificExponentBound is the decimal exponent beyond which parameter
// values are formatted in scientific notation instead of fixed notation.
const scientificExponentBound = 3

// FormatParameters builds the default legend label for a parameter vector,
// e.g. "[a[0]=1.000, a[1]=1.000]".
//
// Each value is printed with three digits after the decimal point; values
// whose magnitude leaves the fixed-notation range switch to scientific
// notation, e.g. "1.234e-05".
func FormatParameters(a []float64) SeriesLabelString {
	var builder strings.Builder
	builder.WriteByte('[')
	for i, value := range a {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString("a[")
		builder.WriteString(strconv.Itoa(i))
		builder.WriteString("]=")
		builder.WriteString(formatParameterValue(value))
	}
	builder.WriteByte(']')

	return builder.String()
}

func formatParameterValue(value float64) string {
	if value == 0 {
		return "0.000"
	}

	exponent := math.Floor(math.Log10(math.Abs(value)))
	if exponent < -scientificExponentBound || exponent > scientificExponentBound {
		return strconv.FormatFloat(value, 'e', 3, 64)
	}

	return strconv.FormatFloat(value, 'f', 3, 64)
}
