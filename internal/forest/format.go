package forest

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware printer used for thousands separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousands separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatKilotons renders a quantity given in kilograms as whole thousands
// with separators, e.g. 1,000,000 kg -> "1,000". Halves round away from
// zero. Negative values keep their sign; NaN and infinities render "N/A".
func FormatKilotons(kg float64) string {
	if !isFinite(kg) {
		return notApplicable
	}
	return FormatNumber(int64(math.Round(kg / KgPerTon)))
}

// FormatPercent renders a capture ratio as "12.34%" or "N/A".
func FormatPercent(r CaptureRatio) string {
	return r.String()
}
