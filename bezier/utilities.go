package bezier

import (
	"fmt"
	"math"

	"github.com/npillmayer/glide"
)

func ptstring(p glide.V3, iscontrol bool) string {
	if !glide.IsFinite(p) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f,%.4f)", round(p[0]), round(p[1]), round(p[2]))
	}
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(p[0]), round(p[1]), round(p[2]))
}

func round(x float64) float64 {
	r := math.Round(x*10000.0) / 10000.0
	if r == 0 {
		return 0 // no "-0"
	}
	return r
}
