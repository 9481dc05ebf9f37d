package main

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lg/fitness-tracker-api/fitcalc"
)

// converters maps "from->to" to the fitcalc conversion. Integer results are
// widened to float64 so the response has one shape.
var converters = map[string]func(float64) (float64, error){
	"cm->in": func(v float64) (float64, error) { n, err := fitcalc.CmToInches(v); return float64(n), err },
	"in->cm": func(v float64) (float64, error) { n, err := fitcalc.InchesToCm(v); return float64(n), err },
	"kg->lb": func(v float64) (float64, error) { n, err := fitcalc.KgToLbs(v); return float64(n), err },
	"lb->kg": fitcalc.LbsToKg,
}

// convert converts a height or weight between metric and imperial for the
// profile form. GET /api/convert?value=180&from=cm&to=in.
func (h *Handler) convert(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	fn, ok := converters[from+"->"+to]
	if !ok {
		apiError(c, http.StatusBadRequest, "unsupported conversion, expected cm<->in or kg<->lb")
		return
	}
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil {
		apiError(c, http.StatusBadRequest, "value must be a number")
		return
	}

	result, err := fn(value)
	if errors.Is(err, fitcalc.ErrInvalidMeasurement) {
		if value > 0 && !math.IsInf(value, 1) {
			apiError(c, http.StatusBadRequest, "value is out of range")
			return
		}
		apiError(c, http.StatusBadRequest, "value must be a positive number")
		return
	}
	if err != nil {
		apiError(c, http.StatusInternalServerError, "conversion failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": value, "from": from, "to": to, "result": result})
}
